// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection(3)
	s.Toggle(0, true)
	s.Toggle(2, true)
	s.Toggle(2, true)
	assert.Equal(t, []int{0, 2}, s.Indices())
	assert.True(t, s.HasSelection())
	assert.False(t, s.IsAllSelected())

	s.Toggle(0, false)
	assert.Equal(t, []int{2}, s.Indices())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(0))
}

func TestSelectionToggleOutOfRangeIsNoop(t *testing.T) {
	s := NewSelection(2)
	s.Toggle(-1, true)
	s.Toggle(2, true)
	s.Toggle(99, true)
	assert.Zero(t, s.Len())
	assert.False(t, s.HasSelection())
}

func TestSelectionSelectAll(t *testing.T) {
	s := NewSelection(4)
	s.SelectAll(true)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Indices())
	assert.True(t, s.IsAllSelected())

	s.Toggle(1, false)
	assert.False(t, s.IsAllSelected())

	s.SelectAll(false)
	assert.Zero(t, s.Len())
}

func TestSelectionSelectAllThenNoneAfterToggles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		rows := rng.Intn(10) + 1
		s := NewSelection(rows)
		s.SelectAll(true)
		for i := 0; i < 20; i++ {
			s.Toggle(rng.Intn(rows+2)-1, rng.Intn(2) == 0)
		}
		s.SelectAll(false)
		assert.Zero(t, s.Len(), "trial %d", trial)
	}
}

func TestSelectionSelectAllMatchesIndividualToggles(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, included := range []bool{true, false} {
		for trial := 0; trial < 20; trial++ {
			rows := rng.Intn(8) + 1

			bulk := NewSelection(rows)
			single := NewSelection(rows)
			for i := 0; i < rows; i++ {
				if rng.Intn(2) == 0 {
					bulk.Toggle(i, true)
					single.Toggle(i, true)
				}
			}

			bulk.SelectAll(included)
			for _, i := range rng.Perm(rows) {
				single.Toggle(i, included)
			}
			assert.Equal(t, single.Indices(), bulk.Indices())
		}
	}
}

func TestSelectionIsAllSelectedEmpty(t *testing.T) {
	s := NewSelection(0)
	s.SelectAll(true)
	assert.False(t, s.IsAllSelected())
	assert.False(t, s.HasSelection())
}

func TestSelectionResetAndClone(t *testing.T) {
	s := NewSelection(3)
	s.SelectAll(true)
	c := s.Clone()

	s.Reset(5)
	assert.Zero(t, s.Len())
	assert.Equal(t, 5, s.Rows())

	assert.Equal(t, []int{0, 1, 2}, c.Indices())
	assert.Equal(t, 3, c.Rows())
}
