// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore(time.Hour, time.Second)

	s, created := st.GetOrCreate("")
	require.True(t, created)
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	again, created := st.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)
	assert.Equal(t, 1, st.Len())

	other, created := st.GetOrCreate("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, st.Len())
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	st := NewStore(20*time.Millisecond, time.Second)
	s := st.Create()

	time.Sleep(40 * time.Millisecond)
	_, ok := st.Get(s.ID)
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	st := NewStore(time.Hour, time.Second)
	s := st.Create()
	st.Delete(s.ID)
	_, ok := st.Get(s.ID)
	assert.False(t, ok)
}
