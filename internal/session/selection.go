// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import "sort"

// Selection is the set of checked row indices for one ResultSet. It knows
// how many rows are rendered and ignores indices outside that range.
type Selection struct {
	rows int
	set  map[int]struct{}
}

// NewSelection returns an empty selection over rows rows.
func NewSelection(rows int) *Selection {
	return &Selection{rows: rows, set: make(map[int]struct{})}
}

// Reset empties the selection and rebinds it to a new row count.
func (s *Selection) Reset(rows int) {
	s.rows = rows
	s.Clear()
}

// Toggle adds or removes index. Out-of-range indices are ignored.
func (s *Selection) Toggle(index int, included bool) {
	if index < 0 || index >= s.rows {
		return
	}
	if included {
		s.set[index] = struct{}{}
	} else {
		delete(s.set, index)
	}
}

// SelectAll sets membership of every rendered row at once. The end state is
// the same as toggling each row individually in any order.
func (s *Selection) SelectAll(included bool) {
	if !included {
		s.Clear()
		return
	}
	for i := 0; i < s.rows; i++ {
		s.set[i] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.set = make(map[int]struct{})
}

// IsAllSelected reports whether every rendered row is selected and there is
// at least one row.
func (s *Selection) IsAllSelected() bool {
	return s.rows > 0 && len(s.set) == s.rows
}

// HasSelection reports whether selection-dependent controls (print,
// download) should be enabled.
func (s *Selection) HasSelection() bool { return len(s.set) > 0 }

// Len returns the number of selected rows.
func (s *Selection) Len() int { return len(s.set) }

// Rows returns the number of rows the selection is bound to.
func (s *Selection) Rows() int { return s.rows }

// Contains reports whether index is selected.
func (s *Selection) Contains(index int) bool {
	_, ok := s.set[index]
	return ok
}

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, len(s.set))
	for i := range s.set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	c := NewSelection(s.rows)
	for i := range s.set {
		c.set[i] = struct{}{}
	}
	return c
}
