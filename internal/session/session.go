// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-browser page state: the current ResultSet,
// the row selection, the open detail viewer and any pending notice.
//
// A Session serializes all of its operations behind one mutex, so the
// handlers that drive it behave as a single control thread. The only
// long-running step, the remote search, runs outside the lock; a generation
// counter makes the most recently issued search win.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/pdiddy/patent-search/pkg/types"
)

// DefaultNoticeTTL is how long a notice stays visible.
const DefaultNoticeTTL = 5 * time.Second

// NoticeKind classifies a user-facing message.
type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeRemote     NoticeKind = "remote"
)

// Notice is a transient message shown above the results.
type Notice struct {
	Kind    NoticeKind
	Text    string
	Expires time.Time
}

// Session is the state of one page context.
type Session struct {
	ID string

	mu         sync.Mutex
	results    types.ResultSet
	hasResults bool
	selection  *Selection
	viewer     int
	notice     *Notice
	loading    bool
	generation uint64
	noticeTTL  time.Duration
	now        func() time.Time
}

// New returns an empty session. A non-positive noticeTTL means
// DefaultNoticeTTL.
func New(id string, noticeTTL time.Duration) *Session {
	if noticeTTL <= 0 {
		noticeTTL = DefaultNoticeTTL
	}
	return &Session{
		ID:        id,
		selection: NewSelection(0),
		viewer:    -1,
		noticeTTL: noticeTTL,
		now:       time.Now,
	}
}

// Snapshot is a consistent, read-only copy of a session for rendering.
type Snapshot struct {
	Results    types.ResultSet
	HasResults bool
	Selection  *Selection

	// Viewer is the index of the record shown in the detail viewer, or -1.
	Viewer int

	// Notice is nil when there is nothing to show or it has expired.
	Notice *Notice

	Loading    bool
	Generation uint64
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Results:    s.results,
		HasResults: s.hasResults,
		Selection:  s.selection.Clone(),
		Viewer:     s.viewer,
		Loading:    s.loading,
		Generation: s.generation,
	}
	if n := s.activeNotice(); n != nil {
		c := *n
		snap.Notice = &c
	}
	return snap
}

// BeginSearch marks a search as in flight and returns its generation. The
// current results and selection stay untouched until the search resolves.
func (s *Session) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loading = true
	return s.generation
}

// ApplyResults replaces the ResultSet with rs if gen is still the latest
// search. Replacing clears the selection and closes the viewer. It returns
// false when the response is stale and was discarded.
func (s *Session) ApplyResults(gen uint64, rs types.ResultSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.results = rs
	s.hasResults = true
	s.selection.Reset(rs.Len())
	s.viewer = -1
	s.loading = false
	s.notice = nil
	return true
}

// FailSearch records a remote failure for search gen. Existing results are
// left as they were. It returns false when gen is stale.
func (s *Session) FailSearch(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.loading = false
	s.setNotice(NoticeRemote, err.Error())
	return true
}

// Reject records a validation failure. No search was started.
func (s *Session) Reject(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setNotice(NoticeValidation, err.Error())
}

// Clear resets the page: results, selection, viewer and notice are
// dropped, and any in-flight search is orphaned.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.results = types.ResultSet{}
	s.hasResults = false
	s.selection.Reset(0)
	s.viewer = -1
	s.loading = false
	s.notice = nil
}

// Record returns the record at index in the current ResultSet.
func (s *Session) Record(index int) (*types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recordLocked(index)
}

func (s *Session) recordLocked(index int) (*types.Record, error) {
	if index < 0 || index >= s.results.Len() {
		return nil, fmt.Errorf("%w: %d (have %d)", types.ErrIndexOutOfRange, index, s.results.Len())
	}
	return s.results.Records[index], nil
}

// Open shows record index in the detail viewer.
func (s *Session) Open(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.recordLocked(index); err != nil {
		return err
	}
	s.viewer = index
	s.notice = nil
	return nil
}

// CloseViewer hides the detail viewer.
func (s *Session) CloseViewer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewer = -1
}

// Toggle sets the selection state of one row.
func (s *Session) Toggle(index int, included bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Toggle(index, included)
	s.notice = nil
}

// SelectAll sets the selection state of every row.
func (s *Session) SelectAll(included bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SelectAll(included)
	s.notice = nil
}

// SelectedRecords returns the selected records in row order.
func (s *Session) SelectedRecords() []*types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.selection.Indices()
	out := make([]*types.Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.results.Records[i])
	}
	return out
}

func (s *Session) setNotice(kind NoticeKind, text string) {
	s.notice = &Notice{Kind: kind, Text: text, Expires: s.now().Add(s.noticeTTL)}
}

func (s *Session) activeNotice() *Notice {
	if s.notice == nil {
		return nil
	}
	if !s.now().Before(s.notice.Expires) {
		s.notice = nil
	}
	return s.notice
}
