// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Store keeps live sessions by id. A session that sees no activity for the
// idle TTL is dropped together with its results.
type Store struct {
	sessions  *gocache.Cache
	noticeTTL time.Duration
}

// NewStore returns a store whose sessions expire after idleTTL without use.
func NewStore(idleTTL, noticeTTL time.Duration) *Store {
	cleanup := idleTTL / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &Store{
		sessions:  gocache.New(idleTTL, cleanup),
		noticeTTL: noticeTTL,
	}
}

// Get returns the session with id and extends its lifetime.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := st.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	st.sessions.SetDefault(id, s)
	return s, true
}

// Create starts a new session with a random id.
func (st *Store) Create() *Session {
	s := New(uuid.NewString(), st.noticeTTL)
	st.sessions.SetDefault(s.ID, s)
	return s
}

// GetOrCreate returns the session with id, or a new one when id is unknown
// or expired. created reports which happened.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

// Delete drops a session.
func (st *Store) Delete(id string) {
	st.sessions.Delete(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.ItemCount()
}
