// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search validates keyword searches and runs them against the USPTO
// Data Set API (DSAPI).
package search

import (
	"context"
	"fmt"

	"github.com/pdiddy/patent-search/pkg/types"
)

// Searcher runs a validated request against a remote data source.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) (types.ResultSet, error)
}

// RemoteError reports a failed call to the remote API: a transport error,
// a non-200 status, or an unreadable body. It is shown to the user as a
// transient notice and never replaces existing results.
type RemoteError struct {
	// Status is the HTTP status, or 0 when no response was received.
	Status int

	// Message is the user-facing text.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Unwrap() error { return e.Err }

func remoteErrorf(status int, cause error, format string, args ...any) *RemoteError {
	return &RemoteError{Status: status, Message: fmt.Sprintf(format, args...), Err: cause}
}
