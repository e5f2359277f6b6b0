// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_NilNeverBlocks(t *testing.T) {
	var l *HostLimiter
	require.NoError(t, l.Wait(context.Background(), "https://example.com/a"))

	unlimited := NewHostLimiter(0, 1)
	for i := 0; i < 10; i++ {
		require.NoError(t, unlimited.Wait(context.Background(), "https://example.com/a"))
	}
}

func TestHostLimiter_BlocksBeyondBurst(t *testing.T) {
	l := NewHostLimiter(0.001, 1)
	require.NoError(t, l.Wait(context.Background(), "https://example.com/a"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "https://example.com/b"))
}

func TestHostLimiter_HostsAreIndependent(t *testing.T) {
	l := NewHostLimiter(0.001, 1)
	require.NoError(t, l.Wait(context.Background(), "https://one.example.com/"))
	require.NoError(t, l.Wait(context.Background(), "https://two.example.com/"))
}

func TestHostLimiter_BadURL(t *testing.T) {
	l := NewHostLimiter(1, 1)
	assert.Error(t, l.Wait(context.Background(), "://bad"))
}
