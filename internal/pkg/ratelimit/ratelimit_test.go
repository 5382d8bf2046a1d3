package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(interval time.Duration) (*Limiter, *time.Time) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	l := NewLimiter(NewMemoryStore(), interval)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiterAllowsFirstRequest(t *testing.T) {
	l, _ := newTestLimiter(5 * time.Second)

	ok, err := l.Allow(context.Background(), "15551234567")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterBlocksWithinInterval(t *testing.T) {
	l, now := newTestLimiter(5 * time.Second)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "15551234567")
	require.NoError(t, err)
	require.True(t, ok)

	*now = now.Add(2 * time.Second)
	ok, err = l.Allow(ctx, "15551234567")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLimiterAllowsAfterInterval(t *testing.T) {
	l, now := newTestLimiter(5 * time.Second)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "15551234567")
	require.NoError(t, err)
	require.True(t, ok)

	*now = now.Add(5 * time.Second)
	ok, err = l.Allow(ctx, "15551234567")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterIsPerPhone(t *testing.T) {
	l, _ := newTestLimiter(5 * time.Second)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "15551234567")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(ctx, "628123456789")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPurgeRemovesStaleEntries(t *testing.T) {
	l, now := newTestLimiter(5 * time.Second)
	ctx := context.Background()

	_, err := l.Allow(ctx, "1111")
	require.NoError(t, err)

	*now = now.Add(2 * time.Hour)
	_, err = l.Allow(ctx, "2222")
	require.NoError(t, err)

	removed, err := l.Purge(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// The fresh entry still throttles.
	ok, err := l.Allow(ctx, "2222")
	require.NoError(t, err)
	assert.False(t, ok)
}
