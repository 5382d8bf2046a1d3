package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// keyPrefix matches the key format used by the legacy property store so
// an existing rate_limits table can be reused as-is.
const keyPrefix = "lastRequestTimestamp_"

// Store is the key-value backend the limiter keeps its bookkeeping in.
// Values are epoch milliseconds of the last accepted request.
type Store interface {
	// Get returns the stored value for key. ok is false when the key
	// is absent.
	Get(ctx context.Context, key string) (value int64, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value int64) error

	// DeleteOlderThan removes every entry whose value is below cutoff
	// and returns the number of entries removed.
	DeleteOlderThan(ctx context.Context, cutoff int64) (int, error)
}

// Limiter throttles repeat requests per normalized phone number.
//
// The check is read-then-write and deliberately not atomic: two
// near-simultaneous requests for the same phone can both pass. The
// legacy system had the same window and the store is the only writer
// coordination there is.
type Limiter struct {
	store    Store
	interval time.Duration
	now      func() time.Time
}

func NewLimiter(store Store, interval time.Duration) *Limiter {
	return &Limiter{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Allow reports whether a request from phone may proceed. When it may,
// the limiter records the request time before returning.
func (l *Limiter) Allow(ctx context.Context, phone string) (bool, error) {
	key := keyPrefix + phone
	nowMs := l.now().UnixMilli()

	last, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read rate limit entry: %w", err)
	}
	if ok && nowMs-last < l.interval.Milliseconds() {
		return false, nil
	}

	if err := l.store.Set(ctx, key, nowMs); err != nil {
		return false, fmt.Errorf("failed to write rate limit entry: %w", err)
	}
	return true, nil
}

// Purge drops entries older than maxAge. Run periodically to keep the
// store from accumulating one key per phone number forever.
func (l *Limiter) Purge(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := l.now().Add(-maxAge).UnixMilli()
	return l.store.DeleteOlderThan(ctx, cutoff)
}

// MemoryStore is a map-backed Store. The production deployment uses the
// PostgreSQL-backed store; this one serves tests and single-process runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]int64)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryStore) DeleteOlderThan(ctx context.Context, cutoff int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for k, v := range m.entries {
		if v < cutoff {
			delete(m.entries, k)
			removed++
		}
	}
	return removed, nil
}
