package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubtrack/attendance-backend-go/internal/pkg/database"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/jackc/pgx/v5"
)

type rateLimitStore struct {
	db *database.DB
}

// NewRateLimitStore returns a ratelimit.Store backed by the rate_limits
// key-value table.
func NewRateLimitStore(db *database.DB) ratelimit.Store {
	return &rateLimitStore{db: db}
}

// Get implements ratelimit.Store.
func (s *rateLimitStore) Get(ctx context.Context, key string) (int64, bool, error) {
	q := GetQuerier(ctx, s.db)

	var value int64
	err := q.QueryRow(ctx, `SELECT value FROM rate_limits WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get rate limit entry: %w", err)
	}
	return value, true, nil
}

// Set implements ratelimit.Store.
func (s *rateLimitStore) Set(ctx context.Context, key string, value int64) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO rate_limits (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set rate limit entry: %w", err)
	}
	return nil
}

// DeleteOlderThan implements ratelimit.Store.
func (s *rateLimitStore) DeleteOlderThan(ctx context.Context, cutoff int64) (int, error) {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM rate_limits WHERE value < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge rate limit entries: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
