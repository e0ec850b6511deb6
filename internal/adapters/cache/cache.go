// Package cache keeps reference lists (skills, faculties) in a local SQLite
// database so selectors and filters render without a round trip. Entries
// expire after a TTL; a stale or missing entry is a miss and the caller
// re-fetches from the API.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/beksultan/talentlink/pkg/metrics"
)

const schema = `
CREATE TABLE IF NOT EXISTS reference_lists (
	kind       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);`

const defaultTTL = 10 * time.Minute

// Store is a TTL-bounded blob cache keyed by list kind.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithTTL sets how long cached lists stay fresh.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open creates or opens the cache database at path.
func Open(path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply schema: %w", ErrOpen, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, ttl: defaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Lookup decodes a fresh cached list into v. The boolean reports a hit.
func (s *Store) Lookup(ctx context.Context, kind string, v any) bool {
	var payload string
	var fetchedAt int64
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM reference_lists WHERE kind = ?`, kind)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			// Treat storage trouble as a miss; the API is the source of truth.
			metrics.RecordCacheMiss(kind)
			return false
		}
		metrics.RecordCacheMiss(kind)
		return false
	}
	if s.now().Sub(time.Unix(fetchedAt, 0)) > s.ttl {
		metrics.RecordCacheMiss(kind)
		return false
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		metrics.RecordCacheMiss(kind)
		return false
	}
	metrics.RecordCacheHit(kind)
	return true
}

// Save stores a list under kind, replacing any previous entry.
func (s *Store) Save(ctx context.Context, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reference_lists (kind, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		kind, string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Invalidate drops one cached list.
func (s *Store) Invalidate(ctx context.Context, kind string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM reference_lists WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
