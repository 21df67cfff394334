// Package feedback stores user feedback and bug reports and exposes them
// to an administrator.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/edubot/internal/db"
)

// Store persists feedback entries.
type Store struct {
	db *db.DB
}

// NewStore creates a new feedback store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Create inserts e, assigning its ID and CreatedAt.
func (s *Store) Create(ctx context.Context, e *Entry) error {
	if !e.Kind.Valid() {
		return fmt.Errorf("invalid kind %q", e.Kind)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.UserAgent == "" {
		e.UserAgent = "unknown"
	}
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, kind, content, user_agent, client_timestamp, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Content, e.UserAgent, e.ClientTimestamp, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating feedback entry: %w", err)
	}
	return nil
}

// List returns entries newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := `SELECT id, kind, content, user_agent, client_timestamp, created_at FROM feedback`
	var args []any
	if f.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(f.Kind))
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var (
			e    Entry
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Content, &e.UserAgent, &e.ClientTimestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		e.Kind = Kind(kind)
		result = append(result, e)
	}
	return result, rows.Err()
}
