package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"leaguedesk/internal/adapters/storage"
	domain "leaguedesk/internal/session"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements session.Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves a session record by ID.
// PRE: id is non-empty
// POST: Returns the record, or session.ErrNotFound when missing
func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, access_token, refresh_token, created_at FROM web_session WHERE id = ?`, id)

	var rec domain.Record
	var createdAt string
	err := row.Scan(&rec.ID, &rec.AccessToken, &rec.RefreshToken, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Record{}, err
	}
	rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// Save inserts or updates a session record.
// PRE: rec.ID is non-empty
// POST: Record is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, rec domain.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO web_session (id, access_token, refresh_token, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   access_token=excluded.access_token, refresh_token=excluded.refresh_token`,
		rec.ID, rec.AccessToken, rec.RefreshToken, rec.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes a session record by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM web_session WHERE id = ?`, id)
	return err
}

// DeleteExpired removes records created before the cutoff.
// PRE: before is the expiry cutoff in UTC
// POST: Expired records are gone
func (s *SQLiteStore) DeleteExpired(ctx context.Context, before time.Time) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM web_session WHERE created_at < ?`,
		before.UTC().Format(timeLayout))
	return err
}
