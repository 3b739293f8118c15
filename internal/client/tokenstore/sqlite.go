package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gradient-edu/gradient-cli/internal/common"
	"github.com/gradient-edu/gradient-cli/internal/dbx"
)

// SQLite is a Store backed by the settings table of the local client
// database. Failures of the underlying database surface wrapped in
// common.ErrLocalDataNotAvailable.
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a SQLite store bound to the given DB handle.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: read token: %v", common.ErrLocalDataNotAvailable, err)
	}
	return value, nil
}

// Set writes the token and reads it back in the same transaction, so a
// concurrent writer can never leave the row holding a token other than the
// one this call reports as stored.
func (s *SQLite) Set(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, tokenKey, token)
		if err != nil {
			return fmt.Errorf("%w: store token: %v", common.ErrLocalDataNotAvailable, err)
		}

		var stored string
		if err := tx.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, tokenKey).Scan(&stored); err != nil {
			return fmt.Errorf("%w: verify token: %v", common.ErrLocalDataNotAvailable, err)
		}
		if stored != token {
			return fmt.Errorf("token row changed during write")
		}
		return nil
	})
}

func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("%w: clear token: %v", common.ErrLocalDataNotAvailable, err)
	}
	return nil
}
