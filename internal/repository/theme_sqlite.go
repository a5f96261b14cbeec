package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteTheme struct {
	db *sql.DB
}

// NewSQLiteThemeRepository - expects the preferences table created by storage.SQLiteStorage.Init.
func NewSQLiteThemeRepository(db *sql.DB) ThemeRepository {
	return &sqliteTheme{
		db: db,
	}
}

func (that *sqliteTheme) Load(ctx context.Context) (string, error) {
	query := `SELECT value FROM preferences WHERE key = ?`

	var value string
	err := that.db.QueryRowContext(ctx, query, ThemeKey).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrThemeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to select theme: %w", err)
	}

	return value, nil
}

func (that *sqliteTheme) Save(ctx context.Context, theme string) error {
	query := `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := that.db.ExecContext(ctx, query, ThemeKey, theme); err != nil {
		return fmt.Errorf("failed to upsert theme: %w", err)
	}

	return nil
}
