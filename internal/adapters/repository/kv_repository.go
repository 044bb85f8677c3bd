package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/activitytracker/core/internal/ports"
)

// Storage keys, mirroring the persisted state layout: one key for the whole
// document, one independent key for the theme preference.
const (
	DocumentKey = "activity_tracker_data"
	ThemeKey    = "activity_tracker_theme"
)

// KVRepositoryImpl implements the KV interface over a single kv table
type KVRepositoryImpl struct {
	db *sqlx.DB
}

// NewKVRepository creates a new key-value repository
func NewKVRepository(db *sqlx.DB) ports.KV {
	return &KVRepositoryImpl{db: db}
}

func (r *KVRepositoryImpl) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := r.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}

	return value, true, nil
}

func (r *KVRepositoryImpl) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}
