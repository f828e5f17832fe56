package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// SnapshotRepo stores one serialized value per logical key. It backs the
// engine's SnapshotStore.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

func (r *SnapshotRepo) Load(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("snapshot load: %w", err)
	}
	return value, true, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, key, value string) error {
	if err := upsert(ctx, r.db, key, value); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

// SaveAll writes every entry in one transaction so a multi-key state
// change lands atomically or not at all.
func (r *SnapshotRepo) SaveAll(ctx context.Context, entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, k := range keys {
			if err := upsert(ctx, tx, k, entries[k]); err != nil {
				return fmt.Errorf("snapshot save %s: %w", k, err)
			}
		}
		return nil
	})
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	return err
}
