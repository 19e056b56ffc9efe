package tierstore

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresBackend stores the tier in a one-row table:
//
//	CREATE TABLE IF NOT EXISTS viewer_tier (
//	    id   smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
//	    tier text NOT NULL
//	);
//
// The CHECK keeps the table single-row — the store models exactly one
// viewer session.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend creates a backend over an open database handle and
// ensures the table exists.
func NewPostgresBackend(ctx context.Context, db *sql.DB) (*PostgresBackend, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS viewer_tier (
			id   smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			tier text NOT NULL
		)`)
	if err != nil {
		return nil, err
	}
	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) Load(ctx context.Context) (string, error) {
	var tier string
	err := b.db.QueryRowContext(ctx, `SELECT tier FROM viewer_tier WHERE id = 1`).Scan(&tier)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return tier, err
}

func (b *PostgresBackend) Save(ctx context.Context, tier string) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO viewer_tier (id, tier) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET tier = EXCLUDED.tier`, tier)
	return err
}
