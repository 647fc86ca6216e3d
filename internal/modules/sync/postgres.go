package sync

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hbenomar/macstore-backend/internal/store"
)

// snapshotID keys the single document row holding the storefront state.
const snapshotID = "storefront"

// PostgresGateway stores the snapshot as one jsonb document.
type PostgresGateway struct{ db *sql.DB }

func NewPostgresGateway(db *sql.DB) *PostgresGateway { return &PostgresGateway{db: db} }

// EnsureSchema creates the snapshot table when it does not exist.
func (g *PostgresGateway) EnsureSchema(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_snapshots (
		  id         TEXT PRIMARY KEY,
		  doc        JSONB NOT NULL,
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (g *PostgresGateway) Fetch(ctx context.Context) (*store.Snapshot, error) {
	var doc []byte
	err := g.db.QueryRowContext(ctx,
		`SELECT doc FROM app_snapshots WHERE id=$1`, snapshotID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	snap := store.Empty()
	if err := json.Unmarshal(doc, snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (g *PostgresGateway) Push(ctx context.Context, snap *store.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = g.db.ExecContext(ctx, `
		INSERT INTO app_snapshots (id, doc, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET doc=EXCLUDED.doc, updated_at=NOW()`,
		snapshotID, doc)
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	return nil
}
