package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cleantab/domain/core"
	"cleantab/domain/profile"
	"cleantab/ports"
)

// profileRepository implements the ProfileStore interface. It persists
// derived snapshots only; the dataset itself is never written.
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) ports.ProfileStore {
	return &profileRepository{db: db}
}

// Connect opens the profile-store database
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to profile store: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the snapshot table when it does not exist yet
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS profile_snapshots (
		id TEXT PRIMARY KEY,
		dataset_id TEXT NOT NULL,
		dataset_name TEXT NOT NULL,
		snapshot JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure profile_snapshots schema: %w", err)
	}
	return nil
}

// SaveSnapshot stores one snapshot for a dataset
func (r *profileRepository) SaveSnapshot(ctx context.Context, datasetID core.DatasetID, datasetName string, snap profile.Snapshot) error {
	snapshotJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `INSERT INTO profile_snapshots (id, dataset_id, dataset_name, snapshot)
	VALUES ($1, $2, $3, $4)`

	_, err = r.db.ExecContext(ctx, query, core.NewID(), datasetID, datasetName, snapshotJSON)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot for a dataset
func (r *profileRepository) LatestSnapshot(ctx context.Context, datasetID core.DatasetID) (*profile.Snapshot, error) {
	query := `SELECT snapshot FROM profile_snapshots
	WHERE dataset_id = $1
	ORDER BY created_at DESC
	LIMIT 1`

	var snapshotJSON []byte
	err := r.db.QueryRowContext(ctx, query, datasetID).Scan(&snapshotJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no snapshot for dataset %s: %w", datasetID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap profile.Snapshot
	if err := json.Unmarshal(snapshotJSON, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
