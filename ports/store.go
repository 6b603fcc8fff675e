package ports

import (
	"context"

	"cleantab/domain/core"
	"cleantab/domain/profile"
)

// ProfileStore persists profiling snapshots. Only derived statistics are
// stored, never the dataset itself.
type ProfileStore interface {
	// SaveSnapshot stores one snapshot for a dataset.
	SaveSnapshot(ctx context.Context, datasetID core.DatasetID, datasetName string, snap profile.Snapshot) error

	// LatestSnapshot returns the most recent snapshot for a dataset.
	LatestSnapshot(ctx context.Context, datasetID core.DatasetID) (*profile.Snapshot, error)
}
