package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/haxx0rman/qBank/internal/bankfile"
)

// SnapshotData captures the full bank state at a point in time: the
// interchange document plus the per-user ratings, which are not part of
// the interchange format.
type SnapshotData struct {
	Version int                `json:"version"`
	Bank    *bankfile.File     `json:"bank"`
	Ratings map[string]float64 `json:"ratings"`
}

// SnapshotVersion is the current snapshot payload version.
const SnapshotVersion = 1

// SaveSnapshot stores a new snapshot.
func (s *Store) SaveSnapshot(ctx context.Context, data *SnapshotData, now time.Time) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (created_at, data) VALUES (?, ?)`,
		now.Format(time.RFC3339Nano), string(raw),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot, or nil if none exist.
func (s *Store) LatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &data, nil
}

// PruneSnapshots deletes all but the keep most recent snapshots.
func (s *Store) PruneSnapshots(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY id DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
