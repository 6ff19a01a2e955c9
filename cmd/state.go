package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/bankfile"
	"github.com/haxx0rman/qBank/internal/config"
	"github.com/haxx0rman/qBank/internal/rating"
	"github.com/haxx0rman/qBank/internal/srs"
	"github.com/haxx0rman/qBank/internal/store"
)

// snapshotsToKeep bounds how many historical snapshots stay in the database.
const snapshotsToKeep = 20

// appState bundles everything a command needs: configuration, the open
// store, and the in-memory bank rebuilt from the latest snapshot.
type appState struct {
	cfg     config.Config
	st      *store.Store
	repo    *bank.Repository
	tracker *rating.Tracker
	sched   *srs.Scheduler
}

// openState loads config, opens the store, and restores the bank from the
// latest snapshot. Callers must Close the returned state.
func openState(cmd *cobra.Command) (*appState, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.LatestSnapshot(cmd.Context())
	if err != nil {
		st.Close()
		return nil, err
	}

	repo := bank.NewRepository()
	tracker := rating.NewTracker()
	if snap != nil {
		if snap.Bank != nil {
			repo, err = snap.Bank.Repository()
			if err != nil {
				st.Close()
				return nil, fmt.Errorf("restore bank: %w", err)
			}
		}
		tracker = rating.NewTrackerWith(snap.Ratings)
	}

	return &appState{
		cfg:     cfg,
		st:      st,
		repo:    repo,
		tracker: tracker,
		sched:   srs.NewScheduler(cfg.SchedulerParams()),
	}, nil
}

// save writes a fresh snapshot of the bank and ratings.
func (a *appState) save(ctx context.Context, now time.Time) error {
	data := &store.SnapshotData{
		Version: store.SnapshotVersion,
		Bank:    bankfile.FromRepository(a.repo, a.cfg.BankName, now),
		Ratings: a.tracker.Snapshot(),
	}
	if err := a.st.SaveSnapshot(ctx, data, now); err != nil {
		return err
	}
	return a.st.PruneSnapshots(ctx, snapshotsToKeep)
}

// Close releases the store.
func (a *appState) Close() error {
	return a.st.Close()
}
