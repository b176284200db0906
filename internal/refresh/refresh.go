// Package refresh repopulates the team boards on a cron schedule. Teams are
// walked sequentially; a failed or empty lookup for one team never aborts
// the others — that team simply keeps its previous (or empty) board.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/logging"
	"floorball-games-service/internal/metrics"
	"floorball-games-service/internal/providers"
	"floorball-games-service/internal/store"
)

// Refresher fetches every configured team's board into the store.
type Refresher struct {
	provider providers.BoardProvider
	store    *store.MemoryStore
	teams    []domain.TeamRef
	season   int
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	cron     *cron.Cron
	spec     string
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
}

// New constructs a Refresher. spec is a cron expression or descriptor such
// as "@every 5m".
func New(provider providers.BoardProvider, st *store.MemoryStore, teams []domain.TeamRef, season int, spec string, logger *slog.Logger, recorder *metrics.Recorder) *Refresher {
	return &Refresher{
		provider: provider,
		store:    st,
		teams:    teams,
		season:   season,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		cron:     cron.New(),
		spec:     spec,
	}
}

// Start runs one immediate refresh to warm the store, then schedules the
// periodic ones. Safe to call once; subsequent calls are no-ops.
func (r *Refresher) Start(ctx context.Context) error {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return nil
	}
	r.started = true
	r.startMu.Unlock()

	r.RefreshAll(ctx)

	if _, err := r.cron.AddFunc(r.spec, func() {
		r.RefreshAll(ctx)
	}); err != nil {
		return err
	}
	r.cron.Start()
	logging.Info(r.logger, "refresh schedule started", "schedule", r.spec)
	return nil
}

// Stop halts the schedule and waits for a running cycle to finish.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		stopCtx := r.cron.Stop()
		<-stopCtx.Done()
		logging.Info(r.logger, "refresh schedule stopped")
	})
}

// RefreshAll fetches boards for every team, sequentially, and marks the
// store refreshed. Used by both the schedule and the manual trigger.
func (r *Refresher) RefreshAll(ctx context.Context) {
	start := time.Now()
	for _, team := range r.teams {
		if ctx.Err() != nil {
			return
		}
		board := r.provider.BoardForTeam(ctx, team, r.season)
		r.store.SetBoard(board)
		logging.Info(r.logger, "team board refreshed",
			logging.FieldTeam, team.Name,
			logging.FieldTeamID, team.ID,
			logging.FieldCount, len(board.Games),
		)
	}
	r.store.MarkRefreshed(r.now())
	r.metrics.RecordRefreshCycle(time.Since(start), len(r.teams))
	logging.Info(r.logger, "refresh cycle complete",
		logging.FieldCount, len(r.teams),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}
