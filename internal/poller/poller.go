// Package poller watches a single live game's ticker. The upstream ticker is
// an append-only sequence; each cycle re-fetches it and emits only the newly
// appended suffix. The loop is driven by a ticker and stops when the game's
// scheduled window has elapsed or the context is cancelled.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/logging"
	"floorball-games-service/internal/metrics"
	"floorball-games-service/internal/providers"
)

const (
	defaultInterval = 10 * time.Second
	// Games are assumed finished this long after kickoff.
	defaultWindow = 3 * time.Hour
)

// Poller re-fetches a game's ticker on a fixed interval.
type Poller struct {
	provider providers.TickerProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	window   time.Duration
	now      func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent activity of a watch loop.
type Status struct {
	Polling      bool
	LastTick     time.Time
	EntriesSeen  int
	BatchesEmits int
}

// New constructs a Poller with sane defaults.
func New(provider providers.TickerProvider, logger *slog.Logger, recorder *metrics.Recorder, interval, window time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &Poller{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		window:   window,
		now:      time.Now,
	}
}

// Watch polls the game's ticker until kickoff+window elapses or ctx is
// cancelled, sending each batch of newly appended entries on the returned
// channel. The channel is closed when the watch ends. Entries are never
// retracted or reordered upstream, so a shrinking count emits nothing and
// resets the high-water mark.
func (p *Poller) Watch(ctx context.Context, gameID int, kickoff time.Time) <-chan []domain.TickerEntry {
	out := make(chan []domain.TickerEntry, 1)
	deadline := kickoff.Add(p.window)

	go func() {
		defer close(out)

		if !p.now().Before(deadline) {
			logging.Info(p.logger, "game window already closed",
				logging.FieldGameID, gameID,
			)
			return
		}

		p.setPolling(true)
		defer p.setPolling(false)
		logging.Info(p.logger, "ticker watch started",
			logging.FieldGameID, gameID,
			logging.FieldDurationMS, p.interval.Milliseconds(),
		)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		seen := 0
		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "ticker watch cancelled", logging.FieldGameID, gameID)
				return
			case <-ticker.C:
				if !p.now().Before(deadline) {
					logging.Info(p.logger, "ticker watch finished", logging.FieldGameID, gameID)
					return
				}
				seen = p.pollOnce(ctx, gameID, seen, out)
			}
		}
	}()

	return out
}

func (p *Poller) pollOnce(ctx context.Context, gameID int, seen int, out chan<- []domain.TickerEntry) int {
	start := time.Now()
	entries := p.provider.TickerForGame(ctx, gameID)

	emitted := 0
	switch {
	case len(entries) > seen:
		batch := make([]domain.TickerEntry, len(entries)-seen)
		copy(batch, entries[seen:])
		emitted = len(batch)
		select {
		case out <- batch:
		case <-ctx.Done():
			return seen
		}
		seen = len(entries)
	case len(entries) < seen:
		// Should not happen for an append-only feed; resync quietly.
		seen = len(entries)
	}

	p.metrics.RecordPollerCycle(time.Since(start), emitted)
	p.recordTick(seen, emitted)
	return seen
}

func (p *Poller) setPolling(active bool) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Polling = active
}

func (p *Poller) recordTick(seen, emitted int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastTick = p.now()
	p.status.EntriesSeen = seen
	if emitted > 0 {
		p.status.BatchesEmits++
	}
}

// Status returns a snapshot of the watch loop's recent activity.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
