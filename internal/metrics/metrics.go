package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches
// and fallback usage. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*endpointStats
	fallbacks map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*endpointStats),
		fallbacks: make(map[string]int),
		otel:      otel,
	}
}

// RecordFetchAttempt increments counters for an upstream fetch and stores
// the last observed latency.
func (r *Recorder) RecordFetchAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(endpoint, duration, err)
	}
}

// RecordFallback tracks that the game retriever had to fall through to the
// named query mode (club, list, round-walk).
func (r *Recorder) RecordFallback(mode string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.fallbacks[mode]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFallback(mode)
	}
}

// FetchCalls returns the total fetch attempts recorded for an endpoint.
func (r *Recorder) FetchCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// FetchErrors returns the total failed fetch attempts for an endpoint.
func (r *Recorder) FetchErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// FallbackHits returns how often the named fallback mode was used.
func (r *Recorder) FallbackHits(mode string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[mode]
}

// LastFetchLatency returns the last recorded latency for an endpoint.
func (r *Recorder) LastFetchLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(endpoint)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics for the serving surface.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks live ticker poll cycles.
func (r *Recorder) RecordPollerCycle(duration time.Duration, emitted int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, emitted)
}

// RecordRefreshCycle tracks dashboard refresh cycles.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, teams int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, teams)
}

func (r *Recorder) ensureStatsLocked(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}

func (r *Recorder) snapshot(endpoint string) endpointStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[endpoint]; ok && stats != nil {
		return *stats
	}
	return endpointStats{}
}
