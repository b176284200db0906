package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordFetchAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordFetchAttempt("games", 20*time.Millisecond, nil)
	r.RecordFetchAttempt("games", 35*time.Millisecond, errors.New("boom"))
	r.RecordFetchAttempt("rankings", 5*time.Millisecond, nil)

	if got := r.FetchCalls("games"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.FetchErrors("games"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.LastFetchLatency("games"); got != 35*time.Millisecond {
		t.Fatalf("unexpected latency %v", got)
	}
	if got := r.FetchCalls("rankings"); got != 1 {
		t.Fatalf("expected 1 ranking call, got %d", got)
	}
}

func TestRecordFallback(t *testing.T) {
	r := NewRecorder()

	r.RecordFallback("club")
	r.RecordFallback("list")
	r.RecordFallback("list")

	if got := r.FallbackHits("club"); got != 1 {
		t.Fatalf("expected 1 club hit, got %d", got)
	}
	if got := r.FallbackHits("list"); got != 2 {
		t.Fatalf("expected 2 list hits, got %d", got)
	}
	if got := r.FallbackHits("unknown"); got != 0 {
		t.Fatalf("expected 0 hits, got %d", got)
	}
}

func TestSnapshotForUnknownEndpoint(t *testing.T) {
	r := NewRecorder()
	snap := r.Snapshot("never-seen")
	if snap.Calls != 0 || snap.Errors != 0 || snap.LastCallLatency != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordFetchAttempt("games", time.Millisecond, nil)
	r.RecordFallback("club")
	r.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	r.RecordPollerCycle(time.Millisecond, 1)
	r.RecordRefreshCycle(time.Millisecond, 3)

	if r.FetchCalls("games") != 0 || r.FallbackHits("club") != 0 {
		t.Fatal("nil recorder must report zeros")
	}
}
