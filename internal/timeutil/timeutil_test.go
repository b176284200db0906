package timeutil

import (
	"testing"
	"time"
)

func TestFormatSwissDate(t *testing.T) {
	at := time.Date(2025, time.September, 1, 19, 30, 0, 0, time.UTC)
	if got := FormatSwissDate(at); got != "01.09.2025" {
		t.Fatalf("expected 01.09.2025, got %q", got)
	}
	if got := FormatClock(at); got != "19:30" {
		t.Fatalf("expected 19:30, got %q", got)
	}
}

func TestWindowEnd(t *testing.T) {
	kickoff := time.Date(2025, time.September, 1, 19, 30, 0, 0, time.UTC)
	end := WindowEnd(kickoff, 3*time.Hour)
	if !end.Equal(kickoff.Add(3 * time.Hour)) {
		t.Fatalf("unexpected window end %v", end)
	}
}
