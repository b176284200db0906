package timeutil

import "time"

// Layouts used across the dashboard. The upstream renders Swiss-style dates.
const (
	SwissDateLayout = "02.01.2006"
	ClockLayout     = "15:04"
)

// FormatSwissDate formats a time as DD.MM.YYYY.
func FormatSwissDate(t time.Time) string {
	return t.Format(SwissDateLayout)
}

// FormatClock formats a time as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// WindowEnd returns the moment a game's live window closes: kickoff extended
// by the configured duration.
func WindowEnd(kickoff time.Time, window time.Duration) time.Time {
	return kickoff.Add(window)
}
