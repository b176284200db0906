package domain

import "time"

// CalendarEvent is one entry from the upstream iCalendar export. The summary
// is split on " - " into home/away when possible.
type CalendarEvent struct {
	Summary  string    `json:"summary"`
	HomeName string    `json:"homeName"`
	AwayName string    `json:"awayName"`
	StartsAt time.Time `json:"startsAt"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	URL      string    `json:"url,omitempty"`
}

// TeamBoard aggregates everything the dashboard shows for one team. Produced
// by a refresh cycle and served read-only from the store.
type TeamBoard struct {
	Team      TeamRef       `json:"team"`
	Context   LeagueContext `json:"context"`
	Games     []GameRow     `json:"games"`
	Rankings  []RankingRow  `json:"rankings"`
	FetchedAt time.Time     `json:"fetchedAt"`
}
