package swissunihockey

import "time"

const (
	defaultBaseURL      = "https://api-v2.swissunihockey.ch/api/"
	defaultHTTPTimeout  = 10 * time.Second
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 500 * time.Millisecond
	defaultGamesLimit   = 3

	acceptJSON     = "application/json"
	acceptCalendar = "text/calendar, text/plain"

	endpointTeams      = "teams"
	endpointGames      = "games"
	endpointRankings   = "rankings"
	endpointGameEvents = "game_events"
	endpointCalendars  = "calendars"

	modeTeam = "team"
	modeClub = "club"
	modeList = "list"

	// Entries scanned when the team metadata lacks context fields.
	contextScanPageSize = 5
	// Hard cap on the backward round walk in list mode. The upstream's
	// "previous round" pointer is not guaranteed to terminate.
	maxRoundWalk = 70
)
