package domain

import "strings"

// TeamRef identifies a configured team. Built from static configuration and
// never mutated during a run. ClubID is zero when the club is unknown.
type TeamRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	ClubID int    `json:"clubId,omitempty"`
}

// LeagueContext is the (league, game class, group) triple identifying the
// competition a team plays in. Any field may be unresolved; callers must
// branch on presence.
type LeagueContext struct {
	LeagueID    *int    `json:"leagueId,omitempty"`
	GameClassID *int    `json:"gameClassId,omitempty"`
	GroupLabel  *string `json:"groupLabel,omitempty"`
}

// Complete reports whether all three context fields were resolved.
func (c LeagueContext) Complete() bool {
	return c.LeagueID != nil && c.GameClassID != nil && c.GroupLabel != nil
}

// HasLeagueAndClass reports whether the fields needed for league-wide
// queries (rankings, list mode) are present.
func (c LeagueContext) HasLeagueAndClass() bool {
	return c.LeagueID != nil && c.GameClassID != nil
}

// GameRow is the normalized shape of one upstream game record. Every field
// tolerates absence upstream; unresolved fields stay empty or nil.
type GameRow struct {
	GameID      *int   `json:"gameId,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	HomeName    string `json:"homeName"`
	AwayName    string `json:"awayName"`
	HomeLogoURL string `json:"homeLogoUrl,omitempty"`
	AwayLogoURL string `json:"awayLogoUrl,omitempty"`
	Result      string `json:"result"`
	StatusText  string `json:"statusText"`
	StatusID    *int   `json:"statusId,omitempty"`
}

// IsLive reports whether the row looks like an in-progress game. The
// upstream status vocabulary is undocumented, so this is a best-effort
// signal, not a contract.
func (g GameRow) IsLive() bool {
	if g.StatusID != nil && *g.StatusID == 2 {
		return true
	}
	return strings.Contains(strings.ToLower(g.StatusText), "live")
}

// Involves reports whether the team name appears on either side of the row,
// matched case-insensitively by substring.
func (g GameRow) Involves(teamName string) bool {
	name := strings.ToLower(strings.TrimSpace(teamName))
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(g.HomeName), name) ||
		strings.Contains(strings.ToLower(g.AwayName), name)
}

// RankingRow is one normalized standings line.
type RankingRow struct {
	Rank         *int   `json:"rank,omitempty"`
	TeamName     string `json:"teamName"`
	Played       *int   `json:"played,omitempty"`
	Wins         *int   `json:"wins,omitempty"`
	Draws        *int   `json:"draws,omitempty"`
	Losses       *int   `json:"losses,omitempty"`
	GoalsFor     *int   `json:"goalsFor,omitempty"`
	GoalsAgainst *int   `json:"goalsAgainst,omitempty"`
	GoalDiff     *int   `json:"goalDiff,omitempty"`
	Points       *int   `json:"points,omitempty"`
}

// TickerEntry is one append-only in-game event.
type TickerEntry struct {
	Minute string `json:"minute"`
	Text   string `json:"text"`
}
