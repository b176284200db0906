package swissunihockey

import (
	"strings"

	"floorball-games-service/internal/dig"
	"floorball-games-service/internal/domain"
)

// The upstream has shipped at least three layouts for the same logical game
// record: a nested "game" object, a flat object, and the list-mode tabular
// row made of indexed cells. Each field below tries the known layouts in
// priority order and keeps the first non-empty hit.

// List-mode cell indexes.
const (
	cellDateTime = 0
	cellHomeTeam = 2
	cellAwayTeam = 3
	cellResult   = 4
)

func normalizeGame(raw any) domain.GameRow {
	row := domain.GameRow{
		Date:        firstStr(raw, path("game", "date"), path("date")),
		Time:        firstStr(raw, path("game", "time"), path("time")),
		HomeName:    firstStr(raw, path("game", "home_team", "name"), path("home_team", "name"), path("home_name")),
		AwayName:    firstStr(raw, path("game", "away_team", "name"), path("away_team", "name"), path("away_name")),
		HomeLogoURL: firstStr(raw, path("game", "home_team", "logo_url"), path("home_team", "logo_url"), path("home_logo")),
		AwayLogoURL: firstStr(raw, path("game", "away_team", "logo_url"), path("away_team", "logo_url"), path("away_logo")),
		Result:      firstStr(raw, path("game", "result"), path("result")),
		StatusText:  firstStr(raw, path("game", "status_txt"), path("status_txt"), path("status_text")),
		StatusID:    firstInt(raw, path("game", "status_id"), path("status_id")),
	}

	if row.GameID = firstInt(raw, path("game", "id"), path("id")); row.GameID == nil {
		row.GameID = linkID(raw)
	}

	// List-mode cell fallbacks.
	if row.Date == "" {
		row.Date = cellText(raw, cellDateTime, 0)
	}
	if row.Time == "" {
		row.Time = cellText(raw, cellDateTime, 1)
	}
	if row.HomeName == "" {
		row.HomeName = cellText(raw, cellHomeTeam, 0)
	}
	if row.AwayName == "" {
		row.AwayName = cellText(raw, cellAwayTeam, 0)
	}
	if row.Result == "" {
		row.Result = cellText(raw, cellResult, 0)
	}

	return row
}

func normalizeRanking(raw any) domain.RankingRow {
	row := domain.RankingRow{
		Rank:         firstInt(raw, path("rank"), path("position")),
		TeamName:     firstStr(raw, path("team_name"), path("team", "name")),
		Played:       firstInt(raw, path("games_played"), path("played")),
		Wins:         firstInt(raw, path("wins")),
		Draws:        firstInt(raw, path("draws"), path("ties")),
		Losses:       firstInt(raw, path("losses"), path("defeats")),
		GoalsFor:     firstInt(raw, path("goals_for"), path("goals_scored")),
		GoalsAgainst: firstInt(raw, path("goals_against"), path("goals_received")),
		GoalDiff:     firstInt(raw, path("goal_diff"), path("goals_diff")),
		Points:       firstInt(raw, path("points")),
	}

	if row.Rank == nil {
		row.Rank = dig.AsInt(cellText(raw, 0, 0))
	}
	if row.TeamName == "" {
		row.TeamName = cellText(raw, 1, 0)
	}

	return row
}

func normalizeTicker(raw any) domain.TickerEntry {
	entry := domain.TickerEntry{
		Minute: firstStr(raw, path("minute"), path("time")),
		Text:   firstStr(raw, path("text"), path("event"), path("description")),
	}
	if entry.Minute == "" {
		entry.Minute = cellText(raw, 0, 0)
	}
	if entry.Text == "" {
		entry.Text = cellText(raw, 1, 0)
	}
	return entry
}

// entryList locates the record list inside a payload, across the shapes the
// API has used: a top-level "entries" array, the region/rows table of list
// mode, a bare "rows" array, or "data" being the array itself.
func entryList(payload map[string]any) []any {
	if entries := dig.Slice(payload, "entries"); entries != nil {
		return entries
	}
	if regions := dig.Slice(payload, "data", "regions"); len(regions) > 0 {
		if rows := dig.Slice(regions[0], "rows"); rows != nil {
			return rows
		}
	}
	if rows := dig.Slice(payload, "rows"); rows != nil {
		return rows
	}
	if data := dig.Slice(payload, "data"); data != nil {
		return data
	}
	return nil
}

// previousRound extracts the backward round pointer from a list-mode page.
func previousRound(payload map[string]any) string {
	if v := dig.Str(payload, "data", "slider", "previous", "set_in_context", "round"); v != "" {
		return v
	}
	if v := dig.Str(payload, "context", "round"); v != "" {
		return v
	}
	return dig.Str(payload, "previous_round")
}

func path(keys ...string) []string { return keys }

func firstStr(raw any, paths ...[]string) string {
	for _, p := range paths {
		if v := dig.Str(raw, p...); v != "" {
			return v
		}
	}
	return ""
}

func firstInt(raw any, paths ...[]string) *int {
	for _, p := range paths {
		if v := dig.Int(raw, p...); v != nil {
			return v
		}
	}
	return nil
}

// linkID pulls a game id out of a list-mode row link, e.g.
// {"link": {"type": "page", "page": "game_detail", "ids": [123]}}.
func linkID(raw any) *int {
	ids := dig.Slice(raw, "link", "ids")
	if len(ids) == 0 {
		return nil
	}
	return dig.AsInt(ids[0])
}

// cellText reads entry number sub of the text array in cell idx. Cells are
// either {"text": ["..."]} maps or plain strings.
func cellText(raw any, idx, sub int) string {
	cells := dig.Slice(raw, "cells")
	if idx >= len(cells) {
		return ""
	}
	switch cell := cells[idx].(type) {
	case map[string]any:
		texts := dig.Slice(cell, "text")
		if sub < len(texts) {
			if s, ok := texts[sub].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	case string:
		if sub == 0 {
			return strings.TrimSpace(cell)
		}
	}
	return ""
}
