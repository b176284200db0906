package swissunihockey

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestNormalizeGameNestedLayout(t *testing.T) {
	raw := decode(t, `{"game": {
		"id": 123,
		"date": "2025-09-01",
		"time": "19:30",
		"home_team": {"name": "Tigers Langnau", "logo_url": "https://cdn/home.png"},
		"away_team": {"name": "Floorball Köniz", "logo_url": "https://cdn/away.png"},
		"result": "3:2",
		"status_txt": "Schlussresultat",
		"status_id": 3
	}}`)

	row := normalizeGame(raw)
	if row.GameID == nil || *row.GameID != 123 {
		t.Fatalf("unexpected id %v", row.GameID)
	}
	if row.Date != "2025-09-01" || row.Time != "19:30" {
		t.Fatalf("unexpected date/time %q %q", row.Date, row.Time)
	}
	if row.HomeName != "Tigers Langnau" || row.AwayName != "Floorball Köniz" {
		t.Fatalf("unexpected teams %q vs %q", row.HomeName, row.AwayName)
	}
	if row.HomeLogoURL != "https://cdn/home.png" || row.AwayLogoURL != "https://cdn/away.png" {
		t.Fatalf("unexpected logos %q %q", row.HomeLogoURL, row.AwayLogoURL)
	}
	if row.Result != "3:2" || row.StatusText != "Schlussresultat" {
		t.Fatalf("unexpected result %q status %q", row.Result, row.StatusText)
	}
	if row.StatusID == nil || *row.StatusID != 3 {
		t.Fatalf("unexpected status id %v", row.StatusID)
	}
}

func TestNormalizeGameFlatLayout(t *testing.T) {
	raw := decode(t, `{
		"id": 7,
		"date": "2025-10-12",
		"home_name": "Zug United",
		"away_name": "Alligator Malans",
		"result": "-"
	}`)

	row := normalizeGame(raw)
	if row.GameID == nil || *row.GameID != 7 {
		t.Fatalf("unexpected id %v", row.GameID)
	}
	if row.HomeName != "Zug United" || row.AwayName != "Alligator Malans" {
		t.Fatalf("unexpected teams %q vs %q", row.HomeName, row.AwayName)
	}
	if row.Result != "-" {
		t.Fatalf("unexpected result %q", row.Result)
	}
}

func TestNormalizeGameCellLayout(t *testing.T) {
	raw := decode(t, `{
		"cells": [
			{"text": ["01.09.2025", "19:30"]},
			{"text": ["Halle Oberfeld"]},
			{"text": ["Tigers Langnau"]},
			{"text": ["Wiler-Ersigen"]},
			{"text": ["2:5"]}
		],
		"link": {"type": "page", "page": "game_detail", "ids": [991]}
	}`)

	row := normalizeGame(raw)
	if row.Date != "01.09.2025" || row.Time != "19:30" {
		t.Fatalf("unexpected date/time %q %q", row.Date, row.Time)
	}
	if row.HomeName != "Tigers Langnau" || row.AwayName != "Wiler-Ersigen" {
		t.Fatalf("unexpected teams %q vs %q", row.HomeName, row.AwayName)
	}
	if row.Result != "2:5" {
		t.Fatalf("unexpected result %q", row.Result)
	}
	if row.GameID == nil || *row.GameID != 991 {
		t.Fatalf("unexpected id from link %v", row.GameID)
	}
}

func TestNormalizeGameEmptyRecord(t *testing.T) {
	row := normalizeGame(map[string]any{})
	if row.GameID != nil || row.HomeName != "" || row.Date != "" {
		t.Fatalf("expected zero row, got %+v", row)
	}
}

func TestNormalizeRanking(t *testing.T) {
	raw := decode(t, `{
		"rank": 1,
		"team_name": "Wiler-Ersigen",
		"games_played": 10,
		"wins": 8,
		"draws": 1,
		"losses": 1,
		"goals_for": 62,
		"goals_against": 30,
		"goal_diff": 32,
		"points": 25
	}`)

	row := normalizeRanking(raw)
	if row.Rank == nil || *row.Rank != 1 {
		t.Fatalf("unexpected rank %v", row.Rank)
	}
	if row.TeamName != "Wiler-Ersigen" {
		t.Fatalf("unexpected team %q", row.TeamName)
	}
	if row.Points == nil || *row.Points != 25 {
		t.Fatalf("unexpected points %v", row.Points)
	}
	if row.GoalDiff == nil || *row.GoalDiff != 32 {
		t.Fatalf("unexpected diff %v", row.GoalDiff)
	}
}

func TestNormalizeRankingCellLayout(t *testing.T) {
	raw := decode(t, `{"cells": [
		{"text": ["4"]},
		{"text": ["Floorball Thurgau"]}
	]}`)

	row := normalizeRanking(raw)
	if row.Rank == nil || *row.Rank != 4 {
		t.Fatalf("unexpected rank %v", row.Rank)
	}
	if row.TeamName != "Floorball Thurgau" {
		t.Fatalf("unexpected team %q", row.TeamName)
	}
}

func TestNormalizeTicker(t *testing.T) {
	flat := normalizeTicker(decode(t, `{"minute": "12:44", "text": "Tor Tigers Langnau 1:0"}`))
	if flat.Minute != "12:44" || flat.Text != "Tor Tigers Langnau 1:0" {
		t.Fatalf("unexpected entry %+v", flat)
	}

	cells := normalizeTicker(decode(t, `{"cells": [
		{"text": ["58:02"]},
		{"text": ["Timeout Wiler-Ersigen"]}
	]}`))
	if cells.Minute != "58:02" || cells.Text != "Timeout Wiler-Ersigen" {
		t.Fatalf("unexpected entry %+v", cells)
	}
}

func TestEntryListShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"entries", `{"entries": [{}, {}]}`, 2},
		{"region rows", `{"data": {"regions": [{"rows": [{}, {}, {}]}]}}`, 3},
		{"bare rows", `{"rows": [{}]}`, 1},
		{"data array", `{"data": [{}, {}]}`, 2},
		{"nothing", `{"data": {"context": {}}}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, _ := decode(t, tc.body).(map[string]any)
			if got := len(entryList(payload)); got != tc.want {
				t.Fatalf("expected %d entries, got %d", tc.want, got)
			}
		})
	}
}

func TestPreviousRoundPaths(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"slider", `{"data": {"slider": {"previous": {"set_in_context": {"round": "6"}}}}}`, "6"},
		{"context", `{"context": {"round": "4"}}`, "4"},
		{"flat", `{"previous_round": "2"}`, "2"},
		{"absent", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, _ := decode(t, tc.body).(map[string]any)
			if got := previousRound(payload); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
