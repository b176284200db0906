package config

import (
	"os"
	"strconv"
	"strings"

	"floorball-games-service/internal/domain"
)

// defaultTeams is the roster the dashboard ships with.
func defaultTeams() []domain.TeamRef {
	return []domain.TeamRef{
		{ID: 429523, Name: "Tigers Langnau"},
		{ID: 429524, Name: "Floorball Köniz Bern"},
		{ID: 429525, Name: "Floorball Thurgau"},
	}
}

// loadTeams parses the TEAMS env var. Format, semicolon-separated:
//
//	Name:teamID[:clubID];Name:teamID;...
//
// Malformed entries are skipped; an empty or fully malformed value falls
// back to the default roster.
func loadTeams() []domain.TeamRef {
	raw := strings.TrimSpace(os.Getenv(envTeams))
	if raw == "" {
		return defaultTeams()
	}

	teams := make([]domain.TeamRef, 0, 4)
	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if name == "" || err != nil || id <= 0 {
			continue
		}
		ref := domain.TeamRef{ID: id, Name: name}
		if len(parts) >= 3 {
			if clubID, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && clubID > 0 {
				ref.ClubID = clubID
			}
		}
		teams = append(teams, ref)
	}

	if len(teams) == 0 {
		return defaultTeams()
	}
	return teams
}
