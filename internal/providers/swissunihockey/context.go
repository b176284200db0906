package swissunihockey

import (
	"context"
	"net/url"
	"strconv"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/logging"
)

// Known locations of the context fields in team metadata, newest layout
// first.
var (
	metaLeaguePaths = [][]string{
		{"data", "context", "league_id"},
		{"data", "league_id"},
		{"data", "attributes", "league_id"},
		{"league_id"},
	}
	metaClassPaths = [][]string{
		{"data", "context", "game_class_id"},
		{"data", "game_class_id"},
		{"data", "attributes", "game_class_id"},
		{"game_class_id"},
	}
	metaGroupPaths = [][]string{
		{"data", "context", "group"},
		{"data", "group"},
		{"data", "attributes", "group"},
		{"group"},
	}
)

// Game entries carry the same fields under different names again.
var (
	entryLeaguePaths = [][]string{
		{"league_id"},
		{"league", "id"},
		{"game", "league_id"},
		{"game", "league", "id"},
	}
	entryClassPaths = [][]string{
		{"game_class_id"},
		{"game_class"},
		{"game", "game_class_id"},
		{"game", "game_class"},
	}
	entryGroupPaths = [][]string{
		{"group"},
		{"group_text"},
		{"game", "group"},
	}
)

// ResolveContext derives a team's league, game class, and group. Team
// metadata is tried first; any still-missing field is filled by scanning a
// small page of the team's games. First-seen values win and later entries
// never override. A partially resolved context is a normal outcome.
func (c *Client) ResolveContext(ctx context.Context, teamID, season int) domain.LeagueContext {
	lc := domain.LeagueContext{}

	meta := c.fetch(ctx, endpointTeams+"/"+strconv.Itoa(teamID), url.Values{
		"season": []string{strconv.Itoa(season)},
	})
	fillFromPaths(&lc, meta, metaLeaguePaths, metaClassPaths, metaGroupPaths)
	if lc.Complete() {
		return lc
	}

	params := url.Values{
		"mode":           []string{modeTeam},
		"team_id":        []string{strconv.Itoa(teamID)},
		"season":         []string{strconv.Itoa(season)},
		"games_per_page": []string{strconv.Itoa(contextScanPageSize)},
	}
	page := c.fetch(ctx, endpointGames, params)
	for _, raw := range entryList(page) {
		fillFromPaths(&lc, raw, entryLeaguePaths, entryClassPaths, entryGroupPaths)
		if lc.Complete() {
			break
		}
	}

	if !lc.Complete() {
		logging.Info(c.logger, "team context partially resolved",
			logging.FieldTeamID, teamID,
			logging.FieldSeason, season,
			"has_league", lc.LeagueID != nil,
			"has_class", lc.GameClassID != nil,
			"has_group", lc.GroupLabel != nil,
		)
	}
	return lc
}

func fillFromPaths(lc *domain.LeagueContext, raw any, leaguePaths, classPaths, groupPaths [][]string) {
	if lc.LeagueID == nil {
		lc.LeagueID = firstInt(raw, leaguePaths...)
	}
	if lc.GameClassID == nil {
		lc.GameClassID = firstInt(raw, classPaths...)
	}
	if lc.GroupLabel == nil {
		if v := firstStr(raw, groupPaths...); v != "" {
			lc.GroupLabel = &v
		}
	}
}
