package swissunihockey

import (
	"context"
	"net/url"
	"strconv"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/logging"
)

// queryStrategy is one parameter shape to try against the games endpoint.
// build returns false when the strategy lacks a required identifier.
type queryStrategy struct {
	mode  string
	build func() (url.Values, bool)
}

// GamesForTeam fetches a team's games, trying parameter shapes in priority
// order until one yields entries: team mode (with whatever context was
// resolved), club mode, then the league-wide list mode filtered by team
// name. An empty result means "no games", not an error.
func (c *Client) GamesForTeam(ctx context.Context, team domain.TeamRef, season, limit int) []domain.GameRow {
	lc := c.ResolveContext(ctx, team.ID, season)
	return c.gamesWithContext(ctx, team, season, limit, lc)
}

func (c *Client) gamesWithContext(ctx context.Context, team domain.TeamRef, season, limit int, lc domain.LeagueContext) []domain.GameRow {
	if limit <= 0 {
		limit = c.gamesLimit
	}

	strategies := []queryStrategy{
		{
			mode: modeTeam,
			build: func() (url.Values, bool) {
				params := url.Values{
					"mode":           []string{modeTeam},
					"team_id":        []string{strconv.Itoa(team.ID)},
					"season":         []string{strconv.Itoa(season)},
					"games_per_page": []string{strconv.Itoa(limit)},
					"view":           []string{"full"},
				}
				augmentWithContext(params, lc)
				return params, true
			},
		},
		{
			mode: modeClub,
			build: func() (url.Values, bool) {
				if team.ClubID == 0 {
					return nil, false
				}
				return url.Values{
					"mode":           []string{modeClub},
					"club_id":        []string{strconv.Itoa(team.ClubID)},
					"season":         []string{strconv.Itoa(season)},
					"games_per_page": []string{strconv.Itoa(limit)},
				}, true
			},
		},
	}

	for _, strategy := range strategies {
		params, ok := strategy.build()
		if !ok {
			continue
		}
		if strategy.mode != modeTeam {
			c.metrics.RecordFallback(strategy.mode)
		}
		entries := entryList(c.fetch(ctx, endpointGames, params))
		if len(entries) == 0 {
			continue
		}
		rows := make([]domain.GameRow, 0, len(entries))
		for _, raw := range entries {
			rows = append(rows, normalizeGame(raw))
		}
		return truncate(rows, limit)
	}

	if lc.HasLeagueAndClass() {
		c.metrics.RecordFallback(modeList)
		if rows := c.listModeGames(ctx, team, season, lc); len(rows) > 0 {
			return truncate(rows, limit)
		}
	}

	logging.Info(c.logger, "no games found for team",
		logging.FieldTeam, team.Name,
		logging.FieldTeamID, team.ID,
		logging.FieldSeason, season,
	)
	return []domain.GameRow{}
}

// listModeGames walks the league-wide listing, filtering rows by the team's
// display name. List mode paginates through a backward round pointer; the
// walk keeps a visited set and a hard step cap because the pointer is not
// guaranteed to terminate or stay acyclic.
func (c *Client) listModeGames(ctx context.Context, team domain.TeamRef, season int, lc domain.LeagueContext) []domain.GameRow {
	base := url.Values{
		"mode":       []string{modeList},
		"season":     []string{strconv.Itoa(season)},
		"league":     []string{strconv.Itoa(*lc.LeagueID)},
		"game_class": []string{strconv.Itoa(*lc.GameClassID)},
	}
	if lc.GroupLabel != nil {
		base.Set("group", *lc.GroupLabel)
	}

	matches := make([]domain.GameRow, 0, 8)
	visited := make(map[string]bool)
	round := ""

	for step := 0; step < maxRoundWalk; step++ {
		params := cloneValues(base)
		if round != "" {
			params.Set("round", round)
		}

		payload := c.fetch(ctx, endpointGames, params)
		for _, raw := range entryList(payload) {
			row := normalizeGame(raw)
			if row.Involves(team.Name) {
				matches = append(matches, row)
			}
		}

		next := previousRound(payload)
		if next == "" || visited[next] {
			break
		}
		visited[next] = true
		round = next
	}

	return matches
}

func augmentWithContext(params url.Values, lc domain.LeagueContext) {
	if lc.LeagueID != nil {
		params.Set("league", strconv.Itoa(*lc.LeagueID))
	}
	if lc.GameClassID != nil {
		params.Set("game_class", strconv.Itoa(*lc.GameClassID))
	}
	if lc.GroupLabel != nil {
		params.Set("group", *lc.GroupLabel)
	}
}

func cloneValues(src url.Values) url.Values {
	dst := make(url.Values, len(src))
	for k, vs := range src {
		dst[k] = append([]string(nil), vs...)
	}
	return dst
}

func truncate(rows []domain.GameRow, limit int) []domain.GameRow {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
