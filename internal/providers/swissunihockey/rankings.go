package swissunihockey

import (
	"context"
	"net/url"
	"strconv"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/logging"
)

// RankingsForContext fetches the standings for a resolved competition. When
// league or game class is unresolved the lookup is skipped outright — no
// request is issued and nil is returned, which downstream renders as an
// informational notice.
func (c *Client) RankingsForContext(ctx context.Context, season int, lc domain.LeagueContext) []domain.RankingRow {
	if !lc.HasLeagueAndClass() {
		return nil
	}

	params := url.Values{
		"season":     []string{strconv.Itoa(season)},
		"league":     []string{strconv.Itoa(*lc.LeagueID)},
		"game_class": []string{strconv.Itoa(*lc.GameClassID)},
	}
	if lc.GroupLabel != nil {
		params.Set("group", *lc.GroupLabel)
	}

	entries := entryList(c.fetch(ctx, endpointRankings, params))
	rows := make([]domain.RankingRow, 0, len(entries))
	for _, raw := range entries {
		rows = append(rows, normalizeRanking(raw))
	}
	return rows
}

// RankingsForTeam resolves the team's context and fetches its standings.
func (c *Client) RankingsForTeam(ctx context.Context, team domain.TeamRef, season int) []domain.RankingRow {
	lc := c.ResolveContext(ctx, team.ID, season)
	if !lc.HasLeagueAndClass() {
		logging.Info(c.logger, "skipping rankings, context unresolved",
			logging.FieldTeam, team.Name,
			logging.FieldTeamID, team.ID,
		)
		return nil
	}
	return c.RankingsForContext(ctx, season, lc)
}
