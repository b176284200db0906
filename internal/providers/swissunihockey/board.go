package swissunihockey

import (
	"context"

	"floorball-games-service/internal/domain"
)

// BoardForTeam assembles the full dashboard aggregate for one team: context,
// games, and standings. Context is resolved once and shared between the game
// and ranking lookups.
func (c *Client) BoardForTeam(ctx context.Context, team domain.TeamRef, season int) domain.TeamBoard {
	lc := c.ResolveContext(ctx, team.ID, season)
	return domain.TeamBoard{
		Team:      team,
		Context:   lc,
		Games:     c.gamesWithContext(ctx, team, season, c.gamesLimit, lc),
		Rankings:  c.RankingsForContext(ctx, season, lc),
		FetchedAt: c.now(),
	}
}
