package swissunihockey

import (
	"context"
	"net/url"
	"strconv"

	"floorball-games-service/internal/domain"
)

// TickerForGame fetches the current ticker entries for a game. The upstream
// sequence is append-only; callers diff lengths to detect new events.
func (c *Client) TickerForGame(ctx context.Context, gameID int) []domain.TickerEntry {
	payload := c.fetch(ctx, endpointGameEvents+"/"+strconv.Itoa(gameID), url.Values{})

	entries := entryList(payload)
	out := make([]domain.TickerEntry, 0, len(entries))
	for _, raw := range entries {
		out = append(out, normalizeTicker(raw))
	}
	return out
}
