package providers

import (
	"context"

	"floorball-games-service/internal/domain"
)

// GameProvider defines how a team's games are fetched and normalized. An
// empty result is the normal "no games" outcome, never an error.
type GameProvider interface {
	GamesForTeam(ctx context.Context, team domain.TeamRef, season, limit int) []domain.GameRow
}

// ContextProvider resolves a team's league context. Partial context is a
// valid result; callers branch on field presence.
type ContextProvider interface {
	ResolveContext(ctx context.Context, teamID, season int) domain.LeagueContext
}

// RankingProvider fetches normalized standings for a team's competition.
type RankingProvider interface {
	RankingsForTeam(ctx context.Context, team domain.TeamRef, season int) []domain.RankingRow
}

// TickerProvider fetches the append-only ticker entries for a game.
type TickerProvider interface {
	TickerForGame(ctx context.Context, gameID int) []domain.TickerEntry
}

// CalendarProvider fetches upcoming events from the iCalendar export.
type CalendarProvider interface {
	UpcomingEvents(ctx context.Context, teamID, limit int) []domain.CalendarEvent
}

// BoardProvider assembles the per-team dashboard aggregate.
type BoardProvider interface {
	BoardForTeam(ctx context.Context, team domain.TeamRef, season int) domain.TeamBoard
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	ContextProvider
	RankingProvider
	TickerProvider
	CalendarProvider
	BoardProvider
}
