package http

import (
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/gorilla/mux"

	"floorball-games-service/internal/domain"
	"floorball-games-service/internal/errlog"
	"floorball-games-service/internal/logging"
	"floorball-games-service/internal/providers"
	"floorball-games-service/internal/store"
)

// RefreshFunc re-runs a full board refresh using the request's context.
type RefreshFunc func(r *nethttp.Request)

// Handler wires HTTP routes to the store and the upstream provider.
type Handler struct {
	store       *store.MemoryStore
	provider    providers.DataProvider
	teams       []domain.TeamRef
	season      int
	gamesLimit  int
	logger      *slog.Logger
	diagnostics func() []errlog.Entry
	refreshAll  RefreshFunc
}

// NewHandler constructs a Handler.
func NewHandler(st *store.MemoryStore, provider providers.DataProvider, refreshAll RefreshFunc, teams []domain.TeamRef, season, gamesLimit int, diagnostics func() []errlog.Entry, logger *slog.Logger) *Handler {
	return &Handler{
		store:       st,
		provider:    provider,
		teams:       teams,
		season:      season,
		gamesLimit:  gamesLimit,
		logger:      logger,
		diagnostics: diagnostics,
		refreshAll:  refreshAll,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: true once the first refresh landed.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.store.Ready() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "first refresh pending", h.logger)
}

// Teams returns the configured roster.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.teams}, h.logger)
}

// TeamBoard returns the stored board for a team.
func (h *Handler) TeamBoard(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamFromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
		return
	}

	board, ok := h.store.Board(team.ID)
	if !ok {
		// Not refreshed yet; serve an empty board rather than an error so
		// the dashboard can render the section placeholder.
		board = domain.TeamBoard{Team: team}
	}
	writeJSON(w, nethttp.StatusOK, board, h.logger)
}

// TeamGames retrieves a team's games live through the cache-backed client.
func (h *Handler) TeamGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamFromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
		return
	}

	limit := h.limitParam(r)
	games := h.provider.GamesForTeam(r.Context(), team, h.seasonParam(r), limit)
	logging.Info(loggerFromContext(r, h.logger), "served team games",
		logging.FieldTeamID, team.ID,
		logging.FieldCount, len(games),
	)
	writeJSON(w, nethttp.StatusOK, map[string]any{"team": team, "games": games}, h.logger)
}

// TeamRankings returns the standings for the team's competition. An
// unresolved context yields an informational notice, not an error.
func (h *Handler) TeamRankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamFromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
		return
	}

	rankings := h.provider.RankingsForTeam(r.Context(), team, h.seasonParam(r))
	payload := map[string]any{"team": team, "rankings": rankings}
	if rankings == nil {
		payload["notice"] = "league context unresolved; standings unavailable"
		payload["rankings"] = []domain.RankingRow{}
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// TeamCalendar returns the team's next calendar events.
func (h *Handler) TeamCalendar(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamFromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
		return
	}

	events := h.provider.UpcomingEvents(r.Context(), team.ID, h.limitParam(r))
	writeJSON(w, nethttp.StatusOK, map[string]any{"team": team, "events": events}, h.logger)
}

// GameTicker returns the current ticker entries for a game.
func (h *Handler) GameTicker(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	entries := h.provider.TickerForGame(r.Context(), id)
	writeJSON(w, nethttp.StatusOK, map[string]any{"gameId": id, "entries": entries}, h.logger)
}

// Refresh re-runs the full board refresh synchronously.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.refreshAll == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}
	h.refreshAll(r)
	writeJSON(w, nethttp.StatusAccepted, map[string]string{"status": "refreshed"}, h.logger)
}

// Diagnostics returns the recent upstream fetch failures.
func (h *Handler) Diagnostics(w nethttp.ResponseWriter, r *nethttp.Request) {
	entries := []errlog.Entry{}
	if h.diagnostics != nil {
		entries = h.diagnostics()
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"errors": entries}, h.logger)
}

func (h *Handler) teamFromRequest(r *nethttp.Request) (domain.TeamRef, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return domain.TeamRef{}, false
	}
	for _, team := range h.teams {
		if team.ID == id {
			return team, true
		}
	}
	return domain.TeamRef{}, false
}

func (h *Handler) limitParam(r *nethttp.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			return n
		}
	}
	return h.gamesLimit
}

func (h *Handler) seasonParam(r *nethttp.Request) int {
	if raw := r.URL.Query().Get("season"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return h.season
}
