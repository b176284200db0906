package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"floorball-games-service/internal/metrics"
)

// NewRouter registers the dashboard API routes.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(logger, recorder))

	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams", handler.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id:[0-9]+}", handler.TeamBoard).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id:[0-9]+}/games", handler.TeamGames).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id:[0-9]+}/rankings", handler.TeamRankings).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{id:[0-9]+}/calendar", handler.TeamCalendar).Methods(nethttp.MethodGet)
	r.HandleFunc("/games/{id:[0-9]+}/ticker", handler.GameTicker).Methods(nethttp.MethodGet)
	r.HandleFunc("/refresh", handler.Refresh).Methods(nethttp.MethodPost)
	r.HandleFunc("/diagnostics/errors", handler.Diagnostics).Methods(nethttp.MethodGet)

	return r
}
