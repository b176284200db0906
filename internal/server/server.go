package server

import (
	"context"
	"log/slog"
	"net/http"

	"floorball-games-service/internal/cache"
	"floorball-games-service/internal/config"
	"floorball-games-service/internal/errlog"
	httpapi "floorball-games-service/internal/http"
	"floorball-games-service/internal/logging"
	"floorball-games-service/internal/metrics"
	"floorball-games-service/internal/providers/swissunihockey"
	"floorball-games-service/internal/refresh"
	"floorball-games-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server wires the upstream client, refresher, and HTTP surface together.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	client        *swissunihockey.Client
	refresher     *refresh.Refresher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(ctx, cfg, logger)

	client := swissunihockey.NewClient(swissunihockey.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		MaxAttempts:  cfg.Upstream.RetryAttempts,
		RetryBackoff: cfg.Upstream.RetryBackoff,
		GamesLimit:   cfg.GamesLimit,
		Logger:       logger,
		Metrics:      recorder,
		Errors:       errlog.New(cfg.Upstream.ErrorLogCap),
		Cache:        cache.New(cfg.Upstream.CacheTTL),
	})

	memoryStore := store.NewMemoryStore()
	refresher := refresh.New(client, memoryStore, cfg.Teams, cfg.Season, cfg.RefreshSpec, logger, recorder)

	handler := httpapi.NewHandler(
		memoryStore,
		client,
		func(r *http.Request) { refresher.RefreshAll(r.Context()) },
		cfg.Teams,
		cfg.Season,
		cfg.GamesLimit,
		client.Diagnostics,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		client:        client,
		refresher:     refresher,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recorder, promHandler, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}
	if promHandler == nil {
		return recorder, nil, shutdown
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	srv := &http.Server{
		Addr:        ":" + cfg.Metrics.Port,
		Handler:     mux,
		ReadTimeout: readTimeout,
		IdleTimeout: idleTimeout,
	}
	return recorder, netHTTPServer{srv: srv}, shutdown
}

// Run starts the refresher and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics(stop)
	s.startServer(stop)
	if err := s.refresher.Start(ctx); err != nil {
		logging.Error(s.logger, "refresh schedule failed to start", err)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, stop)
}

func (s *Server) startMetrics(stop context.CancelFunc) {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, stop)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, stop context.CancelFunc) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error(logger, name+" server failed", err)
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.refresher.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "http server shutdown failed", err)
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics server shutdown failed", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics exporter shutdown failed", err)
		}
	}
	logging.Info(s.logger, "shutdown complete")
}
