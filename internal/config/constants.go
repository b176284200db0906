package config

import "time"

const (
	envPort          = "PORT"
	envSeason        = "SEASON"
	envTeams         = "TEAMS"
	envRefreshSpec   = "REFRESH_SCHEDULE"
	envGamesLimit    = "GAMES_LIMIT"
	envUpstreamBase  = "UPSTREAM_BASE_URL"
	envUpstreamTO    = "UPSTREAM_TIMEOUT"
	envRetryAttempts = "UPSTREAM_RETRY_ATTEMPTS"
	envRetryBackoff  = "UPSTREAM_RETRY_BACKOFF"
	envCacheTTL      = "UPSTREAM_CACHE_TTL"
	envErrorLogCap   = "ERROR_LOG_CAPACITY"
	envTickerTick    = "TICKER_POLL_INTERVAL"
	envTickerWindow  = "TICKER_GAME_WINDOW"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Refresh cadence for the team boards; the upstream publishes no quota,
	// so stay conservative.
	defaultRefreshSpec  = "@every 5m"
	defaultGamesLimit   = 3
	defaultUpstreamBase = "https://api-v2.swissunihockey.ch/api/"
	defaultTimeout      = 10 * time.Second
	defaultAttempts     = 3
	defaultBackoff      = 500 * time.Millisecond
	defaultCacheTTL     = 30 * time.Second
	defaultErrorLogCap  = 8
	defaultTickerTick   = 10 * time.Second
	// Games rarely run longer than kickoff plus three hours.
	defaultTickerWindow = 3 * time.Hour
	defaultMetricsPort  = "9090"
)
