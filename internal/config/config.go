package config

import (
	"time"

	"floorball-games-service/internal/domain"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Season      int
	Teams       []domain.TeamRef
	RefreshSpec string
	GamesLimit  int
	Upstream    UpstreamConfig
	Ticker      TickerConfig
	Metrics     MetricsConfig
}

// UpstreamConfig controls how the swissunihockey client reaches the API.
type UpstreamConfig struct {
	BaseURL       string
	Timeout       Duration
	RetryAttempts int
	RetryBackoff  Duration
	CacheTTL      Duration
	ErrorLogCap   int
}

// TickerConfig controls the live ticker poll loop.
type TickerConfig struct {
	Interval Duration
	Window   Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Season:      intEnvOrDefault(envSeason, currentSeason()),
		Teams:       loadTeams(),
		RefreshSpec: envOrDefault(envRefreshSpec, defaultRefreshSpec),
		GamesLimit:  intEnvOrDefault(envGamesLimit, defaultGamesLimit),
		Upstream: UpstreamConfig{
			BaseURL:       envOrDefault(envUpstreamBase, defaultUpstreamBase),
			Timeout:       durationEnvOrDefault(envUpstreamTO, defaultTimeout),
			RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultAttempts),
			RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultBackoff),
			CacheTTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
			ErrorLogCap:   intEnvOrDefault(envErrorLogCap, defaultErrorLogCap),
		},
		Ticker: TickerConfig{
			Interval: durationEnvOrDefault(envTickerTick, defaultTickerTick),
			Window:   durationEnvOrDefault(envTickerWindow, defaultTickerWindow),
		},
		Metrics: loadMetrics(),
	}
}

// currentSeason returns the season a date falls into. Swiss floorball
// seasons start in late summer; the season label is the starting year.
func currentSeason() int {
	now := time.Now()
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return year
}
