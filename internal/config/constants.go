package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envCacheTTL       = "CACHE_TTL"
	envUpstreamMinGap = "UPSTREAM_MIN_INTERVAL"
	envProvider       = "PROVIDER"
	envDisplayTZ      = "DISPLAY_TIMEZONE"
	envHistoryDays    = "HISTORY_DAYS"
	envFutureDays     = "FUTURE_DAYS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// One-minute cadence keeps live scores fresh without hammering upstream.
	defaultPollInterval = Duration(time.Minute)
	defaultCacheTTL     = Duration(time.Minute)
	// Minimum spacing between upstream calls. Deliberately much shorter than
	// the poll interval: cache-miss page loads share this limiter with the
	// poller and must finish within the server's write timeout.
	defaultUpstreamMinGap = Duration(2 * time.Second)
	defaultProvider       = "nba"
	// All game times are rendered in Central Time regardless of venue.
	defaultDisplayTZ   = "America/Chicago"
	defaultHistoryDays = 7
	defaultFutureDays  = 7
	defaultMetricsPort = "9090"
)
