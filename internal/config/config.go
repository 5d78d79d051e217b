package config

// Config holds runtime configuration for the dashboard server.
type Config struct {
	Port            string
	PollInterval    Duration
	CacheTTL        Duration
	UpstreamMinGap  Duration
	Provider        string
	DisplayTimezone string
	HistoryDays     int
	FutureDays      int
	NBA             NBAConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		PollInterval:    durationEnvOrDefault(envPollInterval, defaultPollInterval),
		CacheTTL:        durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		UpstreamMinGap:  durationEnvOrDefault(envUpstreamMinGap, defaultUpstreamMinGap),
		Provider:        envOrDefault(envProvider, defaultProvider),
		DisplayTimezone: envOrDefault(envDisplayTZ, defaultDisplayTZ),
		HistoryDays:     intEnvOrDefault(envHistoryDays, defaultHistoryDays),
		FutureDays:      intEnvOrDefault(envFutureDays, defaultFutureDays),
		NBA:             loadNBA(),
		Metrics:         loadMetrics(),
	}
}
