package config

const (
	envNBALiveBaseURL  = "NBA_LIVE_BASE_URL"
	envNBAStatsBaseURL = "NBA_STATS_BASE_URL"
	envNBAUserAgent    = "NBA_USER_AGENT"

	defaultNBALiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	defaultNBAStatsBaseURL = "https://stats.nba.com/stats"
)

// NBAConfig controls how we talk to the NBA data endpoints.
type NBAConfig struct {
	LiveBaseURL  string
	StatsBaseURL string
	UserAgent    string
}

func loadNBA() NBAConfig {
	return NBAConfig{
		LiveBaseURL:  envOrDefault(envNBALiveBaseURL, defaultNBALiveBaseURL),
		StatsBaseURL: envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		UserAgent:    envOrDefault(envNBAUserAgent, ""),
	}
}
