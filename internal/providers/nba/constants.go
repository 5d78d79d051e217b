package nba

import "time"

const providerName = "nba"

const (
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultHTTPTimeout  = 10 * time.Second
	defaultTimezone     = "America/Chicago"

	scoreboardPath = "/scoreboard/todaysScoreboard_00.json"
	gameFinderPath = "/leaguegamefinder"

	// The stats API expects MM/DD/YYYY dates.
	statsDateLayout = "01/02/2006"

	// The stats endpoints reject requests without browser-ish headers.
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Upstream gameStatus codes on the live scoreboard.
const (
	statusCodeScheduled = 1
	statusCodeLive      = 2
	statusCodeFinal     = 3
)
