package nba

// Live scoreboard payload (cdn.nba.com liveData).

type scoreboardResponse struct {
	Scoreboard scoreboard `json:"scoreboard"`
}

type scoreboard struct {
	GameDate string     `json:"gameDate"`
	Games    []liveGame `json:"games"`
}

type liveGame struct {
	GameID         string   `json:"gameId"`
	GameStatus     int      `json:"gameStatus"`
	GameStatusText string   `json:"gameStatusText"`
	Period         int      `json:"period"`
	GameClock      string   `json:"gameClock"`
	GameTimeUTC    string   `json:"gameTimeUTC"`
	HomeTeam       liveTeam `json:"homeTeam"`
	AwayTeam       liveTeam `json:"awayTeam"`
}

type liveTeam struct {
	TeamID      int    `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

// Historical game finder payload (stats.nba.com result sets). Rows come back
// as positional arrays; headers give the column order.

type gameFinderResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// teamLine is one team's row for a finished game.
type teamLine struct {
	gameID  string
	tricode string
	matchup string
	points  int
}
