package domain

import "nba-scores-dashboard/internal/teams"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
)

// Side pairs a team with its score for one side of a game.
type Side struct {
	Team  teams.Team `json:"team"`
	Score int        `json:"score"`
}

// Game is the canonical game shape exposed by the service.
// Games are immutable snapshots; each fetch replaces the previous set.
type Game struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	Date       string     `json:"date"`
	HomeTeam   Side       `json:"homeTeam"`
	AwayTeam   Side       `json:"awayTeam"`
	StartTime  string     `json:"startTime,omitempty"`
	Status     GameStatus `json:"status"`
	StatusText string     `json:"statusText"`
	Period     int        `json:"period,omitempty"`
	Clock      string     `json:"clock,omitempty"`
}

// Involves reports whether the given tricode plays in this game.
func (g Game) Involves(tricode string) bool {
	return g.HomeTeam.Team.Tricode == tricode || g.AwayTeam.Team.Tricode == tricode
}

// ScoreboardResponse is the payload returned for a date's games.
type ScoreboardResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
	Total int    `json:"total"`
}

// NewScoreboardResponse builds a ScoreboardResponse payload.
func NewScoreboardResponse(date string, games []Game, total int) ScoreboardResponse {
	return ScoreboardResponse{
		Date:  date,
		Games: games,
		Total: total,
	}
}
