// Package web renders the dashboard HTML from embedded templates.
package web

import (
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/teams"
	"nba-scores-dashboard/internal/timeutil"
)

// TeamLine is one side of a scorecard.
type TeamLine struct {
	Name       string
	LogoURL    string
	Score      int
	ScoreClass string
}

// GameCard is a single rendered scorecard.
type GameCard struct {
	ID          string
	Status      string
	StatusClass string
	Home        TeamLine
	Away        TeamLine
}

// TeamOption is one entry in the team filter multi-select.
type TeamOption struct {
	Tricode  string
	Name     string
	Selected bool
}

// DashboardView is everything the dashboard template needs.
type DashboardView struct {
	Title        string
	DateISO      string
	DateDisplay  string
	MinDate      string
	MaxDate      string
	Teams        []TeamOption
	TeamFilter   []string
	Games        []GameCard
	Showing      int
	Total        int
	Filtered     bool
	ErrorMessage string
	UpdatedAt    string
	AutoRefresh  int
}

// ViewParams carries the request-derived inputs for a dashboard render.
type ViewParams struct {
	TeamFilter  []string
	HistoryDays int
	FutureDays  int
	Location    *time.Location
	Now         time.Time
	UpdatedAt   time.Time
	AutoRefresh time.Duration
	Error       string
}

// BuildDashboardView assembles the template view model from a scoreboard.
func BuildDashboardView(board domain.ScoreboardResponse, params ViewParams) DashboardView {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	today := params.Now.In(loc)

	view := DashboardView{
		Title:        "NBA Scores",
		DateISO:      board.Date,
		DateDisplay:  displayDate(board.Date),
		MinDate:      timeutil.FormatDate(today.AddDate(0, 0, -params.HistoryDays)),
		MaxDate:      timeutil.FormatDate(today.AddDate(0, 0, params.FutureDays)),
		TeamFilter:   params.TeamFilter,
		Showing:      len(board.Games),
		Total:        board.Total,
		Filtered:     len(params.TeamFilter) > 0,
		ErrorMessage: params.Error,
	}

	selected := make(map[string]bool, len(params.TeamFilter))
	for _, code := range params.TeamFilter {
		selected[code] = true
	}
	for _, t := range teams.All() {
		view.Teams = append(view.Teams, TeamOption{
			Tricode:  t.Tricode,
			Name:     t.Name,
			Selected: selected[t.Tricode],
		})
	}

	for _, g := range board.Games {
		view.Games = append(view.Games, buildGameCard(g))
	}

	if !params.UpdatedAt.IsZero() {
		view.UpdatedAt = params.UpdatedAt.In(loc).Format("3:04:05 PM")
	}
	// Only today's page keeps live scores moving on its own.
	if board.Date == timeutil.FormatDate(today) && params.AutoRefresh > 0 {
		view.AutoRefresh = int(params.AutoRefresh.Seconds())
	}

	return view
}

func buildGameCard(g domain.Game) GameCard {
	card := GameCard{
		ID:          g.ID,
		Status:      g.StatusText,
		StatusClass: statusClass(g.Status),
		Home: TeamLine{
			Name:    g.HomeTeam.Team.Name,
			LogoURL: g.HomeTeam.Team.LogoURL,
			Score:   g.HomeTeam.Score,
		},
		Away: TeamLine{
			Name:    g.AwayTeam.Team.Name,
			LogoURL: g.AwayTeam.Team.LogoURL,
			Score:   g.AwayTeam.Score,
		},
	}
	card.Home.ScoreClass, card.Away.ScoreClass = scoreClasses(g)
	return card
}

func statusClass(s domain.GameStatus) string {
	switch s {
	case domain.StatusFinal:
		return "final"
	case domain.StatusLive:
		return "live"
	default:
		return ""
	}
}

// scoreClasses marks the leading side. Scheduled games show neither class
// since both sides sit at zero.
func scoreClasses(g domain.Game) (home, away string) {
	switch {
	case g.HomeTeam.Score > g.AwayTeam.Score:
		return "winner", "loser"
	case g.AwayTeam.Score > g.HomeTeam.Score:
		return "loser", "winner"
	default:
		return "", ""
	}
}

func displayDate(date string) string {
	t, err := timeutil.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
