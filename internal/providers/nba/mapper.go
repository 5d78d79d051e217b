package nba

import (
	"fmt"
	"sort"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/teams"
	"nba-scores-dashboard/internal/timeutil"
)

func (c *Client) mapLiveGame(g liveGame) domain.Game {
	status := mapStatusCode(g.GameStatus)

	homeScore := g.HomeTeam.Score
	awayScore := g.AwayTeam.Score
	if status == domain.StatusScheduled {
		// Upstream sometimes carries stale score fields before tip-off.
		homeScore, awayScore = 0, 0
	}

	startTime := ""
	gameDate := timeutil.FormatDate(c.now().In(c.loc))
	if tipOff, err := time.Parse(time.RFC3339, g.GameTimeUTC); err == nil {
		local := tipOff.In(c.loc)
		startTime = local.Format(time.RFC3339)
		gameDate = timeutil.FormatDate(local)
	}

	return domain.Game{
		ID:         g.GameID,
		Provider:   providerName,
		Date:       gameDate,
		HomeTeam:   domain.Side{Team: teams.LookupOrStub(g.HomeTeam.TeamTricode), Score: homeScore},
		AwayTeam:   domain.Side{Team: teams.LookupOrStub(g.AwayTeam.TeamTricode), Score: awayScore},
		StartTime:  startTime,
		Status:     status,
		StatusText: c.statusText(g, status, startTime),
		Period:     livePeriod(g, status),
		Clock:      liveClock(g, status),
	}
}

func (c *Client) statusText(g liveGame, status domain.GameStatus, startTime string) string {
	switch status {
	case domain.StatusScheduled:
		if startTime != "" {
			if tipOff, err := time.Parse(time.RFC3339, startTime); err == nil {
				return formatTipOff(tipOff)
			}
		}
		if g.GameStatusText != "" {
			return g.GameStatusText
		}
		return "Scheduled"
	case domain.StatusLive:
		if g.Period > 0 && g.GameClock != "" {
			return fmt.Sprintf("%s %s", formatPeriod(g.Period), formatClock(g.GameClock))
		}
		if g.GameStatusText != "" {
			return g.GameStatusText
		}
		return "In Progress"
	case domain.StatusFinal:
		return "Final"
	}
	if g.GameStatusText != "" {
		return g.GameStatusText
	}
	return "Unknown"
}

func livePeriod(g liveGame, status domain.GameStatus) int {
	if status != domain.StatusLive {
		return 0
	}
	return g.Period
}

func liveClock(g liveGame, status domain.GameStatus) string {
	if status != domain.StatusLive {
		return ""
	}
	return formatClock(g.GameClock)
}

func mapStatusCode(code int) domain.GameStatus {
	switch code {
	case statusCodeLive:
		return domain.StatusLive
	case statusCodeFinal:
		return domain.StatusFinal
	default:
		return domain.StatusScheduled
	}
}

func (c *Client) mapHistoricalGames(lines []teamLine, date time.Time) []domain.Game {
	byGame := make(map[string][]teamLine)
	order := make([]string, 0)
	for _, line := range lines {
		if _, seen := byGame[line.gameID]; !seen {
			order = append(order, line.gameID)
		}
		byGame[line.gameID] = append(byGame[line.gameID], line)
	}
	sort.Strings(order)

	games := make([]domain.Game, 0, len(order))
	for _, id := range order {
		pair := byGame[id]
		if len(pair) < 2 {
			// Each finished game appears once per team; skip partial rows.
			continue
		}
		home, away := splitHomeAway(pair)
		games = append(games, domain.Game{
			ID:         home.gameID,
			Provider:   providerName,
			Date:       timeutil.FormatDate(date),
			HomeTeam:   domain.Side{Team: teams.LookupOrStub(home.tricode), Score: home.points},
			AwayTeam:   domain.Side{Team: teams.LookupOrStub(away.tricode), Score: away.points},
			Status:     domain.StatusFinal,
			StatusText: "Final",
		})
	}
	return games
}
