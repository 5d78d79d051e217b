// Package fixture returns a static set of games useful for local development
// and for running the dashboard without upstream access.
package fixture

import (
	"context"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/teams"
	"nba-scores-dashboard/internal/timeutil"
)

// Provider returns a deterministic schedule for any requested date.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic set of example games on the given date.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx

	day := p.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err == nil {
			day = parsed.UTC()
		}
	}
	dateStr := timeutil.FormatDate(day)

	games := []domain.Game{
		{
			ID:         "fixture-1",
			Provider:   "fixture",
			Date:       dateStr,
			HomeTeam:   domain.Side{Team: teams.LookupOrStub("BOS"), Score: 54},
			AwayTeam:   domain.Side{Team: teams.LookupOrStub("LAL"), Score: 61},
			StartTime:  day.Add(19 * time.Hour).Format(time.RFC3339),
			Status:     domain.StatusLive,
			StatusText: "Q3 04:12",
			Period:     3,
			Clock:      "04:12",
		},
		{
			ID:         "fixture-2",
			Provider:   "fixture",
			Date:       dateStr,
			HomeTeam:   domain.Side{Team: teams.LookupOrStub("GSW"), Score: 0},
			AwayTeam:   domain.Side{Team: teams.LookupOrStub("MIA"), Score: 0},
			StartTime:  day.Add(21 * time.Hour).Format(time.RFC3339),
			Status:     domain.StatusScheduled,
			StatusText: "8:00 PM CT",
		},
		{
			ID:         "fixture-3",
			Provider:   "fixture",
			Date:       dateStr,
			HomeTeam:   domain.Side{Team: teams.LookupOrStub("NYK"), Score: 101},
			AwayTeam:   domain.Side{Team: teams.LookupOrStub("CHI"), Score: 94},
			StartTime:  day.Add(17 * time.Hour).Format(time.RFC3339),
			Status:     domain.StatusFinal,
			StatusText: "Final",
		},
	}

	return games, nil
}
