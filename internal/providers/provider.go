package providers

import (
	"context"

	"nba-scores-dashboard/internal/domain"
)

// GameProvider defines how upstream game data is fetched and normalized.
// The date parameter, when provided, should be a YYYY-MM-DD string indicating
// which day's games to fetch. Providers interpret an empty date as "today" in
// the configured display timezone.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)
}
