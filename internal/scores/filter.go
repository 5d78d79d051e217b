package scores

import (
	"strings"

	"nba-scores-dashboard/internal/domain"
)

// FilterByTeams keeps games involving any of the given tricodes. An empty
// filter means all games.
func FilterByTeams(games []domain.Game, tricodes []string) []domain.Game {
	if len(tricodes) == 0 {
		return games
	}

	want := make(map[string]struct{}, len(tricodes))
	for _, code := range tricodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			want[code] = struct{}{}
		}
	}
	if len(want) == 0 {
		return games
	}

	filtered := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if _, ok := want[g.HomeTeam.Team.Tricode]; ok {
			filtered = append(filtered, g)
			continue
		}
		if _, ok := want[g.AwayTeam.Team.Tricode]; ok {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
