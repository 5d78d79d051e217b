package nba

import (
	"errors"
	"fmt"
	"strings"
)

const gameFinderResultSet = "LeagueGameFinderResults"

// extractTeamLines pulls one row per team out of the positional result set.
func extractTeamLines(payload gameFinderResponse) ([]teamLine, error) {
	rs, ok := findResultSet(payload)
	if !ok {
		return nil, errors.New("game finder result set missing")
	}

	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	for _, required := range []string{"GAME_ID", "TEAM_ABBREVIATION", "MATCHUP", "PTS"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("game finder header %s missing", required)
		}
	}

	lines := make([]teamLine, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		line := teamLine{
			gameID:  stringCell(row, idx["GAME_ID"]),
			tricode: stringCell(row, idx["TEAM_ABBREVIATION"]),
			matchup: stringCell(row, idx["MATCHUP"]),
			points:  intCell(row, idx["PTS"]),
		}
		if line.gameID == "" || line.tricode == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func findResultSet(payload gameFinderResponse) (resultSet, bool) {
	for _, rs := range payload.ResultSets {
		if rs.Name == gameFinderResultSet {
			return rs, true
		}
	}
	// Some responses omit the name; fall back to the first set.
	if len(payload.ResultSets) > 0 {
		return payload.ResultSets[0], true
	}
	return resultSet{}, false
}

// splitHomeAway resolves which row is the home side. The matchup string uses
// "@" for away games ("LAL @ BOS") and "vs." for home games.
func splitHomeAway(pair []teamLine) (home, away teamLine) {
	home, away = pair[0], pair[1]
	for _, line := range pair[:2] {
		if strings.Contains(line.matchup, "@") {
			away = line
		} else {
			home = line
		}
	}
	if home.gameID != away.gameID || home.tricode == away.tricode {
		// Ambiguous matchup strings: keep positional order.
		home, away = pair[0], pair[1]
	}
	return home, away
}

func stringCell(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return s
	}
	return ""
}

func intCell(row []any, i int) int {
	if i < 0 || i >= len(row) {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
