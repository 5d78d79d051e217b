package fixture

import (
	"context"
	"testing"
	"time"

	"nba-scores-dashboard/internal/domain"
)

func TestFetchGamesIsDeterministic(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	first, err := p.FetchGames(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.FetchGames(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 games, got %d/%d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected stable ids, got %s vs %s", first[i].ID, second[i].ID)
		}
	}
}

func TestFetchGamesUsesRequestedDate(t *testing.T) {
	p := New()

	games, err := p.FetchGames(context.Background(), "2024-02-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, g := range games {
		if g.Date != "2024-02-01" {
			t.Fatalf("expected requested date on games, got %s", g.Date)
		}
	}
}

func TestFetchGamesCoversEveryStatus(t *testing.T) {
	p := New()
	games, _ := p.FetchGames(context.Background(), "2024-02-01")

	seen := map[domain.GameStatus]bool{}
	for _, g := range games {
		seen[g.Status] = true
	}
	for _, status := range []domain.GameStatus{domain.StatusScheduled, domain.StatusLive, domain.StatusFinal} {
		if !seen[status] {
			t.Fatalf("expected fixture to include %s game", status)
		}
	}
}
