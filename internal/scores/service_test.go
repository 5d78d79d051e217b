package scores

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"nba-scores-dashboard/internal/cache"
	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/teams"
	"nba-scores-dashboard/internal/teststubs"
)

var fixedNow = time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, stub *teststubs.StubProvider, ttl time.Duration) (*Service, *cache.Cache, *metrics.Recorder) {
	t.Helper()
	c := cache.New(ttl)
	rec := metrics.NewRecorder()
	svc := NewService(stub, c, nil, rec, time.UTC, Options{HistoryDays: 7, FutureDays: 7})
	svc.SetClock(func() time.Time { return fixedNow })
	c.SetClock(func() time.Time { return fixedNow })
	return svc, c, rec
}

func gameBetween(id, home, away string) domain.Game {
	return domain.Game{
		ID:       id,
		HomeTeam: domain.Side{Team: teams.Team{Tricode: home}},
		AwayTeam: domain.Side{Team: teams.Team{Tricode: away}},
		Status:   domain.StatusScheduled,
	}
}

func TestGamesForDateFetchesOnMiss(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	svc, _, rec := newTestService(t, stub, time.Minute)

	resp, err := svc.GamesForDate(context.Background(), "2024-01-15", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Games) != 1 || resp.Total != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected 1 provider call, got %d", stub.Calls.Load())
	}
	if rec.CacheMisses() != 1 || rec.CacheHits() != 0 {
		t.Fatalf("expected 1 miss, got hits=%d misses=%d", rec.CacheHits(), rec.CacheMisses())
	}
}

func TestGamesForDateServesCacheWithinTTL(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	svc, _, rec := newTestService(t, stub, time.Minute)

	first, err := svc.GamesForDate(context.Background(), "2024-01-15", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GamesForDate(context.Background(), "2024-01-15", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.Calls.Load() != 1 {
		t.Fatalf("expected single upstream call, got %d", stub.Calls.Load())
	}
	if len(first.Games) != len(second.Games) || first.Games[0].ID != second.Games[0].ID {
		t.Fatalf("expected identical cached data: %+v vs %+v", first, second)
	}
	if rec.CacheHits() != 1 {
		t.Fatalf("expected 1 cache hit, got %d", rec.CacheHits())
	}
}

func TestGamesForDateRefetchesAfterExpiry(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	svc, c, _ := newTestService(t, stub, time.Minute)

	now := fixedNow
	clock := func() time.Time { return now }
	svc.SetClock(clock)
	c.SetClock(clock)

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = fixedNow.Add(2 * time.Minute)
	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.Calls.Load() != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", stub.Calls.Load())
	}
}

func TestGamesForDateAppliesTeamFilter(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{
		gameBetween("g1", "LAL", "BOS"),
		gameBetween("g2", "GSW", "MIA"),
		gameBetween("g3", "NYK", "LAL"),
	}}
	svc, _, _ := newTestService(t, stub, time.Minute)

	resp, err := svc.GamesForDate(context.Background(), "2024-01-15", []string{"LAL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 Lakers games, got %d", len(resp.Games))
	}
	for _, g := range resp.Games {
		if !g.Involves("LAL") {
			t.Fatalf("filtered set contains non-matching game %+v", g)
		}
	}
	if resp.Total != 3 {
		t.Fatalf("expected total to count unfiltered games, got %d", resp.Total)
	}
}

func TestGamesForDateEmptyDateMeansToday(t *testing.T) {
	stub := &teststubs.StubProvider{Games: nil}
	svc, _, _ := newTestService(t, stub, time.Minute)

	resp, err := svc.GamesForDate(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Date != "2024-01-15" {
		t.Fatalf("expected today's date, got %s", resp.Date)
	}
}

func TestGamesForDateRejectsOutOfWindowDates(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc, _, _ := newTestService(t, stub, time.Minute)

	for _, date := range []string{"2024-01-01", "2024-02-01"} {
		if _, err := svc.GamesForDate(context.Background(), date, nil); !errors.Is(err, ErrDateOutOfRange) {
			t.Fatalf("expected ErrDateOutOfRange for %s, got %v", date, err)
		}
	}
	if stub.Calls.Load() != 0 {
		t.Fatal("rejected dates must not hit upstream")
	}
}

func TestGamesForDatePropagatesProviderError(t *testing.T) {
	upstreamErr := errors.New("upstream down")
	stub := &teststubs.StubProvider{Err: upstreamErr}
	svc, _, _ := newTestService(t, stub, time.Minute)

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestRefreshDateBypassesCache(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	svc, _, _ := newTestService(t, stub, time.Hour)

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RefreshDate(context.Background(), "2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.Calls.Load() != 2 {
		t.Fatalf("expected refresh to hit upstream, got %d calls", stub.Calls.Load())
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	svc, _, _ := newTestService(t, stub, time.Hour)

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.InvalidateAll()

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.Calls.Load() != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", stub.Calls.Load())
	}
}

func TestGamesForDateLogsCacheHit(t *testing.T) {
	stub := &teststubs.StubProvider{Games: []domain.Game{gameBetween("g1", "LAL", "BOS")}}
	c := cache.New(time.Minute)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := NewService(stub, c, logger, metrics.NewRecorder(), time.UTC, Options{HistoryDays: 7, FutureDays: 7})
	svc.SetClock(func() time.Time { return fixedNow })
	c.SetClock(func() time.Time { return fixedNow })

	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), `"cache":true`) {
		t.Fatalf("miss should not be logged as a cache hit: %s", buf.String())
	}

	buf.Reset()
	if _, err := svc.GamesForDate(context.Background(), "2024-01-15", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"cache":true`) {
		t.Fatalf("expected cache hit to be marked in the log, got: %s", buf.String())
	}
}
