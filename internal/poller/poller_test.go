package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/teststubs"
)

func TestPollerRefreshesAndStoresSnapshot(t *testing.T) {
	refresher := &teststubs.StubRefresher{
		Date:   "2024-01-15",
		Games:  []domain.Game{{ID: "poll-game", Provider: "stub"}},
		Notify: make(chan struct{}),
	}
	store := &teststubs.StubSnapshotStore{}

	p := New(refresher, store, nil, nil, 10*time.Millisecond)
	p.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-refresher.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	games, sets := store.Last()
	if sets == 0 {
		t.Fatal("expected snapshot to be stored")
	}
	if len(games) != 1 || games[0].ID != "poll-game" {
		t.Fatalf("unexpected snapshot: %+v", games)
	}
	if refresher.Calls.Load() < 1 {
		t.Fatalf("expected at least one refresh call")
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	refresher := &teststubs.StubRefresher{
		Date:   "2024-01-15",
		Notify: make(chan struct{}),
	}

	p := New(refresher, &teststubs.StubSnapshotStore{}, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-refresher.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := refresher.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if refresher.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional refreshes after stop; before=%d after=%d", callsAfterStop, refresher.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubRefresher{Date: "2024-01-15"}, &teststubs.StubSnapshotStore{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubRefresher{Date: "2024-01-15"}, &teststubs.StubSnapshotStore{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubRefresher{}, &teststubs.StubSnapshotStore{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	refresher := &teststubs.StubRefresher{
		Date: "2024-01-15",
		Err:  errors.New("boom"),
	}

	p := New(refresher, &teststubs.StubSnapshotStore{}, nil, nil, time.Millisecond)
	ctx := context.Background()

	p.refreshOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	refresher.Err = nil
	p.refreshOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Fatalf("expected success timestamp")
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	refresher := &teststubs.StubRefresher{
		Date: "2024-01-15",
		Err:  errors.New("fail"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(refresher, &teststubs.StubSnapshotStore{}, logger, nil, time.Second)
	p.refreshOnce(context.Background()) // should log error

	refresher.Err = nil
	refresher.Games = []domain.Game{{ID: "ok"}}
	p.refreshOnce(context.Background()) // should log info
}

func TestPollerNilStoreDoesNotPanic(t *testing.T) {
	refresher := &teststubs.StubRefresher{Date: "2024-01-15", Games: []domain.Game{{ID: "g1"}}}
	p := New(refresher, nil, nil, nil, time.Minute)
	p.refreshOnce(context.Background())

	if p.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected success with nil store")
	}
}
