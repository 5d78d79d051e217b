// Package teststubs holds shared test doubles used across packages.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"nba-scores-dashboard/internal/domain"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Games  []domain.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	// FailFirst makes the first N calls fail before succeeding.
	FailFirst int32
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	call := s.Calls.Add(1)
	if s.FailFirst > 0 && call <= s.FailFirst {
		if s.Err != nil {
			return nil, s.Err
		}
		return nil, errTransient
	}
	if s.FailFirst == 0 && s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

// StubRefresher is a test double for poller.Refresher.
type StubRefresher struct {
	Date   string
	Games  []domain.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Today returns the configured date.
func (s *StubRefresher) Today() string { return s.Date }

// RefreshDate returns configured games and error while tracking calls.
func (s *StubRefresher) RefreshDate(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

// StubSnapshotStore records the most recent SetGames call.
type StubSnapshotStore struct {
	mu    sync.Mutex
	Games []domain.Game
	At    time.Time
	Sets  int
}

// SetGames stores the latest snapshot.
func (s *StubSnapshotStore) SetGames(games []domain.Game, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games = games
	s.At = at
	s.Sets++
}

// Last returns the most recent snapshot and the number of replacements.
func (s *StubSnapshotStore) Last() ([]domain.Game, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Games, s.Sets
}

var errTransient = &transientError{}

type transientError struct{}

func (*transientError) Error() string { return "transient upstream failure" }
