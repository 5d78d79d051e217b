package store

import (
	"sync"
	"time"

	"nba-scores-dashboard/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the most recent games in
// memory, along with the time the snapshot was taken. It backs the
// game-by-ID lookups and the "last updated" stamp on the dashboard.
type MemoryStore struct {
	mu        sync.RWMutex
	games     map[string]domain.Game
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domain.Game, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
	s.updatedAt = at
}

// UpdatedAt reports when the snapshot was last replaced.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
