// Package scores implements the fetch/cache/filter cycle behind the
// dashboard: per-date lookups are memoized with a short TTL and team filters
// are applied to the cached snapshot.
package scores

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nba-scores-dashboard/internal/cache"
	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/timeutil"
)

// ErrDateOutOfRange rejects dates outside the supported window.
var ErrDateOutOfRange = errors.New("date outside supported window")

// Service coordinates cached game lookups against a provider chain.
type Service struct {
	provider    providers.GameProvider
	cache       *cache.Cache
	logger      *slog.Logger
	metrics     *metrics.Recorder
	loc         *time.Location
	now         func() time.Time
	historyDays int
	futureDays  int
}

// Options tunes the service's date window.
type Options struct {
	HistoryDays int
	FutureDays  int
}

// NewService constructs a Service. A nil location falls back to UTC.
func NewService(provider providers.GameProvider, c *cache.Cache, logger *slog.Logger, recorder *metrics.Recorder, loc *time.Location, opts Options) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 7
	}
	if opts.FutureDays <= 0 {
		opts.FutureDays = 7
	}
	return &Service{
		provider:    provider,
		cache:       c,
		logger:      logger,
		metrics:     recorder,
		loc:         loc,
		now:         time.Now,
		historyDays: opts.HistoryDays,
		futureDays:  opts.FutureDays,
	}
}

// Today returns today's date key in the display timezone.
func (s *Service) Today() string {
	return timeutil.FormatDate(s.now().In(s.loc))
}

// GamesForDate returns the games for a date with the team filter applied.
// The unfiltered set is served from cache when fresh; a miss or expired
// entry triggers a provider fetch that replaces the entry wholesale.
func (s *Service) GamesForDate(ctx context.Context, date string, teamFilter []string) (domain.ScoreboardResponse, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return domain.ScoreboardResponse{}, err
	}

	games, hit := s.cache.Get(date)
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(hit)
	}
	if !hit {
		games, err = s.fetchAndStore(ctx, date)
		if err != nil {
			return domain.ScoreboardResponse{}, err
		}
	} else {
		logging.Info(logging.FromContext(ctx, s.logger), "served cached games",
			slog.Bool(logging.FieldCache, true),
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(games)),
		)
	}

	filtered := FilterByTeams(games, teamFilter)
	return domain.NewScoreboardResponse(date, filtered, len(games)), nil
}

// RefreshDate bypasses the cache, fetches fresh data, and replaces the
// entry. Used by the poller tick and the dashboard refresh button.
func (s *Service) RefreshDate(ctx context.Context, date string) ([]domain.Game, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	return s.fetchAndStore(ctx, date)
}

// Invalidate drops the cache entry for one date.
func (s *Service) Invalidate(date string) {
	s.cache.Invalidate(date)
}

// InvalidateAll drops every cached entry.
func (s *Service) InvalidateAll() {
	s.cache.InvalidateAll()
}

func (s *Service) fetchAndStore(ctx context.Context, date string) ([]domain.Game, error) {
	games, err := s.provider.FetchGames(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cache.Set(date, games)
	logging.Info(logging.FromContext(ctx, s.logger), "refreshed games",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
	)
	return games, nil
}

func (s *Service) resolveDate(date string) (string, error) {
	today := s.now().In(s.loc)
	if date == "" {
		return timeutil.FormatDate(today), nil
	}

	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -s.historyDays)
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, s.futureDays)
	if day.Before(start) || day.After(end) {
		return "", fmt.Errorf("%w: %s", ErrDateOutOfRange, date)
	}
	return timeutil.FormatDate(day), nil
}

// SetClock overrides the service's time source; intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
