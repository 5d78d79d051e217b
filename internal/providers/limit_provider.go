package providers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"nba-scores-dashboard/internal/domain"
)

// rateLimitedProvider wraps a GameProvider and enforces a minimum interval
// between upstream calls. The first call passes immediately so boot-time
// warming is not delayed; later calls block until the interval elapses.
type rateLimitedProvider struct {
	next     GameProvider
	interval time.Duration
	ticker   *time.Ticker
	primed   atomic.Bool
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a GameProvider that limits calls to the given interval.
func NewRateLimitedProvider(next GameProvider, interval time.Duration, logger *slog.Logger) GameProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if p.primed.Swap(true) {
		select {
		case <-ctx.Done():
			if p.logger != nil {
				p.logger.Warn("rate-limited fetch canceled", slog.String("date", date))
			}
			return nil, ctx.Err()
		case <-p.ticker.C:
		}
	}
	return p.next.FetchGames(ctx, date)
}

// Close stops the interval ticker. Safe to call once during shutdown.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
