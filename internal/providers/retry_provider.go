package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a GameProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       GameProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with bounded exponential
// backoff. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		initial:     initial,
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	var games []domain.Game
	attempt := 0

	operation := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchGames(ctx, date)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok && r.metrics != nil {
				r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			}
			if attempt < r.maxAttempts {
				r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			}
			return err
		}
		games = fetched
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initial
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		r.logWarn(ctx, "provider fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return games, nil
}

// Close forwards cleanup to the inner provider when it supports it, so the
// rate limiter's ticker stops even through the retry wrapper.
func (r *retryingProvider) Close() {
	if closer, ok := r.inner.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, append(args, slog.String(logging.FieldProvider, r.name))...)
	}
}
