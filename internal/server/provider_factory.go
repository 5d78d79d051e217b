package server

import (
	"log/slog"
	"strings"
	"time"

	"nba-scores-dashboard/internal/config"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/providers/fixture"
	"nba-scores-dashboard/internal/providers/nba"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap applies the shared decorators. The limiter interval is the upstream
// spacing guard, NOT the poll interval: the chain also serves cache-miss
// page loads, which must not block for a poll cycle behind the ticker.
func (f providerFactory) wrap(cfg config.Config, base providers.GameProvider) providers.GameProvider {
	limited := providers.NewRateLimitedProvider(base, time.Duration(cfg.UpstreamMinGap), f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "nba", "":
		return nba.NewClient(nba.Config{
			LiveBaseURL:  cfg.NBA.LiveBaseURL,
			StatsBaseURL: cfg.NBA.StatsBaseURL,
			UserAgent:    cfg.NBA.UserAgent,
			Timezone:     cfg.DisplayTimezone,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName keeps provider labels in metrics and logs consistent.
func normalizeProviderName(raw string) string {
	if raw == "" {
		return "nba"
	}
	return strings.ToLower(raw)
}
