package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
)

const defaultInterval = 60 * time.Second

// Refresher pulls a fresh scoreboard for today, bypassing any cached copy.
type Refresher interface {
	Today() string
	RefreshDate(ctx context.Context, date string) ([]domain.Game, error)
}

// SnapshotStore receives the latest scoreboard after each successful cycle.
type SnapshotStore interface {
	SetGames(games []domain.Game, at time.Time)
}

// Poller refreshes today's scoreboard on an interval so live scores stay
// current without waiting for a page load to miss the cache.
type Poller struct {
	refresher Refresher
	store     SnapshotStore
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher Refresher, store SnapshotStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		store:     store,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh to warm today's scoreboard on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := p.refresher.Today()
	games, err := p.refresher.RefreshDate(ctx, today)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetGames(games, p.now())
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed scoreboard",
		logging.FieldDate, today,
		logging.FieldCount, len(games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
