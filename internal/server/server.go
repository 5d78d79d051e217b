package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nba-scores-dashboard/internal/cache"
	"nba-scores-dashboard/internal/config"
	httpserver "nba-scores-dashboard/internal/http"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/poller"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/scores"
	"nba-scores-dashboard/internal/store"
	"nba-scores-dashboard/internal/web"
)

var metricsSetup = metrics.Setup

// Server owns the dashboard HTTP server, the metrics server, and the poller.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	scores        *scores.Service
	provider      providers.GameProvider
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.GameProvider) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider), 0, 0)
	}

	loc := providers.ResolveTimezone(cfg.DisplayTimezone)
	if loc == nil {
		return nil, fmt.Errorf("invalid display timezone %q", cfg.DisplayTimezone)
	}

	memoryStore := store.NewMemoryStore()
	svc := scores.NewService(provider, cache.New(time.Duration(cfg.CacheTTL)), logger, recorder, loc, scores.Options{
		HistoryDays: cfg.HistoryDays,
		FutureDays:  cfg.FutureDays,
	})
	plr := poller.New(svc, memoryStore, logger, recorder, time.Duration(cfg.PollInterval))

	httpSrv, err := buildHTTPServer(cfg, svc, memoryStore, logger, recorder, plr, loc)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		scores:        svc,
		provider:      provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildHTTPServer(cfg config.Config, svc *scores.Service, memoryStore *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder, plr Poller, loc *time.Location) (httpServer, error) {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	handler := httpserver.NewHandler(svc, memoryStore, renderer, logger, statusFn, httpserver.Options{
		Location:    loc,
		HistoryDays: cfg.HistoryDays,
		FutureDays:  cfg.FutureDays,
		AutoRefresh: time.Duration(cfg.PollInterval),
	})
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}, nil
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
