package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"nba-scores-dashboard/internal/config"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/server"
	"nba-scores-dashboard/internal/teams"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-scores-dashboard",
		Version: appVersion,
	})

	if err := teams.Validate(); err != nil {
		logger.Error("team registry invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
