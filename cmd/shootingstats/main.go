package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-shooting-stats/internal/config"
	"github.com/preston-bernstein/nba-shooting-stats/internal/logging"
	"github.com/preston-bernstein/nba-shooting-stats/internal/runner"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}
	if code := run(os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func run(stdout, stderr io.Writer) int {
	dotenvErr := config.LoadDotEnv(".env")

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "nba-shooting-stats",
		Version: appVersion,
		Output:  stderr,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "could not read .env file", logging.FieldError, dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := runner.New(cfg, logger, stdout).Run(ctx); err != nil {
		logging.Error(logger, "run failed", err)
		return 1
	}
	return 0
}
