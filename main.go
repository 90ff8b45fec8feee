package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"example.com/stipends/config"
	"example.com/stipends/logger"
	"example.com/stipends/merger"
	"example.com/stipends/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Println("Error loading configuration: ", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("Error creating logger: ", err)
		os.Exit(1)
	}
	log = logger.WithRunID(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	_, err = merger.New(cfg, log, report.New(os.Stdout)).Run(ctx)
	stop()

	code := exitCode(err)
	if code != 0 {
		log.Error("merge failed", zap.Error(err))
	}
	_ = log.Sync()
	os.Exit(code)
}

// exitCode maps a run error to the process status. Missing input and
// all-skipped input are reported by the merger and are not failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, merger.ErrNoInputFiles), errors.Is(err, merger.ErrNoValidTables):
		return 0
	default:
		return 1
	}
}
