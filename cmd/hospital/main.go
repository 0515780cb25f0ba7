package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hospital-management/internal/config"
	"hospital-management/internal/logger"
	"hospital-management/internal/metrics"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hospital")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{cfg: cfg, log: log, recorder: metrics.NewRecorder()}
	root := newRootCmd(c)
	execErr := root.ExecuteContext(ctx)

	c.close()
	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := c.recorder.WriteTextfile(path); err != nil {
			log.Error("failed to write metrics textfile", zap.String("path", path), zap.Error(err))
		}
	}

	if execErr != nil {
		stop()
		log.Sync()
		os.Exit(1)
	}
}
