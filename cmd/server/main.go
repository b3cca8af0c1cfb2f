package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/indiaviz/dataserver/internal/config"
	"github.com/indiaviz/dataserver/internal/core"
	"github.com/indiaviz/dataserver/internal/logging"
	_ "github.com/indiaviz/dataserver/internal/schema" // Register all datasets
	"github.com/indiaviz/dataserver/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"data_dir", cfg.Data.Dir,
		"preload", cfg.Data.Preload,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Create the dataset loader; a broken manifest.yaml fails startup
	loader, err := core.NewLoader(cfg.Data.Dir)
	if err != nil {
		slog.Error("failed to create dataset loader", "error", err)
		os.Exit(1)
	}

	slog.Info("datasets registered", "count", core.DatasetCount())

	// Warm the cache so first requests do not pay load latency. A dataset
	// that fails here stays unavailable but never blocks startup.
	if cfg.Data.Preload {
		loaded := loader.Preload(nil)
		available := 0
		for _, t := range loaded {
			if t != nil {
				available++
			}
		}
		slog.Info("datasets preloaded", "available", available, "total", len(loaded))
	}

	server := web.NewServer(loader, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
