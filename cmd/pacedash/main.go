package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pacedash/internal/auth"
	"pacedash/internal/config"
	apphttp "pacedash/internal/http"
	"pacedash/internal/log"
	"pacedash/internal/report"
	"pacedash/internal/sheets"
	gsheet "pacedash/internal/sheets/google"
	mem "pacedash/internal/sheets/memory"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(cfg.LogLevel, "pacedash")
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	registry := config.DefaultRegistry()

	var fetcher sheets.RangeFetcher
	switch cfg.DataBackend {
	case "sheets":
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		fetcher = cli
	default:
		fetcher = mem.New()
		logger.Warn("using empty memory backend; all reports will be zero", "backend", cfg.DataBackend)
	}

	svc := report.NewService(fetcher, registry, cfg.AnnualGmvTarget)
	validator := auth.NewValidator(registry, cfg.CeoToken)
	srv, api := apphttp.NewServer(cfg, svc, validator, logger)
	defer api.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting pacedash server", "port", cfg.Port, "backend", cfg.DataBackend, "cache_ttl", cfg.CacheTTL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("server stopped gracefully")
}
