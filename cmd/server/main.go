// Command server serves a single Kira Suspicion Simulator session over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tatianab/kira-suspicion/internal/config"
	"github.com/tatianab/kira-suspicion/internal/observe"
	"github.com/tatianab/kira-suspicion/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		config.Exitf("kira-server: %v", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observe.InitProvider(ctx, observe.ProviderConfig{OTLPEndpoint: cfg.OTLPEndpoint})
	if err != nil {
		logger.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	metrics := observe.DefaultMetrics()

	eng, cleanup, err := cfg.NewEngine(ctx, logger, metrics)
	if err != nil {
		logger.Error("failed to create engine", "err", err)
		return 1
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(eng, logger, metrics).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	code := 0
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "err", err)
		code = 1
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		logger.Warn("telemetry shutdown error", "err", err)
	}
	logger.Info("goodbye")
	return code
}
