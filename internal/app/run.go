package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ecadtemp-server/internal/config"
	"ecadtemp-server/internal/httpapi"
	"ecadtemp-server/internal/modules/temperature"
	temperatureviews "ecadtemp-server/internal/modules/temperature/views"
	"ecadtemp-server/internal/observability"
)

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"dataDir", cfg.DataDir,
	)

	if err := temperatureviews.LoadTemplates(); err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	mux := httpapi.NewMux(cfg.DataDir)
	if err := temperature.RegisterFeature(mux, cfg.DataDir, metrics); err != nil {
		return err
	}

	srv := httpapi.NewServer(cfg, mux, metrics)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
