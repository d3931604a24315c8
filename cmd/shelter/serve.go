package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cat-shelter-admin/internal/adapters/auth/password"
	"cat-shelter-admin/internal/config"
	"cat-shelter-admin/internal/platform/logger"
	"cat-shelter-admin/internal/ports/auth"
	"cat-shelter-admin/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, dialect, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// sin hash configurado => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if cfg.StaffPasswordHash != "" {
		v, err := password.NewVerifier(cfg.StaffPasswordHash)
		if err != nil {
			return err
		}
		verifier = v
	} else {
		log.Warn("STAFF_PASSWORD_HASH not set, running in dev auth mode", nil)
	}

	h, err := router.NewRouter(ctx, router.Options{
		Logger:       log,
		AuthVerifier: verifier,
		DB:           db,
		Dialect:      dialect,
		Horizons:     &cfg.Horizons,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "db_driver": string(cfg.DBDriver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
