package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-discovery-backend/internal/config"
	"github.com/tbourn/go-discovery-backend/internal/dataset"
	httpapi "github.com/tbourn/go-discovery-backend/internal/http"
	"github.com/tbourn/go-discovery-backend/internal/observability"
	"github.com/tbourn/go-discovery-backend/internal/repo"
	"github.com/tbourn/go-discovery-backend/internal/services"
	"github.com/tbourn/go-discovery-backend/internal/sysutil"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `serve loads .env (when present) and the environment configuration, opens
the search audit database and starts the HTTP API. The remote dataset is
loaded in the background; the built-in dataset answers until it arrives.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, os.Stdout)
	gin.SetMode(cfg.GinMode)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			return fmt.Errorf("db tracing: %w", err)
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	cacheTTL := cfg.Dataset.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = -1 // provider: negative disables, zero means default
	}
	provider := dataset.NewProvider(dataset.Options{
		URL:       cfg.Dataset.URL,
		Timeout:   cfg.Dataset.Timeout,
		MaxBytes:  cfg.Dataset.MaxBytes,
		UserAgent: cfg.Dataset.UserAgent,
		CacheTTL:  cacheTTL,
		Logger:    &logger,
	})
	store := dataset.NewStore(provider)
	datasets := services.NewDatasetService(store, provider)

	go datasets.Reload(ctx, false)

	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{DB: db, Store: store, Datasets: datasets}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", cfg.APIBasePath).
			Bool("dataset_remote", cfg.Dataset.URL != "").
			Bool("admin_enabled", cfg.AdminToken != "").
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
	return nil
}
