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

	"github.com/SscSPs/coin_wallet_app/internal/adapters/geolocation"
	"github.com/SscSPs/coin_wallet_app/internal/adapters/paystack"
	"github.com/SscSPs/coin_wallet_app/internal/adapters/supabase"
	portsrepo "github.com/SscSPs/coin_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_wallet_app/internal/core/services"
	"github.com/SscSPs/coin_wallet_app/internal/handlers"
	"github.com/SscSPs/coin_wallet_app/internal/jobs"
	"github.com/SscSPs/coin_wallet_app/internal/middleware"
	"github.com/SscSPs/coin_wallet_app/internal/platform/config"
	"github.com/SscSPs/coin_wallet_app/internal/repositories/cache/redis"
	"github.com/SscSPs/coin_wallet_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/coin_wallet_app/internal/utils"
	"github.com/SscSPs/coin_wallet_app/pkg/database"
	"github.com/gin-gonic/gin"
)

const posthogEndpoint = "https://us.i.posthog.com"

// @title Coin Wallet Backend API
// @version 1.0
// @description Server-side pieces of the coin wallet app: conversion table, bank directory and bank account verification.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, cleanup, err := setupVerificationCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	gw := services.Gateways{
		AccountResolver: paystack.New(paystack.Config{
			BaseURL:   cfg.PaystackBaseURL,
			SecretKey: cfg.PaystackSecretKey,
			Timeout:   cfg.OutboundTimeout,
		}),
		GeoLocator: geolocation.New(cfg.GeolocationBaseURL, cfg.OutboundTimeout),
	}
	rpcClient, err := supabase.New(supabase.Config{
		URL:     cfg.SupabaseURL,
		APIKey:  cfg.SupabaseServiceKey,
		Timeout: cfg.OutboundTimeout,
	})
	if err != nil {
		logger.Warn("Remote procedures disabled", slog.String("error", err.Error()))
	} else {
		gw.RemoteProcedures = rpcClient
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, gw)

	verifyLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, posthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := handlers.NewEngine(cfg, logger)
	if err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, verifyLimiter, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
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

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupVerificationCache wires the configured cache backend. The returned cleanup
// releases every resource opened here and is safe to call when caching is off.
func setupVerificationCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	noop := func() {}
	if !cfg.CacheEnabled() {
		logger.Info("Verification cache disabled")
		return portsrepo.RepositoryProvider{}, noop, nil
	}

	switch cfg.VerificationCacheBackend {
	case config.CacheBackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		repos := pgsql.NewRepositoryProvider(dbPool)

		scheduler, err := jobs.StartScheduler(cfg.CachePurgeSchedule, jobs.NewCachePurgeJob(repos.VerificationCacheRepo, logger), logger)
		if err != nil {
			database.ClosePgxPool(dbPool, logger)
			return portsrepo.RepositoryProvider{}, noop, err
		}
		return repos, func() {
			<-scheduler.Stop().Done()
			database.ClosePgxPool(dbPool, logger)
		}, nil

	case config.CacheBackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, noop, err
		}
		logger.Info("Verification cache using redis")
		return portsrepo.RepositoryProvider{VerificationCacheRepo: redis.NewVerificationCacheRepository(client)}, func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing redis client", slog.String("error", err.Error()))
			}
		}, nil
	}

	return portsrepo.RepositoryProvider{}, noop, nil
}
