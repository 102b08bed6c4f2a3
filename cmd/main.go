package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jbnu-feel/feelgeo/internal/config"
	"github.com/jbnu-feel/feelgeo/internal/geocache"
	"github.com/jbnu-feel/feelgeo/internal/geocoding"
	"github.com/jbnu-feel/feelgeo/internal/metrics"
	"github.com/jbnu-feel/feelgeo/internal/normalizer"
	"github.com/jbnu-feel/feelgeo/internal/partners"
	"github.com/jbnu-feel/feelgeo/internal/queue"
	"github.com/jbnu-feel/feelgeo/internal/repository"
	"github.com/jbnu-feel/feelgeo/internal/server"
	"github.com/jbnu-feel/feelgeo/internal/service"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for application metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the database connection for the content API.
	dtb, err := repository.NewDatabase(
		ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)

	// Load the static partner dataset compiled into the binary.
	catalog, err := partners.Load()
	if err != nil {
		log.Fatalf("Failed to load partner dataset: %v", err)
	}

	// Create geocoding provider using the factory. A missing credential
	// yields a disabled provider, not a startup failure.
	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:         geocoding.ProviderType(cfg.ProviderType),
		ClientID:     cfg.NaverClientID,
		ClientSecret: cfg.NaverClientSecret,
		APIKey:       cfg.APIKey,
		RateLimit:    cfg.RateLimit,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	// Build the durable geocode cache and load the persisted snapshot once.
	store, err := newCacheStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create cache store: %v", err)
	}
	cache := geocache.New(logger, store)
	cache.Load(ctx)

	// The lookup queue serializes all external calls; one in flight at a
	// time, spaced by the configured interval.
	lookupQueue := queue.New(cfg.QueueInterval)
	go lookupQueue.Run(ctx)

	resolver := service.NewResolver(
		logger,
		normalizer.Default(),
		cache,
		lookupQueue,
		provider,
		cfg.ProviderType,
		appMetrics,
	)

	srv := server.NewServer(logger, catalog, resolver, repo, dtb)
	router := srv.Router(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	readTimeout := 5
	writeTimeout := 10
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", cfg.Port)
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server failed", "error", serveErr)
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 5
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	logger.Info("Application stopped gracefully.")
}

// newCacheStore selects the durable snapshot backend from configuration.
func newCacheStore(cfg *config.Config) (geocache.Store, error) {
	switch cfg.CacheStore {
	case "file":
		return geocache.NewFileStore(cfg.CachePath), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return geocache.NewRedisStore(client, geocache.SnapshotKey), nil
	default:
		return nil, fmt.Errorf("unsupported cache store: %s", cfg.CacheStore)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
