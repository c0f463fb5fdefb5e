package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estatehub/backend/internal/config"
	"github.com/estatehub/backend/internal/handler"
	"github.com/estatehub/backend/internal/logging"
	"github.com/estatehub/backend/internal/repository"
	"github.com/estatehub/backend/internal/service"
	"github.com/estatehub/backend/internal/storage"
)

const apiName = "EstateHub API"

func main() {
	cfg := config.Load()

	shutdownLogging, err := logging.Setup(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		AppName: cfg.AppName,
		Fluent: logging.FluentConfig{
			Enabled: cfg.FluentBit.Enabled,
			Host:    cfg.FluentBit.Host,
			Port:    cfg.FluentBit.Port,
		},
	})
	if err != nil {
		logging.Fatal("failed to set up logging", "error", err)
	}
	defer shutdownLogging()

	store, closeStore := openStore(cfg)
	defer closeStore()

	ids := service.NewIDGenerator()
	listingService := service.NewListingService(repository.NewListingRepository(store), ids)
	contactService := service.NewContactService(repository.NewContactRepository(store), ids)

	var limiter *handler.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = handler.NewRateLimiter(cfg.RateLimitPerMinute)
	}

	if _, err := os.Stat(cfg.PublicDir); err != nil {
		slog.Warn("public directory unavailable", "dir", cfg.PublicDir, "error", err)
	}

	router := handler.NewRouter(handler.Routes{
		Health:             handler.New(store, apiName),
		Listings:           handler.NewListingHandler(listingService),
		Contacts:           handler.NewContactHandler(contactService),
		Static:             handler.NewStaticHandler(cfg.PublicDir),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        limiter,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening",
			"url", fmt.Sprintf("http://localhost:%s", cfg.Port),
			"store", cfg.StoreDriver,
			"data_dir", cfg.DataDir,
			"public_dir", cfg.PublicDir,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

// openStore returns the configured storage backend and a func releasing it.
func openStore(cfg *config.Config) (storage.Storage, func()) {
	if cfg.StoreDriver != config.DriverPostgres {
		return storage.NewLocalStorage(cfg.DataDir), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	pg := storage.NewPgStorage(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		pool.Close()
		logging.Fatal("failed to create collections table", "error", err)
	}
	return pg, pool.Close
}
