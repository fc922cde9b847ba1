package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agency-campaigns/internal/adapter/http"
	"agency-campaigns/internal/adapter/mongodb"
	"agency-campaigns/internal/adapter/usecase"
	"agency-campaigns/internal/config"
	"agency-campaigns/internal/db"
)

// main is the entry point of the campaign manager. It loads configuration,
// connects to MongoDB, optionally seeds demo data, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server and disconnects from the store.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.Database)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("database disconnect error", slog.Any("error", err))
		}
	}()

	store := mongodb.NewStore(client.Database(cfg.Database.Name))

	if cfg.Database.Seed {
		if seeded, err := db.Seed(ctx, store); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else if seeded {
			logger.Info("demo data seeded")
		}
	}

	svc := usecase.NewAgencyUseCase(store, store, cfg.Database.URLSet, logger)

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.CORSOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("database", cfg.Database.Name),
			slog.String("env", cfg.Env))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
