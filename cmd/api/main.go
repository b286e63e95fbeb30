package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"grocery-store/internal/config"
	"grocery-store/internal/logger"
	"grocery-store/internal/repository"
	"grocery-store/internal/server"
	"grocery-store/internal/service"
	"grocery-store/internal/snapshot"

	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Save the snapshot once no request is in flight
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting grocery store API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("snapshot_path", cfg.Snapshot.Path),
	)

	// Build the collections and the store facade
	catalog := repository.NewCatalog()
	members := repository.NewMemberList()
	orders := repository.NewOrderList()
	cart := repository.NewCart()
	store := service.NewStoreService(catalog, members, orders, cart, log)

	// Restore state from the last snapshot, if one exists
	snapshots := snapshot.NewStore(cfg.Snapshot.Path, log)
	snap, err := snapshots.Load()
	switch {
	case err == nil:
		store.RestoreSnapshot(context.Background(), snap)
	case errors.Is(err, snapshot.ErrNoSnapshot):
		log.Info("No snapshot found, starting with an empty store")
	default:
		log.Fatal("Failed to load snapshot", zap.Error(err))
	}

	// Create server
	srv := server.NewServer(cfg, log, store, snapshots)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
