package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grocery-store/internal/config"
	custommiddleware "grocery-store/internal/middleware"
	"grocery-store/internal/service"
	"grocery-store/internal/snapshot"
	"grocery-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config    *config.Config
	logger    *zap.Logger
	store     service.StoreService
	snapshots *snapshot.Store
}

func NewServer(cfg *config.Config, logger *zap.Logger, store service.StoreService, snapshots *snapshot.Store) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize handlers
	storeHandler := transport.NewStoreHandler(store, logger)
	memberHandler := transport.NewMemberHandler(store, logger)

	// Register routes
	storeHandler.RegisterRoutes(router)
	memberHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:    cfg,
		logger:    logger,
		store:     store,
		snapshots: snapshots,
	}
}

// Close writes the whole-store snapshot back to disk. It runs after the
// listener has stopped, so no operation can mutate the store mid-save.
func (s *Server) Close() error {
	s.logger.Info("Saving store snapshot before exit")

	snap := s.store.BuildSnapshot(context.Background())
	if err := s.snapshots.Save(snap); err != nil {
		s.logger.Error("Failed to save snapshot", zap.Error(err))
		return err
	}

	s.logger.Sync()
	return nil
}
