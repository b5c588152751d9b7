// internal/server/server.go
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"foresight/internal/common/config"
	"foresight/internal/common/logger"
	"foresight/internal/common/observability"
	"foresight/internal/predictor"
)

// Server wraps the HTTP server hosting the prediction API.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func New(cfg config.ServerConfig, engine *predictor.Engine, obs *observability.Observability, log logger.Logger) *Server {
	router := mux.NewRouter()
	NewHandler(engine, obs, log).RegisterRoutes(router)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: log.WithFields(map[string]interface{}{
			"component": "server",
		}),
	}
}

// Start blocks serving requests until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("prediction API listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down prediction API", nil)
	return s.httpServer.Shutdown(ctx)
}
