package api

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server listening on bindAddr.
func NewServer(cfg *config.Config, mgr *lists.Manager, bindAddr string, allowed []netip.Prefix) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      NewRouter(cfg, mgr, allowed),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start runs the server until it is stopped. It returns nil after Stop.
func (s *Server) Start() error {
	log.Infof("API server listening on http://%s", s.httpServer.Addr)
	log.Infof("API endpoints available at http://%s/api/v1", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the API server, forcing it closed when ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("Shutting down API server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
		if closeErr := s.httpServer.Close(); closeErr != nil {
			return fmt.Errorf("failed to close server: %w", closeErr)
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
