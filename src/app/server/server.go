// Package server provides HTTP server initialization and lifecycle management.
package server

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

	"github.com/gin-gonic/gin"

	"assetregistry/src/app/http/handler"
	"assetregistry/src/app/middleware"
	"assetregistry/src/core/domain"
	"assetregistry/src/core/ports"
	"assetregistry/src/core/usecase"
	"assetregistry/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	vendorHandler   *handler.VendorHandler
	categoryHandler *handler.AssetCategoryHandler
	systemHandler   *handler.SystemHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, vendors ports.VendorRepository, categories ports.AssetCategoryRepository, systems ports.SystemRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(vendors, log)
	vendorService := usecase.NewVendorService(vendors, log)
	categoryService := usecase.NewAssetCategoryService(categories, log)
	systemService := usecase.NewSystemService(systems, log)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		vendorHandler:   handler.NewVendorHandler(vendorService),
		categoryHandler: handler.NewAssetCategoryHandler(categoryService),
		systemHandler:   handler.NewSystemHandler(systemService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Vendors
		v1.POST("/vendors", s.vendorHandler.Create)
		v1.GET("/vendors", s.vendorHandler.List)
		v1.GET("/vendors/:id", s.vendorHandler.GetByID)
		v1.GET("/vendors/name/:name", s.vendorHandler.GetByName)
		v1.PUT("/vendors/:id", s.vendorHandler.Update)
		v1.DELETE("/vendors/:id", s.vendorHandler.Delete)
		v1.DELETE("/vendors", s.vendorHandler.DeleteAll)

		// Asset categories
		v1.POST("/asset-categories", s.categoryHandler.Create)
		v1.GET("/asset-categories", s.categoryHandler.List)
		v1.GET("/asset-categories/:id", s.categoryHandler.GetByID)
		v1.GET("/asset-categories/name/:name", s.categoryHandler.GetByName)
		v1.PUT("/asset-categories/:id", s.categoryHandler.Update)
		v1.DELETE("/asset-categories/:id", s.categoryHandler.Delete)
		v1.DELETE("/asset-categories", s.categoryHandler.DeleteAll)

		// Systems
		v1.POST("/systems", s.systemHandler.Create)
		v1.GET("/systems", s.systemHandler.List)
		v1.GET("/systems/:id", s.systemHandler.GetByID)
		v1.GET("/systems/name/:name", s.systemHandler.GetByName)
		v1.PUT("/systems/:id", s.systemHandler.Update)
		v1.DELETE("/systems/:id", s.systemHandler.Delete)
		v1.DELETE("/systems", s.systemHandler.DeleteAll)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, domain.Wrapper[struct{}]{
			Code:    domain.ResultNotFound,
			Message: "the requested resource was not found",
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
