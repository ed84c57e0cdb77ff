package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminpanel/pkg/auth"
	"adminpanel/pkg/database"
	"adminpanel/pkg/downloads"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const defaultShutdownTimeout = 10 * time.Second

// Server is the admin panel HTTP layer.
type Server struct {
	echo            *echo.Echo
	db              *database.Store
	orch            *downloads.Orchestrator
	gate            *auth.Gate
	shutdownTimeout time.Duration
}

// New creates a server over the given stores and auth gate.
func New(db *database.Store, orch *downloads.Orchestrator, gate *auth.Gate, shutdownTimeout time.Duration) *Server {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &Server{
		echo:            echo.New(),
		db:              db,
		orch:            orch,
		gate:            gate,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start(addr string) error {
	s.setupRoutes()

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("Starting admin panel server")

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return s.Shutdown()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (s *Server) setupRoutes() {
	// Echo configuration
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Setup middleware with custom logger
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	s.echo.Use(middleware.Recover())

	// API documentation
	s.echo.GET("/", s.serveDocsUI)
	s.echo.GET("/openapi.yml", s.serveOpenAPISpec)

	api := s.echo.Group("/api")

	// Auth endpoints
	api.POST("/auth/login", s.login)
	api.POST("/auth/verify", s.verifyToken)
	api.POST("/auth/logout", s.logout)

	// Read endpoints are public; the download site consumes them
	api.GET("/systems", s.listSystems)
	api.GET("/categories", s.listCategories)
	api.GET("/areas", s.listAreas)
	api.GET("/downloads", s.listDownloads)
	api.GET("/downloads/:id/file", s.downloadFile)

	// Every mutation requires a valid credential
	protected := api.Group("", s.requireAuth)
	protected.POST("/systems", s.createSystem)
	protected.PUT("/systems/:id", s.updateSystem)
	protected.DELETE("/systems/:id", s.deleteSystem)
	protected.POST("/categories", s.createCategory)
	protected.PUT("/categories/:id", s.updateCategory)
	protected.DELETE("/categories/:id", s.deleteCategory)
	protected.POST("/areas", s.createArea)
	protected.PUT("/areas/:id", s.updateArea)
	protected.DELETE("/areas/:id", s.deleteArea)
	protected.POST("/downloads", s.createDownload)
	protected.DELETE("/downloads/:id", s.deleteDownload)
}

// pathID parses the :id route parameter.
func pathID(ctx echo.Context) (int64, error) {
	return parseID(ctx.Param("id"))
}
