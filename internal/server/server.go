// Package server provides the HTTP server for the CineLista API.
// It wires together the database, repositories, services and handlers,
// configures routing and middleware, and manages the server lifecycle
// including graceful shutdown and periodic maintenance.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cinelista/backend/internal/auth"
	"github.com/cinelista/backend/internal/config"
	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/database"
	"github.com/cinelista/backend/internal/handlers"
	"github.com/cinelista/backend/internal/repository"
	"github.com/cinelista/backend/internal/service"
	"github.com/cinelista/backend/migrations"
)

// Handlers contains all HTTP handlers for the application
type Handlers struct {
	// AuthHandler manages registration, login and password reset endpoints
	AuthHandler *handlers.AuthHandler

	// UserHandler manages account profile endpoints
	UserHandler *handlers.UserHandler

	// ListHandler manages movie list and public sharing endpoints
	ListHandler *handlers.ListHandler
}

// repositories holds the data access layer for the server instance
type repositories struct {
	userRepo repository.UserRepository
	listRepo repository.MovieListRepository
}

// services holds the business logic layer for the server instance
type services struct {
	authService *service.AuthService
	userService *service.UserService
	listService *service.ListService
}

// Server represents the CineLista API server. It encapsulates all server
// components and handles lifecycle management, including initialization,
// startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// jwtService issues and validates session tokens
	jwtService *auth.JWTService

	router chi.Router

	repos *repositories
	svcs  *services

	httpServer *http.Server

	maintenanceStop chan struct{}
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database, auth providers,
// repositories, services, handlers, routes. All dependencies are held by
// the instance rather than package state so multiple servers can coexist
// in tests.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config:          cfg,
		maintenanceStop: make(chan struct{}),
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.jwtService = auth.NewJWTService(&cfg.JWT)

	s.setupRepositories()

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects to the database and runs migrations
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// setupRepositories initializes the data access layer
func (s *Server) setupRepositories() {
	s.repos = &repositories{
		userRepo: repository.NewUserRepository(s.Db),
		listRepo: repository.NewMovieListRepository(s.Db),
	}
}

// setupServices initializes the business logic layer
func (s *Server) setupServices() error {
	emailService, err := service.NewEmailService(&s.Config.Email)
	if err != nil {
		return err
	}

	s.svcs = &services{
		authService: service.NewAuthService(s.repos.userRepo, s.jwtService, emailService),
		userService: service.NewUserService(s.repos.userRepo),
		listService: service.NewListService(s.repos.listRepo),
	}

	return nil
}

// setupHandlers initializes the HTTP request handlers
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		AuthHandler: handlers.NewAuthHandler(s.svcs.authService),
		UserHandler: handlers.NewUserHandler(s.svcs.userService),
		ListHandler: handlers.NewListHandler(s.svcs.listService),
	}
}

// Start starts the HTTP server and blocks until a server error occurs or a
// shutdown signal is received. On SIGINT or SIGTERM it performs a graceful
// shutdown bounded by the configured shutdown timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	s.SetupMaintenanceTasks()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.maintenanceStop)

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}

// SetupMaintenanceTasks starts the periodic maintenance loop. Expired
// password reset tokens are cleared on each tick so stale reset state does
// not accumulate between requests.
func (s *Server) SetupMaintenanceTasks() {
	ticker := time.NewTicker(constants.DBMaintenanceInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-s.maintenanceStop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)

				if count, err := s.repos.userRepo.ClearExpiredResetTokens(ctx); err != nil {
					log.Error().Err(err).Msg("Failed to clear expired reset tokens")
				} else if count > 0 {
					log.Info().Int64("count", count).Msg("Cleared expired reset tokens")
				}

				cancel()
			}
		}
	}()
}
