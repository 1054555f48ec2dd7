package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/middleware"
	"github.com/cinelista/backend/internal/utils"
)

// SetupRoutes configures the router with all application routes and
// middleware. Routes fall into three groups: public auth and sharing
// endpoints, token-protected account and list endpoints, and operational
// endpoints (health, version).
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(corsMiddleware(s.Config.CORS.AllowedOrigins))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())

	// Health check and version routes (unprotected)
	r.Group(func(r chi.Router) {
		r.Get(constants.HealthPath, func(w http.ResponseWriter, r *http.Request) {
			if err := s.Db.HealthCheck(r.Context()); err != nil {
				log.Error().Err(err).Msg("Health check failed")
				utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
				return
			}

			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get(constants.VersionPath, func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// API routes
	r.Route(constants.APIBasePath, func(r chi.Router) {
		// Authentication routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Handlers.AuthHandler.Register)
			r.Post("/login", s.Handlers.AuthHandler.Login)
			r.Post("/forgot-password", s.Handlers.AuthHandler.ForgotPassword)
			r.Post("/reset-password/{"+constants.ParamResetToken+"}", s.Handlers.AuthHandler.ResetPassword)
		})

		// Account routes (protected)
		r.Route("/users/me", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.jwtService))

			r.Get("/", s.Handlers.UserHandler.GetCurrentUser)
			r.Put("/", s.Handlers.UserHandler.UpdateCurrentUser)
			r.Delete("/", s.Handlers.UserHandler.DeleteCurrentUser)
		})

		// Movie list routes (protected)
		r.Route("/lists", func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.jwtService))

			r.Get("/", s.Handlers.ListHandler.GetLists)
			r.Post("/", s.Handlers.ListHandler.CreateList)

			r.Route("/{"+constants.ParamListID+"}", func(r chi.Router) {
				r.Get("/", s.Handlers.ListHandler.GetList)
				r.Put("/", s.Handlers.ListHandler.UpdateList)
				r.Delete("/", s.Handlers.ListHandler.DeleteList)

				r.Route("/movies", func(r chi.Router) {
					r.Post("/", s.Handlers.ListHandler.AddMovie)
					r.Put("/{"+constants.ParamMovieID+"}", s.Handlers.ListHandler.UpdateMovie)
					r.Delete("/{"+constants.ParamMovieID+"}", s.Handlers.ListHandler.RemoveMovie)
				})
			})
		})
	})

	// Public shared list route (unprotected). The shareable link is the only
	// credential required to read a list.
	r.Get(constants.PublicBasePath+"/list/{"+constants.ParamShareableLink+"}", s.Handlers.ListHandler.GetPublicList)

	s.router = r
}

// GetRouter returns the configured router. Primarily used by tests.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// corsMiddleware adds CORS headers for allowed origins and answers OPTIONS
// preflight requests directly.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || strings.EqualFold(allowedOrigin, origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")

					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			// Origin not allowed: continue without CORS headers
			next.ServeHTTP(w, r)
		})
	}
}
