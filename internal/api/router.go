// Package api provides the HTTP API for AeroPulse.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/aeropulse/aeropulse/internal/api/handler"
	"github.com/aeropulse/aeropulse/internal/api/middleware"
	"github.com/aeropulse/aeropulse/internal/profile"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	Pollution      handler.PollutionProvider
	ProfileService *profile.Service
	StaticDir      string
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "aeropulse-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(serviceName))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)

	// All origins, methods, and headers are permitted.
	r.Use(cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       []string{"*"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
	}).Handler)

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version)
	airQualityHandler := handler.NewAirQualityHandler(cfg.Pollution)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	diagnosticHandler := handler.NewDiagnosticHandler()
	staticHandler := handler.NewStaticHandler(cfg.StaticDir)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", opsHandler.HealthCheck)

		r.Route("/air-quality", func(r chi.Router) {
			r.Get("/", airQualityHandler.GetCurrent)
			r.Get("/history", airQualityHandler.GetHistory)
		})

		r.Route("/profile", func(r chi.Router) {
			r.With(middleware.RequireJSON).Post("/save", profileHandler.SaveProfile)
			r.Get("/{userID}", profileHandler.GetProfile)
		})

		r.With(middleware.RequireJSON).Post("/diagnostic/run", diagnosticHandler.RunDiagnostic)
	})

	// Static frontend documents
	r.Get("/", staticHandler.Dashboard)
	r.Get("/page2", staticHandler.ProfilePage)

	return r
}
