// Package main provides the entrypoint for the AeroPulse API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeropulse/aeropulse/internal/airquality/openweathermap"
	"github.com/aeropulse/aeropulse/internal/api"
	"github.com/aeropulse/aeropulse/internal/api/middleware"
	"github.com/aeropulse/aeropulse/internal/config"
	"github.com/aeropulse/aeropulse/internal/profile"
	"github.com/aeropulse/aeropulse/internal/telemetry"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func main() {
	const serviceName = "aeropulse-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	cfg := config.Load()
	log.Info().Str("env", cfg.Env).Msg("starting AeroPulse API")

	if cfg.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY not set - air quality endpoints will fail")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTelEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize profile store and service
	profileService := profile.NewService(profile.NewInMemoryRepository(), log)
	log.Info().Msg("profile service initialized")

	// Initialize pollution provider client
	pollutionClient := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:  cfg.OpenWeatherAPIKey,
		BaseURL: cfg.OpenWeatherBaseURL,
		Logger:  log,
	})
	log.Info().Str("provider", pollutionClient.Name()).Msg("pollution client initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:        Version,
		Logger:         log,
		ServiceName:    serviceName,
		Metrics:        metrics,
		Pollution:      pollutionClient,
		ProfileService: profileService,
		StaticDir:      cfg.StaticDir,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
