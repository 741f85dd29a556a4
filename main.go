package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sanchez-brick/app"
	"sanchez-brick/config"
	"sanchez-brick/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	production := os.Getenv("ENV") == "production"
	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

		// Use Overload to ensure .env values override system environment variables
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Warn().Msgf("⚠️  .env file not found at %s, using system environment variables", envPath)
		} else {
			log.Info().Msgf("✓ Loaded environment variables from %s", envPath)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if !cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	handler, err := app.Initialize(initCtx, cfg)
	initCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer db.CloseDB()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("🚀 Server starting on %s", srv.Addr)
		log.Info().Msgf("Catalogue: %s/productos", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
