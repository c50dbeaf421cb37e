package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"gemini-chat/internal/config"
	"gemini-chat/internal/handlers"
	"gemini-chat/internal/router"
	"gemini-chat/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	logger := newLogger(cfg)
	logger.Info().Msg("environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal().Err(err).Msg("Gemini client initialization failed")
	}
	defer geminiService.Close()
	logger.Info().Str("model", geminiService.Model()).Msg("Gemini client initialized")

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService, logger)
	healthHandler := handlers.NewHealthHandler(geminiService.Model())

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		logger,
		chatHandler,
		healthHandler,
		cfg.FrontendURL,
		cfg.StaticDir,
		int64(cfg.MaxBodyBytes),
	)

	// No WriteTimeout: a slow generation must be allowed to finish.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("static_dir", cfg.StaticDir).
		Msgf("relay ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	}
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}
