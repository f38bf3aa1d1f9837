package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mentorra/backend/internal/api"
	"github.com/mentorra/backend/internal/config"
	"github.com/mentorra/backend/internal/mentor"
	"github.com/mentorra/backend/internal/provider"
	"github.com/mentorra/backend/internal/provider/llm"
	"github.com/mentorra/backend/internal/provider/stt"
	"github.com/mentorra/backend/internal/provider/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	registry := provider.NewRegistry()
	registerProviders(cfg, registry)

	mentorSvc := mentor.NewService(registry, cfg.DefaultLLMProvider)
	router := api.NewRouter(cfg, registry, mentorSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second, // must outlive the synthesis stream
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}

func registerProviders(cfg *config.Config, registry *provider.Registry) {
	// Required vendors; config.Load guarantees both keys are present.
	registry.RegisterLLM(llm.NewOpenAIProvider(cfg.OpenAIAPIKey))
	slog.Info("registered LLM provider", "name", "openai")

	registry.RegisterTTS(tts.NewElevenLabsProvider(cfg.ElevenLabsAPIKey))
	slog.Info("registered TTS provider", "name", "elevenlabs")

	registry.RegisterTTS(tts.NewOpenAITTSProvider(cfg.OpenAIAPIKey))
	slog.Info("registered TTS provider", "name", "openai")

	registry.RegisterSTT(stt.NewOpenAISTTProvider(cfg.OpenAIAPIKey))
	slog.Info("registered STT provider", "name", "openai")

	// Optional alternates
	if cfg.AnthropicAPIKey != "" {
		registry.RegisterLLM(llm.NewAnthropicProvider(cfg.AnthropicAPIKey))
		slog.Info("registered LLM provider", "name", "anthropic")
	}
	if cfg.GeminiAPIKey != "" {
		p, err := llm.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			slog.Error("failed to create Gemini provider", "error", err)
		} else {
			registry.RegisterLLM(p)
			slog.Info("registered LLM provider", "name", "gemini")
		}
	}
	if cfg.GoogleProjectID != "" {
		registry.RegisterSTT(stt.NewGoogleSTTProvider(cfg.GoogleProjectID))
		slog.Info("registered STT provider", "name", "google")
	}
}
