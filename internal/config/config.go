package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	// Required vendor credentials
	OpenAIAPIKey     string
	ElevenLabsAPIKey string

	// Optional alternate providers
	AnthropicAPIKey string
	GeminiAPIKey    string
	GoogleProjectID string

	// App settings
	DefaultLLMProvider string
	DefaultTTSProvider string
	DefaultSTTProvider string
	AllowedOrigin      string
}

// Load reads configuration from the environment. It fails if either required
// vendor key is missing, so a misconfigured process never binds a listener.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		ElevenLabsAPIKey:   os.Getenv("ELEVENLABS_API_KEY"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GoogleProjectID:    os.Getenv("GOOGLE_PROJECT_ID"),
		DefaultLLMProvider: getEnv("DEFAULT_LLM_PROVIDER", "openai"),
		DefaultTTSProvider: getEnv("DEFAULT_TTS_PROVIDER", "elevenlabs"),
		DefaultSTTProvider: getEnv("DEFAULT_STT_PROVIDER", "openai"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "*"),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is missing in environment")
	}
	if cfg.ElevenLabsAPIKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY is missing in environment")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
