package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mentorra/backend/internal/provider"
)

// GeminiProvider implements LLMProvider for Google Gemini.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Google Gemini provider.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  "gemini-2.0-flash",
	}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				genai.NewPartFromText(req.System),
			},
		}
	}
	if req.JSONOnly {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(req.User),
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini completion error: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini completion returned no text")
	}
	return text, nil
}
