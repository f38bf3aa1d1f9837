package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mentorra/backend/internal/provider"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// Fixed defaults applied when the caller omits a parameter.
const (
	DefaultVoiceID      = "JBFqnCBsd6RMkjVDRZzb"
	DefaultModelID      = "eleven_monolingual_v1"
	DefaultOutputFormat = "mp3_44100_128"
)

// ElevenLabsProvider implements TTSProvider using the ElevenLabs HTTP API.
type ElevenLabsProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewElevenLabsProvider creates a new ElevenLabs TTS provider.
func NewElevenLabsProvider(apiKey string) *ElevenLabsProvider {
	return &ElevenLabsProvider{
		apiKey:  apiKey,
		baseURL: elevenLabsBaseURL,
		client:  &http.Client{},
	}
}

func (p *ElevenLabsProvider) Name() string { return "elevenlabs" }

func (p *ElevenLabsProvider) Synthesize(ctx context.Context, req provider.SynthesisRequest) (io.ReadCloser, string, error) {
	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	modelID := req.ModelID
	if modelID == "" {
		modelID = DefaultModelID
	}
	format := req.OutputFormat
	if format == "" {
		format = DefaultOutputFormat
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s",
		p.baseURL, voiceID, url.QueryEscape(format))

	body, err := json.Marshal(map[string]any{
		"text":     req.Text,
		"model_id": modelID,
	})
	if err != nil {
		return nil, "", fmt.Errorf("elevenlabs marshal error: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("elevenlabs request error: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", p.apiKey)
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("elevenlabs request error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("elevenlabs API error: status %d", resp.StatusCode)
	}

	return resp.Body, "audio/mpeg", nil
}
