package provider

import (
	"context"
	"io"
)

// CompletionRequest is a single-shot chat completion: one system prompt, one
// user turn. The caller supplies the full context on every call; no
// conversation state lives on this side.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	// JSONOnly asks the vendor to constrain output to a valid JSON object,
	// where the vendor supports such a mode.
	JSONOnly bool
}

// SynthesisRequest carries text plus voice parameters for speech synthesis.
// Empty fields are filled with the provider's fixed defaults before the call.
type SynthesisRequest struct {
	Text         string `json:"text"`
	VoiceID      string `json:"voice_id"`
	ModelID      string `json:"model_id"`
	OutputFormat string `json:"output_format"`
}

// LLMProvider defines the interface for language model providers.
type LLMProvider interface {
	// Name returns the provider identifier.
	Name() string
	// Complete sends the request and returns the model's raw text output.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// TTSProvider defines the interface for text-to-speech providers.
type TTSProvider interface {
	// Name returns the provider identifier.
	Name() string
	// Synthesize converts text to audio. The returned reader streams the
	// vendor's audio bytes in arrival order; the string is the content type.
	Synthesize(ctx context.Context, req SynthesisRequest) (io.ReadCloser, string, error)
}

// STTProvider defines the interface for speech-to-text providers.
type STTProvider interface {
	// Name returns the provider identifier.
	Name() string
	// Transcribe converts audio to text. filename is a hint for the vendor's
	// format detection, never a path on this machine.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
