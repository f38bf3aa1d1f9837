package provider_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mentorra/backend/internal/provider"
)

type mockLLM struct{ name string }

func (m *mockLLM) Name() string { return m.name }
func (m *mockLLM) Complete(_ context.Context, _ provider.CompletionRequest) (string, error) {
	return `{"ok": true}`, nil
}

type mockTTS struct{ name string }

func (m *mockTTS) Name() string { return m.name }
func (m *mockTTS) Synthesize(_ context.Context, _ provider.SynthesisRequest) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("audio")), "audio/mpeg", nil
}

type mockSTT struct{ name string }

func (m *mockSTT) Name() string { return m.name }
func (m *mockSTT) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	return "transcribed text", nil
}

func TestRegistry_RegisterAndGetLLM(t *testing.T) {
	reg := provider.NewRegistry()
	reg.RegisterLLM(&mockLLM{name: "test-llm"})

	p, err := reg.GetLLM("test-llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "test-llm" {
		t.Errorf("expected name %q, got %q", "test-llm", p.Name())
	}
}

func TestRegistry_GetLLM_NotFound(t *testing.T) {
	reg := provider.NewRegistry()
	_, err := reg.GetLLM("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent provider")
	}
}

func TestRegistry_RegisterAndGetTTS(t *testing.T) {
	reg := provider.NewRegistry()
	reg.RegisterTTS(&mockTTS{name: "test-tts"})

	p, err := reg.GetTTS("test-tts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "test-tts" {
		t.Errorf("expected name %q, got %q", "test-tts", p.Name())
	}
}

func TestRegistry_RegisterAndGetSTT(t *testing.T) {
	reg := provider.NewRegistry()
	reg.RegisterSTT(&mockSTT{name: "test-stt"})

	p, err := reg.GetSTT("test-stt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "test-stt" {
		t.Errorf("expected name %q, got %q", "test-stt", p.Name())
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := provider.NewRegistry()
	reg.RegisterLLM(&mockLLM{name: "llm-b"})
	reg.RegisterLLM(&mockLLM{name: "llm-a"})
	reg.RegisterTTS(&mockTTS{name: "tts-a"})
	reg.RegisterSTT(&mockSTT{name: "stt-a"})

	names := reg.Names()
	if len(names["llm"]) != 2 || names["llm"][0] != "llm-a" || names["llm"][1] != "llm-b" {
		t.Errorf("unexpected llm names: %v", names["llm"])
	}
	if len(names["tts"]) != 1 {
		t.Errorf("expected 1 TTS, got %d", len(names["tts"]))
	}
	if len(names["stt"]) != 1 {
		t.Errorf("expected 1 STT, got %d", len(names["stt"]))
	}
}
