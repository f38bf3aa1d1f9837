package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available providers.
type Registry struct {
	mu   sync.RWMutex
	llms map[string]LLMProvider
	tts  map[string]TTSProvider
	stt  map[string]STTProvider
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		llms: make(map[string]LLMProvider),
		tts:  make(map[string]TTSProvider),
		stt:  make(map[string]STTProvider),
	}
}

// RegisterLLM registers a language model provider.
func (r *Registry) RegisterLLM(p LLMProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.llms[p.Name()] = p
}

// RegisterTTS registers a text-to-speech provider.
func (r *Registry) RegisterTTS(p TTSProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tts[p.Name()] = p
}

// RegisterSTT registers a speech-to-text provider.
func (r *Registry) RegisterSTT(p STTProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stt[p.Name()] = p
}

// GetLLM returns the named LLM provider.
func (r *Registry) GetLLM(name string) (LLMProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.llms[name]
	if !ok {
		return nil, fmt.Errorf("LLM provider %q not found", name)
	}
	return p, nil
}

// GetTTS returns the named TTS provider.
func (r *Registry) GetTTS(name string) (TTSProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.tts[name]
	if !ok {
		return nil, fmt.Errorf("TTS provider %q not found", name)
	}
	return p, nil
}

// GetSTT returns the named STT provider.
func (r *Registry) GetSTT(name string) (STTProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.stt[name]
	if !ok {
		return nil, fmt.Errorf("STT provider %q not found", name)
	}
	return p, nil
}

// Names returns the registered provider names grouped by concern, sorted for
// stable output.
func (r *Registry) Names() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return map[string][]string{
		"llm": sortedKeys(r.llms),
		"tts": sortedKeys(r.tts),
		"stt": sortedKeys(r.stt),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
