// Package mentor implements the mentor-routing relay: it assembles the
// routing prompt, calls a language model provider in JSON mode, and validates
// the structured decision the model returns. The model does all routing;
// this package trusts its output structurally but never semantically.
package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mentorra/backend/internal/fault"
	"github.com/mentorra/backend/internal/provider"
)

const samplingTemperature = 0.7

// Service relays assist requests to a language model provider resolved from
// the registry.
type Service struct {
	providers       *provider.Registry
	defaultProvider string
}

// NewService creates a mentor service. defaultProvider names the LLM used
// when a request does not ask for a specific one.
func NewService(providers *provider.Registry, defaultProvider string) *Service {
	return &Service{providers: providers, defaultProvider: defaultProvider}
}

// Assist sends one founder message through the routing prompt and returns the
// model's validated decision. There is no retry or repair: a response that
// fails to parse as the declared schema is an error, never a partial result.
// providerName may be empty to use the configured default.
func (s *Service) Assist(ctx context.Context, providerName string, req AssistRequest) (*Response, error) {
	if strings.TrimSpace(req.UserMessage) == "" {
		return nil, fault.Input("user_message is required")
	}

	if providerName == "" {
		providerName = s.defaultProvider
	}
	llm, err := s.providers.GetLLM(providerName)
	if err != nil {
		return nil, fault.Input("%v", err)
	}

	userContext, err := buildContext(req)
	if err != nil {
		return nil, fault.Input("build context: %v", err)
	}

	raw, err := llm.Complete(ctx, provider.CompletionRequest{
		System:      systemPrompt,
		User:        userContext,
		Temperature: samplingTemperature,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, fault.Vendor(err)
	}

	var resp Response
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return nil, fault.Malformed(fmt.Errorf("model output is not valid JSON: %w", err))
	}
	if err := validate(&resp); err != nil {
		return nil, fault.Malformed(err)
	}

	return &resp, nil
}

func validate(r *Response) error {
	switch {
	case r.MentorTrack == "":
		return fmt.Errorf("model output missing mentor_track")
	case r.Reply == "":
		return fmt.Errorf("model output missing reply")
	case r.MemoryUpdate == "":
		return fmt.Errorf("model output missing memory_update")
	case r.NextActions == nil:
		return fmt.Errorf("model output missing next_actions")
	}
	return nil
}

// stripFences removes a Markdown code fence if the model wrapped its JSON in
// one despite the JSON-only instruction.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
