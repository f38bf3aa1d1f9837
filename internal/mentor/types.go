package mentor

// FounderProfile is the caller-supplied summary of what is known about the
// founder so far. All fields are optional.
type FounderProfile struct {
	Industry      string   `json:"industry,omitempty"`
	Stage         string   `json:"stage,omitempty"`
	KeyChallenges []string `json:"key_challenges,omitempty"`
}

// AssistRequest is a single mentor-assist call. The caller carries all
// conversational state: profile, active track, and the memory summary from
// the previous call.
type AssistRequest struct {
	UserMessage       string          `json:"user_message"`
	FounderProfile    *FounderProfile `json:"founder_profile,omitempty"`
	ActiveMentorTrack string          `json:"active_mentor_track,omitempty"`
	MemoryContext     string          `json:"memory_context,omitempty"`
}

// Response is the routing decision the model emits. It is passed through to
// the caller exactly as the model produced it, after schema validation.
type Response struct {
	MentorTrack        string   `json:"mentor_track"`
	SwitchedTrack      bool     `json:"switched_track"`
	Reply              string   `json:"reply"`
	ClarifyingQuestion *string  `json:"clarifying_question,omitempty"`
	NextActions        []string `json:"next_actions"`
	MemoryUpdate       string   `json:"memory_update"`
}
