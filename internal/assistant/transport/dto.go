package transport

// ChatRequest is one user message.
type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=2000"`
	SessionID string `json:"session_id" validate:"omitempty,max=128"`
}

type ChatResponse struct {
	Reply       string   `json:"reply"`
	FollowUp    string   `json:"follow_up"`
	Suggestions []string `json:"suggestions"`
}

type TurnResponse struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// SessionResponse is the admin view of a stored conversation.
type SessionResponse struct {
	SessionID  string           `json:"session_id"`
	LastIntent string           `json:"last_intent"`
	History    []TurnResponse   `json:"history"`
	Context    map[string]int64 `json:"context"`
}
