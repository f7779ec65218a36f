// Package sessions stores assistant conversation state per session id.
package sessions

import (
	"context"
	"maps"
	"slices"
)

// ContextTopLeadID is the context key holding the last recommended lead.
const ContextTopLeadID = "top_lead_id"

// Turn is one exchange of a conversation.
type Turn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Session is the state of one conversation. It is created on the first
// message under an id and only mutated by the assistant service.
type Session struct {
	ID         string           `json:"id"`
	History    []Turn           `json:"history"`
	LastIntent string           `json:"last_intent"`
	Context    map[string]int64 `json:"context"`
}

// New returns an empty session for id.
func New(id string) Session {
	return Session{ID: id, History: []Turn{}, Context: map[string]int64{}}
}

// Clone returns a deep copy so stored state never aliases caller state.
func (s Session) Clone() Session {
	out := s
	out.History = slices.Clone(s.History)
	if out.History == nil {
		out.History = []Turn{}
	}
	out.Context = maps.Clone(s.Context)
	if out.Context == nil {
		out.Context = map[string]int64{}
	}
	return out
}

// Store persists sessions. Get reports false when no session exists.
type Store interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Put(ctx context.Context, session Session) error
}
