// Package service runs assistant turns against the session store.
package service

import (
	"context"
	"fmt"
	"strings"

	"salesspark_backend/internal/assistant/domain"
	"salesspark_backend/internal/assistant/ports"
	"salesspark_backend/internal/assistant/sessions"
	"salesspark_backend/internal/assistant/transport"
	"salesspark_backend/internal/events"
	"salesspark_backend/platform/apperr"
	"salesspark_backend/platform/logger"
)

// DefaultSessionID is used when the caller sends no session id.
const DefaultSessionID = "default_session"

const topLeadsLimit = 3

// Service answers chat messages.
type Service struct {
	store    sessions.Store
	locks    *sessions.Locker
	pipeline ports.PipelineSnapshotter
	leads    ports.TopLeadsReader
	eventBus events.Bus
	log      *logger.Logger
}

func New(store sessions.Store, pipeline ports.PipelineSnapshotter, leads ports.TopLeadsReader, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		locks:    sessions.NewLocker(),
		pipeline: pipeline,
		leads:    leads,
		eventBus: eventBus,
		log:      log,
	}
}

// Chat classifies the message, renders a reply and records the turn.
// Turns on the same session id run one at a time.
func (s *Service) Chat(ctx context.Context, req transport.ChatRequest) (transport.ChatResponse, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return transport.ChatResponse{}, err
	}
	if !ok {
		session = sessions.New(sessionID)
	}

	msg := strings.ToLower(req.Message)
	in := domain.ReplyInput{
		Intent:     domain.Classify(msg),
		LastIntent: domain.Intent(session.LastIntent),
	}

	in.Pipeline, err = s.pipeline.Snapshot(ctx)
	if err != nil {
		return transport.ChatResponse{}, err
	}
	if in.Intent == domain.IntentLeadsFocus {
		in.TopLeads, err = s.leads.TopLeads(ctx, topLeadsLimit)
		if err != nil {
			return transport.ChatResponse{}, err
		}
		if len(in.TopLeads) > 0 {
			session.Context[sessions.ContextTopLeadID] = in.TopLeads[0].ID
		}
	}

	reply := domain.Respond(in)
	stored := domain.StoredIntent(in.Intent)

	session.History = append(session.History, sessions.Turn{User: msg, Bot: reply.Text})
	session.LastIntent = string(stored)
	if err := s.store.Put(ctx, session); err != nil {
		return transport.ChatResponse{}, err
	}

	s.log.WithContext(ctx).ChatTurn(sessionID, string(in.Intent), len(session.History))
	s.eventBus.Publish(ctx, events.ChatTurnCompleted{
		BaseEvent:  events.NewBaseEvent(),
		SessionID:  sessionID,
		Intent:     string(in.Intent),
		HistoryLen: len(session.History),
	})

	return transport.ChatResponse{
		Reply:       reply.Text,
		FollowUp:    reply.FollowUp,
		Suggestions: reply.Suggestions,
	}, nil
}

// Session returns the stored conversation for id.
func (s *Service) Session(ctx context.Context, id string) (transport.SessionResponse, error) {
	session, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return transport.SessionResponse{}, err
	}
	if !ok {
		return transport.SessionResponse{}, apperr.NotFound(fmt.Sprintf("Session %s not found", id))
	}

	history := make([]transport.TurnResponse, 0, len(session.History))
	for _, turn := range session.History {
		history = append(history, transport.TurnResponse{User: turn.User, Bot: turn.Bot})
	}
	return transport.SessionResponse{
		SessionID:  session.ID,
		LastIntent: session.LastIntent,
		History:    history,
		Context:    session.Context,
	}, nil
}
