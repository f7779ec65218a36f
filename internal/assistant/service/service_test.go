package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"salesspark_backend/internal/assistant/domain"
	"salesspark_backend/internal/assistant/sessions"
	"salesspark_backend/internal/assistant/transport"
	"salesspark_backend/internal/events"
	leaddomain "salesspark_backend/internal/leads/domain"
	"salesspark_backend/platform/apperr"
	"salesspark_backend/platform/logger"
)

type fakePipeline struct {
	snapshot leaddomain.PipelineSnapshot
	err      error
}

func (f fakePipeline) Snapshot(context.Context) (leaddomain.PipelineSnapshot, error) {
	return f.snapshot, f.err
}

type fakeLeads struct {
	leads []domain.TopLead
}

func (f fakeLeads) TopLeads(_ context.Context, n int) ([]domain.TopLead, error) {
	if len(f.leads) > n {
		return f.leads[:n], nil
	}
	return f.leads, nil
}

type captureBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *captureBus) Publish(_ context.Context, e events.Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

func (b *captureBus) PublishSync(ctx context.Context, e events.Event) error {
	b.Publish(ctx, e)
	return nil
}

func (b *captureBus) Subscribe(string, events.Handler) {}

func newService(store sessions.Store, snapshot leaddomain.PipelineSnapshot, top []domain.TopLead) (*Service, *captureBus) {
	bus := &captureBus{}
	return New(store, fakePipeline{snapshot: snapshot}, fakeLeads{leads: top}, bus, logger.Discard()), bus
}

func chat(t *testing.T, svc *Service, sessionID, message string) transport.ChatResponse {
	t.Helper()
	resp, err := svc.Chat(context.Background(), transport.ChatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		t.Fatalf("chat %q: %v", message, err)
	}
	return resp
}

func TestWhyAfterPipelineHealthReferencesHotTarget(t *testing.T) {
	store := sessions.NewMemoryStore()
	svc, _ := newService(store, leaddomain.NewPipelineSnapshot(6, 0, 2, 1, 40), nil)

	first := chat(t, svc, "s1", "How is my pipeline?")
	if !strings.Contains(first.Reply, "At Risk") {
		t.Fatalf("unexpected first reply %q", first.Reply)
	}

	second := chat(t, svc, "s1", "Why?")
	want := "I flagged the pipeline because 'Hot Leads' (Score > 80) are the strongest predictor of revenue. You currently have 0, and our target is at least 3."
	if second.Reply != want {
		t.Fatalf("unexpected why reply %q", second.Reply)
	}

	third := chat(t, svc, "s1", "why again")
	if !strings.HasPrefix(third.Reply, "I base my recommendations") {
		t.Fatalf("expected generic explanation after an explain turn, got %q", third.Reply)
	}

	session, err := svc.Session(context.Background(), "s1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(session.History) != 3 || session.History[0].User != "how is my pipeline?" {
		t.Fatalf("unexpected history %+v", session.History)
	}
	if session.LastIntent != string(domain.IntentGeneral) {
		t.Fatalf("expected general last intent, got %s", session.LastIntent)
	}
}

func TestLeadsFocusStoresTopLead(t *testing.T) {
	store := sessions.NewMemoryStore()
	top := []domain.TopLead{{ID: 11, Company: "Acme", Score: 100}, {ID: 3, Company: "Initech", Score: 70}}
	svc, bus := newService(store, leaddomain.NewPipelineSnapshot(2, 1, 0, 0, 65), top)

	resp := chat(t, svc, "", "Which leads should I prioritize?")
	if !strings.Contains(resp.Reply, "Lead #11 (Acme, 100/100), Lead #3 (Initech, 70/100)") {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}

	session, ok, err := store.Get(context.Background(), DefaultSessionID)
	if err != nil || !ok {
		t.Fatalf("expected default session, ok=%v err=%v", ok, err)
	}
	if session.Context[sessions.ContextTopLeadID] != 11 {
		t.Fatalf("expected top lead 11, got %v", session.Context)
	}

	if len(bus.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.events))
	}
	turn, ok := bus.events[0].(events.ChatTurnCompleted)
	if !ok || turn.Intent != string(domain.IntentLeadsFocus) || turn.HistoryLen != 1 {
		t.Fatalf("unexpected event %+v", bus.events[0])
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	svc, _ := newService(sessions.NewMemoryStore(), leaddomain.NewPipelineSnapshot(6, 0, 2, 1, 40), nil)

	chat(t, svc, "a", "pipeline status")
	resp := chat(t, svc, "b", "why")
	if !strings.HasPrefix(resp.Reply, "I base my recommendations") {
		t.Fatalf("session b must not see session a's intent, got %q", resp.Reply)
	}
}

func TestConcurrentTurnsKeepEveryMessage(t *testing.T) {
	store := sessions.NewMemoryStore()
	svc, _ := newService(store, leaddomain.NewPipelineSnapshot(1, 0, 0, 0, 30), nil)

	const turns = 50
	var wg sync.WaitGroup
	for i := range turns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Chat(context.Background(), transport.ChatRequest{Message: fmt.Sprintf("hello %d", i), SessionID: "shared"}); err != nil {
				t.Errorf("chat: %v", err)
			}
		}()
	}
	wg.Wait()

	session, _, err := store.Get(context.Background(), "shared")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(session.History) != turns {
		t.Fatalf("expected %d turns, got %d", turns, len(session.History))
	}
}

func TestSessionNotFound(t *testing.T) {
	svc, _ := newService(sessions.NewMemoryStore(), leaddomain.PipelineSnapshot{}, nil)

	_, err := svc.Session(context.Background(), "missing")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshotFailureLeavesSessionUntouched(t *testing.T) {
	store := sessions.NewMemoryStore()
	down := apperr.Unavailable("lead store unavailable", errors.New("dial"))
	svc := New(store, fakePipeline{err: down}, fakeLeads{}, &captureBus{}, logger.Discard())

	if _, err := svc.Chat(context.Background(), transport.ChatRequest{Message: "hi", SessionID: "x"}); !errors.Is(err, down) {
		t.Fatalf("expected snapshot error, got %v", err)
	}
	if _, ok, _ := store.Get(context.Background(), "x"); ok {
		t.Fatal("failed turn must not create a session")
	}
}
