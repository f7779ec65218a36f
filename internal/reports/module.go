// Package reports delivers generated weekly reports by email and archives
// them in object storage.
package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"salesspark_backend/internal/events"
	"salesspark_backend/platform/logger"

	"github.com/google/uuid"
)

// Module reacts to WeeklyReportGenerated events.
type Module struct {
	sender    Sender
	recipient string
	archive   Archive
	newID     func() string
	log       *logger.Logger
}

// New wires report delivery. An empty recipient skips email and a nil
// archive skips archiving.
func New(sender Sender, recipient string, archive Archive, log *logger.Logger) *Module {
	if sender == nil {
		sender = NoopSender{}
	}
	return &Module{
		sender:    sender,
		recipient: recipient,
		archive:   archive,
		newID:     func() string { return uuid.NewString() },
		log:       log,
	}
}

func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.WeeklyReportGenerated{}.EventName(), m)
}

func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.WeeklyReportGenerated:
		return m.handleWeeklyReport(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleWeeklyReport(ctx context.Context, e events.WeeklyReportGenerated) error {
	var errs []error

	if m.recipient != "" {
		if err := m.email(ctx, e); err != nil {
			m.log.Error("weekly report email failed", "week", e.Week, "error", err)
			errs = append(errs, err)
		}
	}

	if m.archive != nil {
		key, err := m.store(ctx, e)
		if err != nil {
			m.log.Error("weekly report archive failed", "week", e.Week, "error", err)
			errs = append(errs, err)
		} else {
			m.log.Info("weekly report archived", "week", e.Week, "key", key)
		}
	}

	return errors.Join(errs...)
}

func (m *Module) email(ctx context.Context, e events.WeeklyReportGenerated) error {
	content, err := renderWeeklyReport(e)
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, m.recipient, weeklySubject(e), content)
}

func (m *Module) store(ctx context.Context, e events.WeeklyReportGenerated) (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encode weekly report: %w", err)
	}
	key := archiveKey(e, m.newID())
	return key, m.archive.Store(ctx, key, data)
}

// archiveKey is weekly/<date>-<first 8 chars of id>.json.
func archiveKey(e events.WeeklyReportGenerated, id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("weekly/%s-%s.json", e.GeneratedAt.Format("2006-01-02"), id)
}
