package reports

import (
	"context"
	"fmt"
	"time"

	"salesspark_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers a rendered HTML report.
type Sender interface {
	Send(ctx context.Context, toEmail, subject, htmlContent string) error
}

type NoopSender struct{}

func (NoopSender) Send(context.Context, string, string, string) error {
	return nil
}

// SMTPSender delivers reports over a direct SMTP connection.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
}

// NewSender returns an SMTPSender when report email is configured and a
// NoopSender otherwise.
func NewSender(cfg config.SMTPConfig) Sender {
	if !cfg.IsReportEmailEnabled() {
		return NoopSender{}
	}
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromEmail: cfg.GetSMTPFrom(),
	}
}

func (s *SMTPSender) Send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat("SalesSpark", s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
