// Package email sends transactional mail over SMTP and renders the
// invitation and welcome templates.
package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned when SMTP is not configured.
	ErrNotConfigured = errors.New("email: SMTP not configured")
	// ErrInvalidRecipient is returned when the recipient email is invalid.
	ErrInvalidRecipient = errors.New("email: invalid recipient email")
	// ErrSendFailed is returned when email sending fails.
	ErrSendFailed = errors.New("email: failed to send email")
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	TLS      bool
	Timeout  time.Duration
}

// Message represents an email message.
type Message struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Sender is what the email service depends on; SMTPSender is the real
// implementation and NoOpSender stands in when mail is not configured.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	SendTemplate(ctx context.Context, to string, template Template, data any) error
	IsConfigured() bool
}

// SMTPSender implements Sender using SMTP.
type SMTPSender struct {
	config    Config
	templates *TemplateEngine
}

// NewSMTPSender creates a new SMTP sender.
func NewSMTPSender(cfg Config) *SMTPSender {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPSender{
		config:    cfg,
		templates: NewTemplateEngine(),
	}
}

// IsConfigured returns true if SMTP is properly configured.
func (s *SMTPSender) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port > 0 && s.config.From != ""
}

// Send sends an email message.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	if len(msg.To) == 0 {
		return ErrInvalidRecipient
	}

	content := s.buildMessage(msg)

	if err := s.sendSMTP(ctx, msg.To, content); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// SendTemplate sends an email using a predefined template.
func (s *SMTPSender) SendTemplate(ctx context.Context, to string, template Template, data any) error {
	if to == "" {
		return ErrInvalidRecipient
	}

	subject, body, err := s.templates.Render(template, data)
	if err != nil {
		return fmt.Errorf("email: failed to render template: %w", err)
	}

	return s.Send(ctx, &Message{
		To:      []string{to},
		Subject: subject,
		Body:    body,
		IsHTML:  true,
	})
}

func (s *SMTPSender) buildMessage(msg *Message) []byte {
	var builder strings.Builder

	if s.config.FromName != "" {
		builder.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	} else {
		builder.WriteString(fmt.Sprintf("From: %s\r\n", s.config.From))
	}

	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))

	builder.WriteString("MIME-Version: 1.0\r\n")
	if msg.IsHTML {
		builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	} else {
		builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	}

	builder.WriteString("\r\n")
	builder.WriteString(msg.Body)

	return []byte(builder.String())
}

func (s *SMTPSender) sendSMTP(ctx context.Context, to []string, content []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	dialer := &net.Dialer{Timeout: s.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	if s.config.TLS {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.config.User != "" && s.config.Password != "" {
		auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}

// NoOpSender silently accepts every message. Used in development so
// invitation flows work without an SMTP server.
type NoOpSender struct{}

func NewNoOpSender() *NoOpSender {
	return &NoOpSender{}
}

// IsConfigured reports true so callers do not branch into error paths.
func (s *NoOpSender) IsConfigured() bool {
	return true
}

func (s *NoOpSender) Send(_ context.Context, _ *Message) error {
	return nil
}

func (s *NoOpSender) SendTemplate(_ context.Context, _ string, _ Template, _ any) error {
	return nil
}
