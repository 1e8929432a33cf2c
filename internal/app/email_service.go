package app

import (
	"context"
	"fmt"
	"time"

	"github.com/campaignhub/api/internal/config"
	"github.com/campaignhub/api/pkg/email"
	"github.com/campaignhub/api/pkg/logger"
)

// EmailService sends transactional emails.
type EmailService struct {
	sender  email.Sender
	config  config.EmailConfig
	appName string
	logger  *logger.Logger
}

// NewEmailService creates a new EmailService.
func NewEmailService(sender email.Sender, cfg config.EmailConfig, appName string, log *logger.Logger) *EmailService {
	return &EmailService{
		sender:  sender,
		config:  cfg,
		appName: appName,
		logger:  log.With("service", "email"),
	}
}

// IsConfigured returns true if email service is properly configured.
func (s *EmailService) IsConfigured() bool {
	return s.sender != nil && s.sender.IsConfigured()
}

// SendInvitationEmail sends an invitation link to the invitee. The plaintext
// token rides in the URL; it is never persisted.
func (s *EmailService) SendInvitationEmail(ctx context.Context, recipientEmail, inviterName, resourceName, scope, role, plainToken string, expiresIn time.Duration) error {
	if !s.IsConfigured() {
		s.logger.Warn("email service not configured, skipping invitation email",
			"email", recipientEmail,
		)
		return nil
	}

	invitationURL := fmt.Sprintf("%s/invitations/accept?token=%s", s.config.BaseURL, plainToken)

	tmpl := email.TemplateAgencyInvitation
	if scope == "project" {
		tmpl = email.TemplateProjectInvitation
	}

	data := email.InvitationData{
		InviterName:   inviterName,
		ResourceName:  resourceName,
		Role:          role,
		InvitationURL: invitationURL,
		ExpiresIn:     formatDuration(expiresIn),
		AppName:       s.appName,
	}

	if err := s.sender.SendTemplate(ctx, recipientEmail, tmpl, data); err != nil {
		s.logger.Error("failed to send invitation email",
			"email", recipientEmail,
			"error", err,
		)
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	s.logger.Info("invitation email sent",
		"email", recipientEmail,
		"scope", scope,
	)
	return nil
}

// SendWelcomeEmail sends a welcome email to a new user.
func (s *EmailService) SendWelcomeEmail(ctx context.Context, userEmail, userName string) error {
	if !s.IsConfigured() {
		s.logger.Warn("email service not configured, skipping welcome email",
			"email", userEmail,
		)
		return nil
	}

	data := email.WelcomeData{
		UserName: userName,
		Email:    userEmail,
		LoginURL: fmt.Sprintf("%s/login", s.config.BaseURL),
		AppName:  s.appName,
	}

	if err := s.sender.SendTemplate(ctx, userEmail, email.TemplateWelcome, data); err != nil {
		s.logger.Error("failed to send welcome email",
			"email", userEmail,
			"error", err,
		)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	s.logger.Info("welcome email sent", "email", userEmail)
	return nil
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d >= 24*time.Hour {
		days := int(d.Hours() / 24)
		if days == 1 {
			return "24 hours"
		}
		return fmt.Sprintf("%d days", days)
	}
	if d >= time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	if d >= time.Minute {
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.String()
}
