// Package jobs provides background job definitions and handlers using Asynq.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/internal/metrics"
	"github.com/campaignhub/api/pkg/logger"
)

// Task types for email jobs
const (
	TypeEmailInvitation = "email:invitation"
	TypeEmailWelcome    = "email:welcome"
)

// invitationEmailPayload is the wire form of an invitation email job.
type invitationEmailPayload struct {
	RecipientEmail string        `json:"recipient_email"`
	InviterName    string        `json:"inviter_name"`
	ResourceName   string        `json:"resource_name"`
	Scope          string        `json:"scope"`
	Role           string        `json:"role"`
	Token          string        `json:"token"`
	ExpiresIn      time.Duration `json:"expires_in"`
	InvitationID   string        `json:"invitation_id"`
}

// welcomeEmailPayload is the wire form of a welcome email job.
type welcomeEmailPayload struct {
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
	UserID    string `json:"user_id"`
}

// NewInvitationEmailTask creates a new invitation email task.
func NewInvitationEmailTask(payload app.InvitationJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(invitationEmailPayload{
		RecipientEmail: payload.RecipientEmail,
		InviterName:    payload.InviterName,
		ResourceName:   payload.ResourceName,
		Scope:          payload.Scope,
		Role:           payload.Role,
		Token:          payload.Token,
		ExpiresIn:      payload.ExpiresIn,
		InvitationID:   payload.InvitationID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invitation email payload: %w", err)
	}
	return asynq.NewTask(
		TypeEmailInvitation,
		data,
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
		asynq.Queue("email"),
	), nil
}

// NewWelcomeEmailTask creates a new welcome email task.
func NewWelcomeEmailTask(payload app.WelcomeJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(welcomeEmailPayload{
		UserEmail: payload.UserEmail,
		UserName:  payload.UserName,
		UserID:    payload.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal welcome email payload: %w", err)
	}
	return asynq.NewTask(
		TypeEmailWelcome,
		data,
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
		asynq.Queue("email"),
	), nil
}

// EmailTaskHandler handles email task processing.
type EmailTaskHandler struct {
	emailService *app.EmailService
	logger       *logger.Logger
}

// NewEmailTaskHandler creates a new email task handler.
func NewEmailTaskHandler(emailService *app.EmailService, log *logger.Logger) *EmailTaskHandler {
	return &EmailTaskHandler{
		emailService: emailService,
		logger:       log.With("handler", "email_tasks"),
	}
}

// HandleInvitationEmail processes invitation email tasks.
func (h *EmailTaskHandler) HandleInvitationEmail(ctx context.Context, t *asynq.Task) error {
	var payload invitationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	h.logger.Info("processing invitation email",
		"email", payload.RecipientEmail,
		"invitation_id", payload.InvitationID,
	)

	if !h.emailService.IsConfigured() {
		metrics.InvitationEmailsProcessedTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	err := h.emailService.SendInvitationEmail(
		ctx,
		payload.RecipientEmail,
		payload.InviterName,
		payload.ResourceName,
		payload.Scope,
		payload.Role,
		payload.Token,
		payload.ExpiresIn,
	)
	if err != nil {
		metrics.InvitationEmailsProcessedTotal.WithLabelValues("failed").Inc()
		h.logger.Error("failed to send invitation email",
			"email", payload.RecipientEmail,
			"invitation_id", payload.InvitationID,
			"error", err,
		)
		return err
	}

	metrics.InvitationEmailsProcessedTotal.WithLabelValues("sent").Inc()
	h.logger.Info("invitation email sent",
		"email", payload.RecipientEmail,
		"invitation_id", payload.InvitationID,
	)
	return nil
}

// HandleWelcomeEmail processes welcome email tasks.
func (h *EmailTaskHandler) HandleWelcomeEmail(ctx context.Context, t *asynq.Task) error {
	var payload welcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	h.logger.Info("processing welcome email",
		"email", payload.UserEmail,
		"user_id", payload.UserID,
	)

	if err := h.emailService.SendWelcomeEmail(ctx, payload.UserEmail, payload.UserName); err != nil {
		h.logger.Error("failed to send welcome email",
			"email", payload.UserEmail,
			"error", err,
		)
		return err
	}

	return nil
}
