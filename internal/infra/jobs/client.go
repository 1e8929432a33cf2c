package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/campaignhub/api/internal/app"
	"github.com/campaignhub/api/pkg/logger"
)

// Client manages enqueueing background jobs using Asynq.
type Client struct {
	client *asynq.Client
	logger *logger.Logger
}

// ClientConfig contains configuration for the job client.
type ClientConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewClient creates a new job client for enqueueing tasks.
func NewClient(cfg ClientConfig, log *logger.Logger) (*Client, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	client := asynq.NewClient(redisOpt)

	return &Client{
		client: client,
		logger: log.With("component", "job_client"),
	}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueInvitationEmail enqueues an invitation email job.
func (c *Client) EnqueueInvitationEmail(ctx context.Context, payload app.InvitationJobPayload) error {
	task, err := NewInvitationEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error("failed to enqueue invitation email",
			"email", payload.RecipientEmail,
			"error", err,
		)
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	c.logger.Info("invitation email queued",
		"task_id", info.ID,
		"email", payload.RecipientEmail,
		"queue", info.Queue,
	)
	return nil
}

// EnqueueWelcomeEmail enqueues a welcome email job.
func (c *Client) EnqueueWelcomeEmail(ctx context.Context, payload app.WelcomeJobPayload) error {
	task, err := NewWelcomeEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error("failed to enqueue welcome email",
			"email", payload.UserEmail,
			"error", err,
		)
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	c.logger.Info("welcome email queued",
		"task_id", info.ID,
		"email", payload.UserEmail,
		"queue", info.Queue,
	)
	return nil
}
