package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignhub/api/internal/config"
	"github.com/campaignhub/api/pkg/email"
	"github.com/campaignhub/api/pkg/logger"
)

// recordingSender captures templated sends for assertions.
type recordingSender struct {
	to       []string
	template []email.Template
	data     []any
}

func (r *recordingSender) Send(_ context.Context, _ *email.Message) error { return nil }

func (r *recordingSender) SendTemplate(_ context.Context, to string, tmpl email.Template, data any) error {
	r.to = append(r.to, to)
	r.template = append(r.template, tmpl)
	r.data = append(r.data, data)
	return nil
}

func (r *recordingSender) IsConfigured() bool { return true }

func emailCfg() config.EmailConfig {
	return config.EmailConfig{
		Enabled: true,
		BaseURL: "https://app.campaignhub.test",
		From:    "no-reply@campaignhub.test",
	}
}

func TestEmailService_SendInvitationEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("agency invitation uses agency template", func(t *testing.T) {
		sender := &recordingSender{}
		svc := NewEmailService(sender, emailCfg(), "CampaignHub", logger.NewNop())

		err := svc.SendInvitationEmail(ctx, "invitee@example.com", "Jordan", "Bright Ideas", "agency", "TEAM", "plain-token", 7*24*time.Hour)

		require.NoError(t, err)
		require.Len(t, sender.template, 1)
		assert.Equal(t, email.TemplateAgencyInvitation, sender.template[0])
		assert.Equal(t, "invitee@example.com", sender.to[0])

		data, ok := sender.data[0].(email.InvitationData)
		require.True(t, ok)
		assert.True(t, strings.Contains(data.InvitationURL, "token=plain-token"),
			"invitation URL should carry the plaintext token: %s", data.InvitationURL)
		assert.Equal(t, "7 days", data.ExpiresIn)
	})

	t.Run("project invitation uses project template", func(t *testing.T) {
		sender := &recordingSender{}
		svc := NewEmailService(sender, emailCfg(), "CampaignHub", logger.NewNop())

		err := svc.SendInvitationEmail(ctx, "invitee@example.com", "Jordan", "Summer Launch", "project", "CLIENT", "plain-token", time.Hour)

		require.NoError(t, err)
		require.Len(t, sender.template, 1)
		assert.Equal(t, email.TemplateProjectInvitation, sender.template[0])
	})

	t.Run("no-op sender succeeds without sending", func(t *testing.T) {
		svc := NewEmailService(email.NewNoOpSender(), emailCfg(), "CampaignHub", logger.NewNop())

		err := svc.SendInvitationEmail(ctx, "invitee@example.com", "Jordan", "Bright Ideas", "agency", "TEAM", "plain-token", time.Hour)
		assert.NoError(t, err)
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{7 * 24 * time.Hour, "7 days"},
		{24 * time.Hour, "24 hours"},
		{2 * time.Hour, "2 hours"},
		{time.Hour, "1 hour"},
		{30 * time.Minute, "30 minutes"},
		{time.Minute, "1 minute"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
