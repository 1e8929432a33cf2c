package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Invitation metrics
var (
	// InvitationsIssuedTotal tracks issued invitations by scope and role
	InvitationsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitations_issued_total",
			Help: "Total number of invitations issued by scope and role",
		},
		[]string{"scope", "role"},
	)

	// InvitationAcceptsTotal tracks acceptance attempts by outcome
	InvitationAcceptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_accepts_total",
			Help: "Total number of invitation acceptance attempts by outcome",
		},
		[]string{"outcome"}, // "accepted", "invalid_token", "not_pending", "expired", "email_mismatch", "error"
	)

	// InvitationAcceptDuration tracks acceptance transaction duration
	InvitationAcceptDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "invitation_accept_duration_seconds",
			Help:    "Invitation acceptance duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

// Agency metrics
var (
	// AgenciesCreatedTotal tracks agency creations
	AgenciesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agencies_created_total",
			Help: "Total number of agencies created",
		},
	)

	// MembershipsCreatedTotal tracks memberships created by scope
	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberships_created_total",
			Help: "Total number of memberships created by scope",
		},
		[]string{"scope"}, // "agency", "project"
	)
)

// Email job metrics
var (
	// InvitationEmailsEnqueuedTotal tracks enqueued invitation email jobs
	InvitationEmailsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invitation_emails_enqueued_total",
			Help: "Total number of invitation email jobs enqueued",
		},
	)

	// InvitationEmailsProcessedTotal tracks processed email jobs by status
	InvitationEmailsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_emails_processed_total",
			Help: "Total number of invitation email jobs processed by status",
		},
		[]string{"status"}, // "sent", "failed", "skipped"
	)
)
