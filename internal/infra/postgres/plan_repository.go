package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/campaignhub/api/pkg/domain/plan"
	"github.com/campaignhub/api/pkg/domain/shared"
)

// PlanRepository implements plan.Repository using PostgreSQL.
type PlanRepository struct {
	db *DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *DB) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, agency_id, project_id, goals, themes, events, num_posts, num_reels, split_percent, meeting_notes, created_at, updated_at`

// Create persists a new campaign plan.
func (r *PlanRepository) Create(ctx context.Context, p *plan.CampaignPlan) error {
	query := `
		INSERT INTO campaign_plans (id, agency_id, project_id, goals, themes, events, num_posts, num_reels, split_percent, meeting_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID().String(),
		p.AgencyID().String(),
		p.ProjectID().String(),
		pq.Array(p.Goals()),
		pq.Array(p.Themes()),
		pq.Array(p.Events()),
		p.NumPosts(),
		p.NumReels(),
		p.SplitPercent(),
		p.MeetingNotes(),
		p.CreatedAt(),
		p.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project already has a campaign plan", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create campaign plan: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign plan within an agency scope.
func (r *PlanRepository) GetByID(ctx context.Context, agencyID, id shared.ID) (*plan.CampaignPlan, error) {
	query := `SELECT ` + planColumns + ` FROM campaign_plans WHERE agency_id = $1 AND id = $2`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, agencyID.String(), id.String()))
}

// GetByProject retrieves the campaign plan for a project.
func (r *PlanRepository) GetByProject(ctx context.Context, agencyID, projectID shared.ID) (*plan.CampaignPlan, error) {
	query := `SELECT ` + planColumns + ` FROM campaign_plans WHERE agency_id = $1 AND project_id = $2`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, agencyID.String(), projectID.String()))
}

// ListByAgency lists all campaign plans in an agency.
func (r *PlanRepository) ListByAgency(ctx context.Context, agencyID shared.ID) ([]*plan.CampaignPlan, error) {
	query := `SELECT ` + planColumns + ` FROM campaign_plans WHERE agency_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, agencyID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign plans: %w", err)
	}
	defer rows.Close()

	var plans []*plan.CampaignPlan
	for rows.Next() {
		var (
			idStr, agencyIDStr, projectIDStr  string
			goals, themes, events             pq.StringArray
			numPosts, numReels, splitPercent  int
			meetingNotes                      string
			createdAt, updatedAt              time.Time
		)
		if err := rows.Scan(&idStr, &agencyIDStr, &projectIDStr, &goals, &themes, &events, &numPosts, &numReels, &splitPercent, &meetingNotes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign plan: %w", err)
		}
		plans = append(plans, reconstitutePlan(idStr, agencyIDStr, projectIDStr, goals, themes, events, numPosts, numReels, splitPercent, meetingNotes, createdAt, updatedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaign plans: %w", err)
	}

	return plans, nil
}

// Update updates an existing campaign plan.
func (r *PlanRepository) Update(ctx context.Context, p *plan.CampaignPlan) error {
	query := `
		UPDATE campaign_plans
		SET goals = $3, themes = $4, events = $5, num_posts = $6, num_reels = $7, split_percent = $8, meeting_notes = $9, updated_at = $10
		WHERE agency_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query,
		p.AgencyID().String(),
		p.ID().String(),
		pq.Array(p.Goals()),
		pq.Array(p.Themes()),
		pq.Array(p.Events()),
		p.NumPosts(),
		p.NumReels(),
		p.SplitPercent(),
		p.MeetingNotes(),
		p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign plan: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// Delete removes a campaign plan within an agency scope.
func (r *PlanRepository) Delete(ctx context.Context, agencyID, id shared.ID) error {
	query := `DELETE FROM campaign_plans WHERE agency_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, agencyID.String(), id.String())
	if err != nil {
		return fmt.Errorf("failed to delete campaign plan: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

func (r *PlanRepository) scanPlan(row *sql.Row) (*plan.CampaignPlan, error) {
	var (
		idStr, agencyIDStr, projectIDStr string
		goals, themes, events            pq.StringArray
		numPosts, numReels, splitPercent int
		meetingNotes                     string
		createdAt, updatedAt             time.Time
	)

	err := row.Scan(&idStr, &agencyIDStr, &projectIDStr, &goals, &themes, &events, &numPosts, &numReels, &splitPercent, &meetingNotes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan campaign plan: %w", err)
	}

	return reconstitutePlan(idStr, agencyIDStr, projectIDStr, goals, themes, events, numPosts, numReels, splitPercent, meetingNotes, createdAt, updatedAt), nil
}

func reconstitutePlan(
	idStr, agencyIDStr, projectIDStr string,
	goals, themes, events []string,
	numPosts, numReels, splitPercent int,
	meetingNotes string,
	createdAt, updatedAt time.Time,
) *plan.CampaignPlan {
	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)
	projectID, _ := shared.IDFromString(projectIDStr)

	return plan.Reconstitute(id, agencyID, projectID, plan.Fields{
		Goals:        goals,
		Themes:       themes,
		Events:       events,
		NumPosts:     numPosts,
		NumReels:     numReels,
		SplitPercent: splitPercent,
		MeetingNotes: meetingNotes,
	}, createdAt, updatedAt)
}
