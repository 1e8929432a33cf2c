package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/project"
	"github.com/campaignhub/api/pkg/domain/shared"
)

// ProjectRepository implements project.Repository using PostgreSQL.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, agency_id, client_id, name, status, start_date, end_date, created_at, updated_at`

// Create persists a new project.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, agency_id, client_id, name, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID().String(),
		p.AgencyID().String(),
		p.ClientID().String(),
		p.Name(),
		p.Status().String(),
		nullTime(p.StartDate()),
		nullTime(p.EndDate()),
		p.CreatedAt(),
		p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project within an agency scope.
func (r *ProjectRepository) GetByID(ctx context.Context, agencyID, id shared.ID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 AND id = $2`
	return r.scanProject(r.db.QueryRowContext(ctx, query, agencyID.String(), id.String()))
}

// Lookup retrieves a project by ID alone.
func (r *ProjectRepository) Lookup(ctx context.Context, id shared.ID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id.String()))
}

// ListByAgency lists all projects in an agency.
func (r *ProjectRepository) ListByAgency(ctx context.Context, agencyID shared.ID) ([]*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 ORDER BY created_at DESC`
	return r.queryProjects(ctx, query, agencyID.String())
}

// ListByClient lists projects for a client within an agency.
func (r *ProjectRepository) ListByClient(ctx context.Context, agencyID, clientID shared.ID) ([]*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	return r.queryProjects(ctx, query, agencyID.String(), clientID.String())
}

// Update updates an existing project.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = $3, status = $4, start_date = $5, end_date = $6, updated_at = $7
		WHERE agency_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query,
		p.AgencyID().String(),
		p.ID().String(),
		p.Name(),
		p.Status().String(),
		nullTime(p.StartDate()),
		nullTime(p.EndDate()),
		p.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// Delete removes a project within an agency scope.
func (r *ProjectRepository) Delete(ctx context.Context, agencyID, id shared.ID) error {
	query := `DELETE FROM projects WHERE agency_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, agencyID.String(), id.String())
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		var (
			idStr, agencyIDStr, clientIDStr, name, statusStr string
			startDate, endDate                               sql.NullTime
			createdAt, updatedAt                             time.Time
		)
		if err := rows.Scan(&idStr, &agencyIDStr, &clientIDStr, &name, &statusStr, &startDate, &endDate, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, reconstituteProject(idStr, agencyIDStr, clientIDStr, name, statusStr, startDate, endDate, createdAt, updatedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepository) scanProject(row *sql.Row) (*project.Project, error) {
	var (
		idStr, agencyIDStr, clientIDStr, name, statusStr string
		startDate, endDate                               sql.NullTime
		createdAt, updatedAt                             time.Time
	)

	err := row.Scan(&idStr, &agencyIDStr, &clientIDStr, &name, &statusStr, &startDate, &endDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	return reconstituteProject(idStr, agencyIDStr, clientIDStr, name, statusStr, startDate, endDate, createdAt, updatedAt), nil
}

func reconstituteProject(
	idStr, agencyIDStr, clientIDStr, name, statusStr string,
	startDate, endDate sql.NullTime,
	createdAt, updatedAt time.Time,
) *project.Project {
	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)
	clientID, _ := shared.IDFromString(clientIDStr)

	return project.Reconstitute(
		id, agencyID, clientID,
		name,
		project.Status(statusStr),
		nullTimeValue(startDate),
		nullTimeValue(endDate),
		createdAt,
		updatedAt,
	)
}
