package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
)

// TenantRepository implements tenant.Repository using PostgreSQL.
type TenantRepository struct {
	db *DB
}

// NewTenantRepository creates a new TenantRepository.
func NewTenantRepository(db *DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// =============================================================================
// Agency CRUD
// =============================================================================

// Create persists a new agency.
func (r *TenantRepository) Create(ctx context.Context, a *tenant.Agency) error {
	settings, err := toJSONB(a.Settings())
	if err != nil {
		return fmt.Errorf("failed to marshal agency settings: %w", err)
	}

	query := `
		INSERT INTO agencies (id, name, slug, settings, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID().String(),
		a.Name(),
		a.Slug(),
		settings,
		a.CreatedBy().String(),
		a.CreatedAt(),
		a.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: agency slug already taken", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create agency: %w", err)
	}

	return nil
}

// GetByID retrieves an agency by ID.
func (r *TenantRepository) GetByID(ctx context.Context, id shared.ID) (*tenant.Agency, error) {
	query := `
		SELECT id, name, slug, settings, created_by, created_at, updated_at
		FROM agencies
		WHERE id = $1
	`

	return r.scanAgency(r.db.QueryRowContext(ctx, query, id.String()))
}

// GetBySlug retrieves an agency by slug.
func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Agency, error) {
	query := `
		SELECT id, name, slug, settings, created_by, created_at, updated_at
		FROM agencies
		WHERE slug = $1
	`

	return r.scanAgency(r.db.QueryRowContext(ctx, query, slug))
}

// Update updates an existing agency.
func (r *TenantRepository) Update(ctx context.Context, a *tenant.Agency) error {
	settings, err := toJSONB(a.Settings())
	if err != nil {
		return fmt.Errorf("failed to marshal agency settings: %w", err)
	}

	query := `
		UPDATE agencies
		SET name = $2, slug = $3, settings = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ID().String(),
		a.Name(),
		a.Slug(),
		settings,
		a.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update agency: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// ExistsBySlug checks if an agency with the given slug exists.
func (r *TenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM agencies WHERE slug = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

// CreateAgencyTx atomically creates the agency, the founding membership, and
// the founder's primary tenant context. The slug unique constraint aborts
// the whole transaction on conflict, so a duplicate slug persists nothing.
func (r *TenantRepository) CreateAgencyTx(ctx context.Context, a *tenant.Agency, owner *tenant.Membership) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		settings, err := toJSONB(a.Settings())
		if err != nil {
			return fmt.Errorf("failed to marshal agency settings: %w", err)
		}

		agencyQuery := `
			INSERT INTO agencies (id, name, slug, settings, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err = tx.ExecContext(ctx, agencyQuery,
			a.ID().String(),
			a.Name(),
			a.Slug(),
			settings,
			a.CreatedBy().String(),
			a.CreatedAt(),
			a.UpdatedAt(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: agency slug already taken", shared.ErrConflict)
			}
			return fmt.Errorf("failed to create agency: %w", err)
		}

		memberQuery := `
			INSERT INTO agency_memberships (id, agency_id, user_id, role, status, invited_by, joined_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err = tx.ExecContext(ctx, memberQuery,
			owner.ID().String(),
			owner.AgencyID().String(),
			owner.UserID().String(),
			owner.Role().String(),
			owner.Status().String(),
			nullID(owner.InvitedBy()),
			owner.JoinedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		userQuery := `
			UPDATE users
			SET primary_agency_id = $2, primary_role = $3, updated_at = $4
			WHERE id = $1
		`
		result, err := tx.ExecContext(ctx, userQuery,
			owner.UserID().String(),
			a.ID().String(),
			tenant.RoleOwner.String(),
			time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to set primary agency: %w", err)
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("%w: user", shared.ErrNotFound)
		}

		return nil
	})
}

// =============================================================================
// Membership Operations
// =============================================================================

// CreateMembership creates a new agency membership.
func (r *TenantRepository) CreateMembership(ctx context.Context, m *tenant.Membership) error {
	query := `
		INSERT INTO agency_memberships (id, agency_id, user_id, role, status, invited_by, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID().String(),
		m.AgencyID().String(),
		m.UserID().String(),
		m.Role().String(),
		m.Status().String(),
		nullID(m.InvitedBy()),
		m.JoinedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user is already a member", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

// GetMembership retrieves a membership by agency and user.
func (r *TenantRepository) GetMembership(ctx context.Context, agencyID, userID shared.ID) (*tenant.Membership, error) {
	query := `
		SELECT id, agency_id, user_id, role, status, invited_by, joined_at
		FROM agency_memberships
		WHERE agency_id = $1 AND user_id = $2
	`

	return r.scanMembership(r.db.QueryRowContext(ctx, query, agencyID.String(), userID.String()))
}

// ListMembersByAgency lists all memberships in an agency.
func (r *TenantRepository) ListMembersByAgency(ctx context.Context, agencyID shared.ID) ([]*tenant.Membership, error) {
	query := `
		SELECT id, agency_id, user_id, role, status, invited_by, joined_at
		FROM agency_memberships
		WHERE agency_id = $1
		ORDER BY joined_at
	`

	rows, err := r.db.QueryContext(ctx, query, agencyID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*tenant.Membership
	for rows.Next() {
		m, err := r.scanMembershipRows(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// ListMembersWithUserInfo lists agency memberships joined with user details.
func (r *TenantRepository) ListMembersWithUserInfo(ctx context.Context, agencyID shared.ID) ([]*tenant.MemberWithUser, error) {
	query := `
		SELECT m.id, m.user_id, m.role, m.status, m.invited_by, m.joined_at, u.email, u.name
		FROM agency_memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.agency_id = $1
		ORDER BY m.joined_at
	`

	rows, err := r.db.QueryContext(ctx, query, agencyID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list members with user info: %w", err)
	}
	defer rows.Close()

	var members []*tenant.MemberWithUser
	for rows.Next() {
		var (
			idStr, userIDStr, roleStr, statusStr string
			invitedBy                            sql.NullString
			joinedAt                             time.Time
			email, name                          string
		)
		if err := rows.Scan(&idStr, &userIDStr, &roleStr, &statusStr, &invitedBy, &joinedAt, &email, &name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}

		id, _ := shared.IDFromString(idStr)
		userID, _ := shared.IDFromString(userIDStr)

		members = append(members, &tenant.MemberWithUser{
			ID:        id,
			UserID:    userID,
			Role:      tenant.Role(roleStr),
			Status:    tenant.MembershipStatus(statusStr),
			InvitedBy: parseNullID(invitedBy),
			JoinedAt:  joinedAt,
			Email:     email,
			Name:      name,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// CountMembersByAgency counts memberships in an agency.
func (r *TenantRepository) CountMembersByAgency(ctx context.Context, agencyID shared.ID) (int64, error) {
	query := `SELECT COUNT(*) FROM agency_memberships WHERE agency_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, agencyID.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

// CreateProjectMembership creates a new project membership.
func (r *TenantRepository) CreateProjectMembership(ctx context.Context, m *tenant.ProjectMembership) error {
	query := `
		INSERT INTO project_memberships (id, project_id, user_id, role, status, invited_by, invited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID().String(),
		m.ProjectID().String(),
		m.UserID().String(),
		m.Role().String(),
		m.Status().String(),
		nullID(m.InvitedBy()),
		m.InvitedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user is already a project member", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create project membership: %w", err)
	}

	return nil
}

// GetProjectMembership retrieves a project membership by project and user.
func (r *TenantRepository) GetProjectMembership(ctx context.Context, projectID, userID shared.ID) (*tenant.ProjectMembership, error) {
	query := `
		SELECT id, project_id, user_id, role, status, invited_by, invited_at
		FROM project_memberships
		WHERE project_id = $1 AND user_id = $2
	`

	return r.scanProjectMembership(r.db.QueryRowContext(ctx, query, projectID.String(), userID.String()))
}

// ListMembersByProject lists all memberships in a project.
func (r *TenantRepository) ListMembersByProject(ctx context.Context, projectID shared.ID) ([]*tenant.ProjectMembership, error) {
	query := `
		SELECT id, project_id, user_id, role, status, invited_by, invited_at
		FROM project_memberships
		WHERE project_id = $1
		ORDER BY invited_at
	`

	rows, err := r.db.QueryContext(ctx, query, projectID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []*tenant.ProjectMembership
	for rows.Next() {
		var (
			idStr, projectIDStr, userIDStr, roleStr, statusStr string
			invitedBy                                          sql.NullString
			invitedAt                                          time.Time
		)
		if err := rows.Scan(&idStr, &projectIDStr, &userIDStr, &roleStr, &statusStr, &invitedBy, &invitedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project membership: %w", err)
		}

		id, _ := shared.IDFromString(idStr)
		pid, _ := shared.IDFromString(projectIDStr)
		uid, _ := shared.IDFromString(userIDStr)

		members = append(members, tenant.ReconstituteProjectMembership(
			id, pid, uid,
			tenant.Role(roleStr),
			tenant.MembershipStatus(statusStr),
			parseNullID(invitedBy),
			invitedAt,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project members: %w", err)
	}

	return members, nil
}

// =============================================================================
// Invitation Operations
// =============================================================================

const invitationColumns = `id, email, role, scope, resource_id, token_hash, invited_by, status, expires_at, accepted_at, created_at`

// CreateInvitation persists a new invitation.
func (r *TenantRepository) CreateInvitation(ctx context.Context, inv *tenant.Invitation) error {
	query := `
		INSERT INTO invitations (id, email, role, scope, resource_id, token_hash, invited_by, status, expires_at, accepted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID().String(),
		inv.Email(),
		inv.Role().String(),
		inv.Scope().String(),
		inv.ResourceID().String(),
		inv.TokenHash(),
		inv.InvitedBy().String(),
		inv.Status().String(),
		inv.ExpiresAt(),
		nullTime(inv.AcceptedAt()),
		inv.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invitation already exists", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return nil
}

// GetInvitationByID retrieves an invitation by ID.
func (r *TenantRepository) GetInvitationByID(ctx context.Context, id shared.ID) (*tenant.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return r.scanInvitation(r.db.QueryRowContext(ctx, query, id.String()))
}

// GetInvitationByTokenHash retrieves an invitation by its keyed token hash.
func (r *TenantRepository) GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*tenant.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token_hash = $1`
	return r.scanInvitation(r.db.QueryRowContext(ctx, query, tokenHash))
}

// ListPendingInvitationsByResource lists pending invitations for a scope and
// resource.
func (r *TenantRepository) ListPendingInvitationsByResource(ctx context.Context, scope tenant.Scope, resourceID shared.ID) ([]*tenant.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE scope = $1 AND resource_id = $2 AND status = $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, scope.String(), resourceID.String(), tenant.InvitationPending.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*tenant.Invitation
	for rows.Next() {
		inv, err := r.scanInvitationRows(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}

	return invitations, nil
}

// AcceptInvitationTx flips the invitation to ACCEPTED and applies the
// membership grant in one transaction. The conditional UPDATE on
// status='PENDING' is the concurrency-control point: the first committer
// wins, every other concurrent acceptance matches zero rows and rolls back.
func (r *TenantRepository) AcceptInvitationTx(ctx context.Context, inv *tenant.Invitation, grant tenant.AcceptanceGrant) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		updateQuery := `
			UPDATE invitations
			SET status = $2, accepted_at = $3
			WHERE id = $1 AND status = $4
		`
		result, err := tx.ExecContext(ctx, updateQuery,
			inv.ID().String(),
			tenant.InvitationAccepted.String(),
			nullTime(inv.AcceptedAt()),
			tenant.InvitationPending.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}

		rows, _ := result.RowsAffected()
		if rows == 0 {
			return tenant.ErrInvitationNotPending
		}

		switch {
		case grant.AgencyMembership != nil:
			m := grant.AgencyMembership
			insertQuery := `
				INSERT INTO agency_memberships (id, agency_id, user_id, role, status, invited_by, joined_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`
			_, err = tx.ExecContext(ctx, insertQuery,
				m.ID().String(),
				m.AgencyID().String(),
				m.UserID().String(),
				m.Role().String(),
				m.Status().String(),
				nullID(m.InvitedBy()),
				m.JoinedAt(),
			)
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: user is already a member", shared.ErrConflict)
				}
				return fmt.Errorf("failed to create membership: %w", err)
			}
		case grant.ProjectMembership != nil:
			m := grant.ProjectMembership
			insertQuery := `
				INSERT INTO project_memberships (id, project_id, user_id, role, status, invited_by, invited_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`
			_, err = tx.ExecContext(ctx, insertQuery,
				m.ID().String(),
				m.ProjectID().String(),
				m.UserID().String(),
				m.Role().String(),
				m.Status().String(),
				nullID(m.InvitedBy()),
				m.InvitedAt(),
			)
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: user is already a project member", shared.ErrConflict)
				}
				return fmt.Errorf("failed to create project membership: %w", err)
			}
		default:
			return fmt.Errorf("%w: acceptance grant has no membership", shared.ErrInternal)
		}

		// Primary context: agency scope overwrites, project scope sets only
		// when unset. The WHERE clause keeps the set-if-unset atomic.
		userQuery := `
			UPDATE users
			SET primary_agency_id = $2, primary_role = $3, updated_at = $4
			WHERE id = $1
		`
		if !grant.OverwritePrimary {
			userQuery += ` AND primary_agency_id IS NULL`
		}

		_, err = tx.ExecContext(ctx, userQuery,
			grant.UserID.String(),
			grant.PrimaryAgencyID.String(),
			grant.PrimaryRole.String(),
			time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to update primary agency: %w", err)
		}

		return nil
	})
}

// =============================================================================
// Helper functions
// =============================================================================

func (r *TenantRepository) scanAgency(row *sql.Row) (*tenant.Agency, error) {
	var (
		idStr, name, slug, createdBy string
		settingsJSON                 []byte
		createdAt, updatedAt         time.Time
	)

	err := row.Scan(&idStr, &name, &slug, &settingsJSON, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan agency: %w", err)
	}

	var settings map[string]any
	if err := fromJSONB(settingsJSON, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal agency settings: %w", err)
	}

	id, _ := shared.IDFromString(idStr)
	creator, _ := shared.IDFromString(createdBy)

	return tenant.Reconstitute(id, name, slug, settings, creator, createdAt, updatedAt), nil
}

func (r *TenantRepository) scanMembership(row *sql.Row) (*tenant.Membership, error) {
	var (
		idStr, agencyIDStr, userIDStr, roleStr, statusStr string
		invitedBy                                         sql.NullString
		joinedAt                                          time.Time
	)

	err := row.Scan(&idStr, &agencyIDStr, &userIDStr, &roleStr, &statusStr, &invitedBy, &joinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan membership: %w", err)
	}

	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)
	userID, _ := shared.IDFromString(userIDStr)

	return tenant.ReconstituteMembership(
		id, agencyID, userID,
		tenant.Role(roleStr),
		tenant.MembershipStatus(statusStr),
		parseNullID(invitedBy),
		joinedAt,
	), nil
}

func (r *TenantRepository) scanMembershipRows(rows *sql.Rows) (*tenant.Membership, error) {
	var (
		idStr, agencyIDStr, userIDStr, roleStr, statusStr string
		invitedBy                                         sql.NullString
		joinedAt                                          time.Time
	)

	if err := rows.Scan(&idStr, &agencyIDStr, &userIDStr, &roleStr, &statusStr, &invitedBy, &joinedAt); err != nil {
		return nil, fmt.Errorf("failed to scan membership: %w", err)
	}

	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)
	userID, _ := shared.IDFromString(userIDStr)

	return tenant.ReconstituteMembership(
		id, agencyID, userID,
		tenant.Role(roleStr),
		tenant.MembershipStatus(statusStr),
		parseNullID(invitedBy),
		joinedAt,
	), nil
}

func (r *TenantRepository) scanProjectMembership(row *sql.Row) (*tenant.ProjectMembership, error) {
	var (
		idStr, projectIDStr, userIDStr, roleStr, statusStr string
		invitedBy                                          sql.NullString
		invitedAt                                          time.Time
	)

	err := row.Scan(&idStr, &projectIDStr, &userIDStr, &roleStr, &statusStr, &invitedBy, &invitedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project membership: %w", err)
	}

	id, _ := shared.IDFromString(idStr)
	projectID, _ := shared.IDFromString(projectIDStr)
	userID, _ := shared.IDFromString(userIDStr)

	return tenant.ReconstituteProjectMembership(
		id, projectID, userID,
		tenant.Role(roleStr),
		tenant.MembershipStatus(statusStr),
		parseNullID(invitedBy),
		invitedAt,
	), nil
}

func (r *TenantRepository) scanInvitation(row *sql.Row) (*tenant.Invitation, error) {
	var (
		idStr, email, roleStr, scopeStr, resourceIDStr, tokenHash, invitedByStr, statusStr string
		expiresAt, createdAt                                                               time.Time
		acceptedAt                                                                         sql.NullTime
	)

	err := row.Scan(&idStr, &email, &roleStr, &scopeStr, &resourceIDStr, &tokenHash, &invitedByStr, &statusStr, &expiresAt, &acceptedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan invitation: %w", err)
	}

	return reconstituteInvitation(idStr, email, roleStr, scopeStr, resourceIDStr, tokenHash, invitedByStr, statusStr, expiresAt, acceptedAt, createdAt), nil
}

func (r *TenantRepository) scanInvitationRows(rows *sql.Rows) (*tenant.Invitation, error) {
	var (
		idStr, email, roleStr, scopeStr, resourceIDStr, tokenHash, invitedByStr, statusStr string
		expiresAt, createdAt                                                               time.Time
		acceptedAt                                                                         sql.NullTime
	)

	if err := rows.Scan(&idStr, &email, &roleStr, &scopeStr, &resourceIDStr, &tokenHash, &invitedByStr, &statusStr, &expiresAt, &acceptedAt, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan invitation: %w", err)
	}

	return reconstituteInvitation(idStr, email, roleStr, scopeStr, resourceIDStr, tokenHash, invitedByStr, statusStr, expiresAt, acceptedAt, createdAt), nil
}

func reconstituteInvitation(
	idStr, email, roleStr, scopeStr, resourceIDStr, tokenHash, invitedByStr, statusStr string,
	expiresAt time.Time,
	acceptedAt sql.NullTime,
	createdAt time.Time,
) *tenant.Invitation {
	id, _ := shared.IDFromString(idStr)
	resourceID, _ := shared.IDFromString(resourceIDStr)
	invitedBy, _ := shared.IDFromString(invitedByStr)

	return tenant.ReconstituteInvitation(
		id,
		email,
		tenant.Role(roleStr),
		tenant.Scope(scopeStr),
		resourceID,
		tokenHash,
		invitedBy,
		tenant.InvitationStatus(statusStr),
		expiresAt,
		nullTimeValue(acceptedAt),
		createdAt,
	)
}
