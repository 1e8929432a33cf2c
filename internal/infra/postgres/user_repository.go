package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/domain/tenant"
	"github.com/campaignhub/api/pkg/domain/user"
)

// UserRepository implements user.Repository using PostgreSQL.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, external_id, email, name, primary_agency_id, primary_role, last_login_at, created_at, updated_at`

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, external_id, email, name, primary_agency_id, primary_role, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID().String(),
		u.ExternalID(),
		u.Email(),
		u.Name(),
		nullID(u.PrimaryAgencyID()),
		nullRole(u.PrimaryRole()),
		nullTime(u.LastLoginAt()),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user already exists", shared.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id shared.ID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id.String()))
}

// GetByExternalID retrieves a user by the identity provider subject ID.
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, externalID))
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// Update updates an existing user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, name = $3, primary_agency_id = $4, primary_role = $5, last_login_at = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		u.ID().String(),
		u.Email(),
		u.Name(),
		nullID(u.PrimaryAgencyID()),
		nullRole(u.PrimaryRole()),
		nullTime(u.LastLoginAt()),
		u.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// Upsert inserts the user or refreshes identity fields on external ID
// conflict. The unique constraint plus ON CONFLICT keeps concurrent syncs
// idempotent; the canonical row is returned either way.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (id, external_id, email, name, primary_agency_id, primary_role, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (external_id) DO UPDATE
		SET email = EXCLUDED.email,
		    name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE users.name END,
		    last_login_at = EXCLUDED.last_login_at,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns

	return r.scanUser(r.db.QueryRowContext(ctx, query,
		u.ID().String(),
		u.ExternalID(),
		u.Email(),
		u.Name(),
		nullID(u.PrimaryAgencyID()),
		nullRole(u.PrimaryRole()),
		nullTime(u.LastLoginAt()),
		u.CreatedAt(),
		u.UpdatedAt(),
	))
}

func (r *UserRepository) scanUser(row *sql.Row) (*user.User, error) {
	var (
		idStr, externalID, email, name string
		primaryAgencyID, primaryRole   sql.NullString
		lastLoginAt                    sql.NullTime
		createdAt, updatedAt           time.Time
	)

	err := row.Scan(&idStr, &externalID, &email, &name, &primaryAgencyID, &primaryRole, &lastLoginAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	id, _ := shared.IDFromString(idStr)

	var rolePtr *tenant.Role
	if primaryRole.Valid {
		if role, ok := tenant.ParseRole(primaryRole.String); ok {
			rolePtr = &role
		}
	}

	return user.Reconstitute(
		id,
		externalID,
		email,
		name,
		parseNullID(primaryAgencyID),
		rolePtr,
		nullTimeValue(lastLoginAt),
		createdAt,
		updatedAt,
	), nil
}

// nullRole converts a *tenant.Role to sql.NullString.
func nullRole(role *tenant.Role) sql.NullString {
	if role == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: role.String(), Valid: true}
}
