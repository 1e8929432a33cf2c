package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/shared"
)

// ClientRepository implements client.Repository using PostgreSQL.
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create persists a new client.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	contactInfo, err := toJSONB(c.ContactInfo())
	if err != nil {
		return fmt.Errorf("failed to marshal contact info: %w", err)
	}

	query := `
		INSERT INTO clients (id, agency_id, name, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.ExecContext(ctx, query,
		c.ID().String(),
		c.AgencyID().String(),
		c.Name(),
		contactInfo,
		c.CreatedAt(),
		c.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client within an agency scope.
func (r *ClientRepository) GetByID(ctx context.Context, agencyID, id shared.ID) (*client.Client, error) {
	query := `
		SELECT id, agency_id, name, contact_info, created_at, updated_at
		FROM clients
		WHERE agency_id = $1 AND id = $2
	`

	return r.scanClient(r.db.QueryRowContext(ctx, query, agencyID.String(), id.String()))
}

// ListByAgency lists all clients in an agency.
func (r *ClientRepository) ListByAgency(ctx context.Context, agencyID shared.ID) ([]*client.Client, error) {
	query := `
		SELECT id, agency_id, name, contact_info, created_at, updated_at
		FROM clients
		WHERE agency_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, agencyID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var (
			idStr, agencyIDStr, name string
			contactJSON              []byte
			createdAt, updatedAt     time.Time
		)
		if err := rows.Scan(&idStr, &agencyIDStr, &name, &contactJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}

		c, err := reconstituteClient(idStr, agencyIDStr, name, contactJSON, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// Update updates an existing client.
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	contactInfo, err := toJSONB(c.ContactInfo())
	if err != nil {
		return fmt.Errorf("failed to marshal contact info: %w", err)
	}

	query := `
		UPDATE clients
		SET name = $3, contact_info = $4, updated_at = $5
		WHERE agency_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query,
		c.AgencyID().String(),
		c.ID().String(),
		c.Name(),
		contactInfo,
		c.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// Delete removes a client within an agency scope.
func (r *ClientRepository) Delete(ctx context.Context, agencyID, id shared.ID) error {
	query := `DELETE FROM clients WHERE agency_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, agencyID.String(), id.String())
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

func (r *ClientRepository) scanClient(row *sql.Row) (*client.Client, error) {
	var (
		idStr, agencyIDStr, name string
		contactJSON              []byte
		createdAt, updatedAt     time.Time
	)

	err := row.Scan(&idStr, &agencyIDStr, &name, &contactJSON, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}

	return reconstituteClient(idStr, agencyIDStr, name, contactJSON, createdAt, updatedAt)
}

func reconstituteClient(idStr, agencyIDStr, name string, contactJSON []byte, createdAt, updatedAt time.Time) (*client.Client, error) {
	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)

	var contactInfo map[string]any
	if err := fromJSONB(contactJSON, &contactInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact info: %w", err)
	}

	return client.Reconstitute(id, agencyID, name, contactInfo, createdAt, updatedAt), nil
}
