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

// BrandProfileRepository implements client.ProfileRepository using PostgreSQL.
type BrandProfileRepository struct {
	db *DB
}

// NewBrandProfileRepository creates a new BrandProfileRepository.
func NewBrandProfileRepository(db *DB) *BrandProfileRepository {
	return &BrandProfileRepository{db: db}
}

// Upsert inserts the profile or, when the client already has one, updates it
// in place. The stored row keeps its original ID and creation time.
func (r *BrandProfileRepository) Upsert(ctx context.Context, p *client.BrandProfile) (*client.BrandProfile, error) {
	voiceAttrs, err := toJSONB(p.VoiceAttributes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voice attributes: %w", err)
	}

	query := `
		INSERT INTO brand_profiles (id, agency_id, client_id, brand_tone, industry, target_audience, voice_attributes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (client_id) DO UPDATE
		SET brand_tone = EXCLUDED.brand_tone,
		    industry = EXCLUDED.industry,
		    target_audience = EXCLUDED.target_audience,
		    voice_attributes = EXCLUDED.voice_attributes,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, agency_id, client_id, brand_tone, industry, target_audience, voice_attributes, created_at, updated_at
	`

	row := r.db.QueryRowContext(ctx, query,
		p.ID().String(),
		p.AgencyID().String(),
		p.ClientID().String(),
		p.BrandTone(),
		p.Industry(),
		p.TargetAudience(),
		voiceAttrs,
		p.CreatedAt(),
		p.UpdatedAt(),
	)
	return r.scanProfile(row)
}

// GetByClient retrieves a client's profile within an agency scope.
func (r *BrandProfileRepository) GetByClient(ctx context.Context, agencyID, clientID shared.ID) (*client.BrandProfile, error) {
	query := `
		SELECT id, agency_id, client_id, brand_tone, industry, target_audience, voice_attributes, created_at, updated_at
		FROM brand_profiles
		WHERE agency_id = $1 AND client_id = $2
	`

	return r.scanProfile(r.db.QueryRowContext(ctx, query, agencyID.String(), clientID.String()))
}

// DeleteByClient removes a client's profile within an agency scope.
func (r *BrandProfileRepository) DeleteByClient(ctx context.Context, agencyID, clientID shared.ID) error {
	query := `DELETE FROM brand_profiles WHERE agency_id = $1 AND client_id = $2`

	result, err := r.db.ExecContext(ctx, query, agencyID.String(), clientID.String())
	if err != nil {
		return fmt.Errorf("failed to delete brand profile: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return shared.ErrNotFound
	}

	return nil
}

func (r *BrandProfileRepository) scanProfile(row *sql.Row) (*client.BrandProfile, error) {
	var (
		idStr, agencyIDStr, clientIDStr     string
		brandTone, industry, targetAudience string
		voiceJSON                           []byte
		createdAt, updatedAt                time.Time
	)

	err := row.Scan(&idStr, &agencyIDStr, &clientIDStr, &brandTone, &industry, &targetAudience, &voiceJSON, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan brand profile: %w", err)
	}

	id, _ := shared.IDFromString(idStr)
	agencyID, _ := shared.IDFromString(agencyIDStr)
	clientID, _ := shared.IDFromString(clientIDStr)

	var voiceAttrs map[string]any
	if err := fromJSONB(voiceJSON, &voiceAttrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voice attributes: %w", err)
	}

	return client.ReconstituteBrandProfile(id, agencyID, clientID, brandTone, industry, targetAudience, voiceAttrs, createdAt, updatedAt), nil
}
