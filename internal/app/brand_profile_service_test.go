package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignhub/api/pkg/domain/client"
	"github.com/campaignhub/api/pkg/domain/shared"
	"github.com/campaignhub/api/pkg/logger"
)

// =============================================================================
// Mocks
// =============================================================================

type clientKey struct {
	agencyID shared.ID
	id       shared.ID
}

type mockClientRepo struct {
	clients map[clientKey]*client.Client
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[clientKey]*client.Client)}
}

func (m *mockClientRepo) Create(_ context.Context, c *client.Client) error {
	m.clients[clientKey{c.AgencyID(), c.ID()}] = c
	return nil
}

func (m *mockClientRepo) GetByID(_ context.Context, agencyID, id shared.ID) (*client.Client, error) {
	c, ok := m.clients[clientKey{agencyID, id}]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (m *mockClientRepo) ListByAgency(_ context.Context, agencyID shared.ID) ([]*client.Client, error) {
	var out []*client.Client
	for k, c := range m.clients {
		if k.agencyID == agencyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClientRepo) Update(_ context.Context, c *client.Client) error {
	key := clientKey{c.AgencyID(), c.ID()}
	if _, ok := m.clients[key]; !ok {
		return shared.ErrNotFound
	}
	m.clients[key] = c
	return nil
}

func (m *mockClientRepo) Delete(_ context.Context, agencyID, id shared.ID) error {
	key := clientKey{agencyID, id}
	if _, ok := m.clients[key]; !ok {
		return shared.ErrNotFound
	}
	delete(m.clients, key)
	return nil
}

type mockProfileRepo struct {
	byClient map[shared.ID]*client.BrandProfile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byClient: make(map[shared.ID]*client.BrandProfile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, p *client.BrandProfile) (*client.BrandProfile, error) {
	if existing, ok := m.byClient[p.ClientID()]; ok {
		// The stored row keeps its identity and creation time.
		p = client.ReconstituteBrandProfile(
			existing.ID(), p.AgencyID(), p.ClientID(),
			p.BrandTone(), p.Industry(), p.TargetAudience(), p.VoiceAttributes(),
			existing.CreatedAt(), p.UpdatedAt(),
		)
	}
	m.byClient[p.ClientID()] = p
	return p, nil
}

func (m *mockProfileRepo) GetByClient(_ context.Context, agencyID, clientID shared.ID) (*client.BrandProfile, error) {
	p, ok := m.byClient[clientID]
	if !ok || p.AgencyID() != agencyID {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) DeleteByClient(_ context.Context, agencyID, clientID shared.ID) error {
	p, ok := m.byClient[clientID]
	if !ok || p.AgencyID() != agencyID {
		return shared.ErrNotFound
	}
	delete(m.byClient, clientID)
	return nil
}

// =============================================================================
// Fixtures
// =============================================================================

type profileServiceFixture struct {
	profiles *mockProfileRepo
	clients  *mockClientRepo
	service  *BrandProfileService
}

func newProfileServiceFixture(t *testing.T) *profileServiceFixture {
	t.Helper()
	f := &profileServiceFixture{
		profiles: newMockProfileRepo(),
		clients:  newMockClientRepo(),
	}
	f.service = NewBrandProfileService(f.profiles, f.clients, logger.NewNop())
	return f
}

func (f *profileServiceFixture) storedClient(t *testing.T, agencyID shared.ID) *client.Client {
	t.Helper()
	c, err := client.New(agencyID, "Acme Retail", nil)
	require.NoError(t, err)
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

// =============================================================================
// Tests
// =============================================================================

func TestBrandProfileService_UpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile for existing client", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		agencyID := shared.NewID()
		c := f.storedClient(t, agencyID)

		p, err := f.service.UpsertProfile(ctx, agencyID, c.ID(), UpsertProfileInput{
			BrandTone:       "playful",
			Industry:        "retail",
			TargetAudience:  "gen z shoppers",
			VoiceAttributes: map[string]any{"formality": "casual"},
		})

		require.NoError(t, err)
		assert.Equal(t, c.ID(), p.ClientID())
		assert.Equal(t, "playful", p.BrandTone())
		assert.Equal(t, "casual", p.VoiceAttributes()["formality"])
	})

	t.Run("second upsert replaces fields but keeps identity", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		agencyID := shared.NewID()
		c := f.storedClient(t, agencyID)

		first, err := f.service.UpsertProfile(ctx, agencyID, c.ID(), UpsertProfileInput{BrandTone: "playful"})
		require.NoError(t, err)

		second, err := f.service.UpsertProfile(ctx, agencyID, c.ID(), UpsertProfileInput{BrandTone: "formal"})
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		assert.Equal(t, "formal", second.BrandTone())
		assert.Equal(t, first.CreatedAt(), second.CreatedAt())
	})

	t.Run("unknown client surfaces not found", func(t *testing.T) {
		f := newProfileServiceFixture(t)

		_, err := f.service.UpsertProfile(ctx, shared.NewID(), shared.NewID(), UpsertProfileInput{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("client of another agency is indistinguishable from a miss", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		c := f.storedClient(t, shared.NewID())

		_, err := f.service.UpsertProfile(ctx, shared.NewID(), c.ID(), UpsertProfileInput{BrandTone: "playful"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBrandProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored profile", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		agencyID := shared.NewID()
		c := f.storedClient(t, agencyID)

		_, err := f.service.UpsertProfile(ctx, agencyID, c.ID(), UpsertProfileInput{Industry: "retail"})
		require.NoError(t, err)

		p, err := f.service.GetProfile(ctx, agencyID, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "retail", p.Industry())
	})

	t.Run("missing profile surfaces not found", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		agencyID := shared.NewID()
		c := f.storedClient(t, agencyID)

		_, err := f.service.GetProfile(ctx, agencyID, c.ID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestBrandProfileService_DeleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes stored profile", func(t *testing.T) {
		f := newProfileServiceFixture(t)
		agencyID := shared.NewID()
		c := f.storedClient(t, agencyID)

		_, err := f.service.UpsertProfile(ctx, agencyID, c.ID(), UpsertProfileInput{})
		require.NoError(t, err)

		require.NoError(t, f.service.DeleteProfile(ctx, agencyID, c.ID()))

		_, err = f.service.GetProfile(ctx, agencyID, c.ID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("missing profile surfaces not found", func(t *testing.T) {
		f := newProfileServiceFixture(t)

		err := f.service.DeleteProfile(ctx, shared.NewID(), shared.NewID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
