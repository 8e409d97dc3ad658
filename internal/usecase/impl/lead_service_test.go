package impl

import (
	"context"
	"testing"
	"time"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadRepo struct {
	byID map[uuid.UUID]*entity.Lead
}

func newFakeLeadRepo(leads ...*entity.Lead) *fakeLeadRepo {
	repo := &fakeLeadRepo{byID: make(map[uuid.UUID]*entity.Lead)}
	for _, lead := range leads {
		repo.byID[lead.ID] = lead
	}

	return repo
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	copied := *lead
	r.byID[lead.ID] = &copied

	return nil
}

func (r *fakeLeadRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrLeadNotFound
	}
	copied := *lead

	return &copied, nil
}

func (r *fakeLeadRepo) FindByMagicToken(ctx context.Context, token string) (*entity.Lead, error) {
	for _, lead := range r.byID {
		if lead.MagicToken != "" && lead.MagicToken == token {
			copied := *lead

			return &copied, nil
		}
	}

	return nil, repository.ErrLeadNotFound
}

func (r *fakeLeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	leads := make([]*entity.Lead, 0, len(r.byID))
	for _, lead := range r.byID {
		copied := *lead
		leads = append(leads, &copied)
	}

	return leads, nil
}

func (r *fakeLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	if _, ok := r.byID[lead.ID]; !ok {
		return repository.ErrLeadNotFound
	}
	copied := *lead
	r.byID[lead.ID] = &copied

	return nil
}

func (r *fakeLeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrLeadNotFound
	}
	delete(r.byID, id)

	return nil
}

type stubQRCodeService struct {
	lastToken string
}

func (s *stubQRCodeService) GenerateMagicLinkQR(magicToken string) ([]byte, error) {
	s.lastToken = magicToken

	return []byte("png-de-teste"), nil
}

func newLead(status entity.LeadStatus) *entity.Lead {
	return &entity.Lead{
		ID:        uuid.New(),
		Name:      "Pedro Prospecto",
		Email:     "pedro@exemplo.com",
		Phone:     "11999990000",
		EntryDate: time.Now(),
		Status:    status,
	}
}

func TestLeadCreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, newStubTokenService(), &stubQRCodeService{}, testLogger())

	lead, err := svc.Create(ctx, usecase.LeadInput{
		Name:  "Pedro Prospecto",
		Email: "pedro@exemplo.com",
		Phone: "11999990000",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LeadNew, lead.Status)
	assert.False(t, lead.EntryDate.IsZero())
}

func TestIssueMagicLink(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresTokenAndRendersQR", func(t *testing.T) {
		lead := newLead(entity.LeadNew)
		repo := newFakeLeadRepo(lead)
		qr := &stubQRCodeService{}
		svc := NewLeadService(repo, newStubTokenService(), qr, testLogger())

		link, err := svc.IssueMagicLink(ctx, lead.ID)
		require.NoError(t, err)

		assert.Equal(t, "refresh-1", link.Token)
		assert.Equal(t, []byte("png-de-teste"), link.QRCodePNG)
		assert.Equal(t, link.Token, qr.lastToken)
		assert.WithinDuration(t, time.Now().Add(magicLinkTTL), link.ExpiresAt, time.Minute)

		stored := repo.byID[lead.ID]
		assert.Equal(t, link.Token, stored.MagicToken)
		require.NotNil(t, stored.MagicExpiresAt)
		// Issuing a link moves a fresh lead into the contacted state.
		assert.Equal(t, entity.LeadInContact, stored.Status)
	})

	t.Run("ReissueReplacesToken", func(t *testing.T) {
		lead := newLead(entity.LeadScheduled)
		repo := newFakeLeadRepo(lead)
		svc := NewLeadService(repo, newStubTokenService(), &stubQRCodeService{}, testLogger())

		first, err := svc.IssueMagicLink(ctx, lead.ID)
		require.NoError(t, err)
		second, err := svc.IssueMagicLink(ctx, lead.ID)
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
		assert.Equal(t, second.Token, repo.byID[lead.ID].MagicToken)
		// A lead already past the contact stage keeps its status.
		assert.Equal(t, entity.LeadScheduled, repo.byID[lead.ID].Status)

		_, err = svc.ResolveMagicToken(ctx, first.Token)
		assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
	})

	t.Run("UnknownLead", func(t *testing.T) {
		svc := NewLeadService(newFakeLeadRepo(), newStubTokenService(), &stubQRCodeService{}, testLogger())

		_, err := svc.IssueMagicLink(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrLeadNotFound)
	})
}

func TestResolveMagicToken(t *testing.T) {
	ctx := context.Background()

	t.Run("LiveToken", func(t *testing.T) {
		lead := newLead(entity.LeadInContact)
		expiresAt := time.Now().Add(time.Hour)
		lead.MagicToken = "token-vivo"
		lead.MagicExpiresAt = &expiresAt
		svc := NewLeadService(newFakeLeadRepo(lead), newStubTokenService(), &stubQRCodeService{}, testLogger())

		found, err := svc.ResolveMagicToken(ctx, "token-vivo")
		require.NoError(t, err)
		assert.Equal(t, lead.ID, found.ID)
	})

	t.Run("EmptyUnknownAndExpiredAreIdentical", func(t *testing.T) {
		lead := newLead(entity.LeadInContact)
		expired := time.Now().Add(-time.Hour)
		lead.MagicToken = "token-vencido"
		lead.MagicExpiresAt = &expired
		svc := NewLeadService(newFakeLeadRepo(lead), newStubTokenService(), &stubQRCodeService{}, testLogger())

		for _, token := range []string{"", "desconhecido", "token-vencido"} {
			_, err := svc.ResolveMagicToken(ctx, token)
			assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
		}
	})
}
