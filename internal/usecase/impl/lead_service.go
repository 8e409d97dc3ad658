package impl

import (
	"context"
	"log/slog"
	"time"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/domain/service"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// A prospect books a trial within days, not weeks.
const magicLinkTTL = 7 * 24 * time.Hour

// leadService implements the LeadUsecase interface.
type leadService struct {
	leadRepo  repository.LeadRepository
	tokenSvc  service.TokenService
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(
	leadRepo repository.LeadRepository,
	tokenSvc service.TokenService,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.LeadUsecase {
	return &leadService{
		leadRepo:  leadRepo,
		tokenSvc:  tokenSvc,
		qrcodeSvc: qrcodeSvc,
		logger:    logger,
	}
}

func (srv *leadService) Create(ctx context.Context, input usecase.LeadInput) (*entity.Lead, error) {
	status := entity.LeadStatus(input.Status)
	if status == "" {
		status = entity.LeadNew
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	lead := &entity.Lead{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EntryDate: entryDate,
		Source:    input.Source,
		Status:    status,
	}

	if err := srv.leadRepo.Create(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	srv.logger.Info("Lead created", slog.Any("lead_id", lead.ID), slog.String("source", lead.Source))

	return lead, nil
}

func (srv *leadService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	return lead, nil
}

func (srv *leadService) List(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := srv.leadRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

func (srv *leadService) Update(ctx context.Context, id uuid.UUID, input usecase.LeadInput) (*entity.Lead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	lead.Name = input.Name
	lead.Email = input.Email
	lead.Phone = input.Phone
	if !input.EntryDate.IsZero() {
		lead.EntryDate = input.EntryDate
	}
	lead.Source = input.Source
	if input.Status != "" {
		lead.Status = entity.LeadStatus(input.Status)
	}

	if err := srv.leadRepo.Update(ctx, lead); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to update lead")
	}

	return lead, nil
}

func (srv *leadService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domainerrors.ErrLeadNotFound
		}

		return errors.Wrap(err, "failed to delete lead")
	}

	return nil
}

// IssueMagicLink mints a fresh opaque token for the lead and renders the
// booking link as a QR code. Reissuing replaces any previous token.
func (srv *leadService) IssueMagicLink(ctx context.Context, id uuid.UUID) (*usecase.MagicLinkOutput, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	token, err := srv.tokenSvc.NewRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate magic token")
	}

	expiresAt := time.Now().Add(magicLinkTTL)
	lead.MagicToken = token
	lead.MagicExpiresAt = &expiresAt
	if lead.Status == entity.LeadNew {
		lead.Status = entity.LeadInContact
	}

	if err := srv.leadRepo.Update(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to store magic token")
	}

	png, err := srv.qrcodeSvc.GenerateMagicLinkQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render magic link QR code")
	}

	srv.logger.Info("Magic link issued", slog.Any("lead_id", lead.ID))

	return &usecase.MagicLinkOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		QRCodePNG: png,
	}, nil
}

// ResolveMagicToken returns the lead behind a live magic token. Unknown and
// expired tokens produce the same error.
func (srv *leadService) ResolveMagicToken(ctx context.Context, token string) (*entity.Lead, error) {
	if token == "" {
		return nil, domainerrors.ErrMagicLinkInvalid
	}

	lead, err := srv.leadRepo.FindByMagicToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrMagicLinkInvalid
		}

		return nil, errors.Wrap(err, "failed to find lead by magic token")
	}

	if lead.MagicExpiresAt == nil || time.Now().After(*lead.MagicExpiresAt) {
		return nil, domainerrors.ErrMagicLinkInvalid
	}

	return lead, nil
}
