package handler

import (
	"encoding/base64"
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LeadHandler holds dependencies for lead-related handlers, including the
// magic trial-booking link endpoints.
type LeadHandler struct {
	uc usecase.LeadUsecase
}

// NewLeadHandler is the constructor for LeadHandler, injected by Fx.
func NewLeadHandler(uc usecase.LeadUsecase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create handles the lead creation request.
func (h *LeadHandler) Create(c echo.Context) error {
	var input usecase.LeadInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Lead criado com sucesso", "lead", lead)
}

// GetByID returns a single lead.
func (h *LeadHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lead)
}

// List returns all leads.
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, leads)
}

// Update replaces the mutable fields of a lead.
func (h *LeadHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.LeadInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Lead atualizado com sucesso", "lead", lead)
}

// Delete removes a lead.
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Lead removido com sucesso")
}

// IssueMagicLink generates a fresh trial-booking token for the lead and
// returns it with the rendered QR code.
func (h *LeadHandler) IssueMagicLink(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	link, err := h.uc.IssueMagicLink(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, map[string]any{
		"token":     link.Token,
		"expiresAt": link.ExpiresAt,
		"qrCode":    base64.StdEncoding.EncodeToString(link.QRCodePNG),
	})
}

// ResolveMagicToken returns the lead behind a live magic token. This route is
// public: trial visitors are not authenticated.
func (h *LeadHandler) ResolveMagicToken(c echo.Context) error {
	lead, err := h.uc.ResolveMagicToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lead)
}
