package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ModalityHandler holds dependencies for sport-modality handlers.
type ModalityHandler struct {
	uc usecase.ModalityUsecase
}

// NewModalityHandler is the constructor for ModalityHandler, injected by Fx.
func NewModalityHandler(uc usecase.ModalityUsecase) *ModalityHandler {
	return &ModalityHandler{uc: uc}
}

// Create handles the modality creation request.
func (h *ModalityHandler) Create(c echo.Context) error {
	var input usecase.ModalityInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	modality, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Modalidade criada com sucesso", "modality", modality)
}

// GetByID returns a single modality.
func (h *ModalityHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	modality, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, modality)
}

// List returns all modalities.
func (h *ModalityHandler) List(c echo.Context) error {
	modalities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, modalities)
}

// Update replaces the mutable fields of a modality.
func (h *ModalityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ModalityInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	modality, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Modalidade atualizada com sucesso", "modality", modality)
}

// Delete removes a modality.
func (h *ModalityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Modalidade removida com sucesso")
}
