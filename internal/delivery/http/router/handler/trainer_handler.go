package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrainerHandler holds dependencies for trainer-related handlers.
type TrainerHandler struct {
	uc usecase.TrainerUsecase
}

// NewTrainerHandler is the constructor for TrainerHandler, injected by Fx.
func NewTrainerHandler(uc usecase.TrainerUsecase) *TrainerHandler {
	return &TrainerHandler{uc: uc}
}

// Create handles the trainer creation request.
func (h *TrainerHandler) Create(c echo.Context) error {
	var input usecase.TrainerInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	trainer, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Treinador criado com sucesso", "trainer", trainer)
}

// GetByID returns a single trainer.
func (h *TrainerHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	trainer, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, trainer)
}

// List returns all trainers.
func (h *TrainerHandler) List(c echo.Context) error {
	trainers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, trainers)
}

// Update replaces the mutable fields of a trainer.
func (h *TrainerHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.TrainerInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	trainer, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Treinador atualizado com sucesso", "trainer", trainer)
}

// Delete removes a trainer.
func (h *TrainerHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Treinador removido com sucesso")
}
