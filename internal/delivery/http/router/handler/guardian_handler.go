package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardianHandler holds dependencies for guardian-related handlers, including
// the guardian-player association endpoints.
type GuardianHandler struct {
	uc usecase.GuardianUsecase
}

// NewGuardianHandler is the constructor for GuardianHandler, injected by Fx.
func NewGuardianHandler(uc usecase.GuardianUsecase) *GuardianHandler {
	return &GuardianHandler{uc: uc}
}

// Create handles the guardian creation request.
func (h *GuardianHandler) Create(c echo.Context) error {
	var input usecase.GuardianInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Responsável criado com sucesso", "guardian", guardian)
}

// GetByID returns a single guardian.
func (h *GuardianHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, guardian)
}

// List returns all guardians.
func (h *GuardianHandler) List(c echo.Context) error {
	guardians, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, guardians)
}

// Update replaces the mutable fields of a guardian.
func (h *GuardianHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.GuardianInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Responsável atualizado com sucesso", "guardian", guardian)
}

// Delete removes a guardian.
func (h *GuardianHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Responsável removido com sucesso")
}

// LinkPlayer associates a player with a guardian.
func (h *GuardianHandler) LinkPlayer(c echo.Context) error {
	guardianID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.LinkPlayer(c.Request().Context(), guardianID, playerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Jogador vinculado ao responsável com sucesso")
}

// UnlinkPlayer removes the association between a player and a guardian.
func (h *GuardianHandler) UnlinkPlayer(c echo.Context) error {
	guardianID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UnlinkPlayer(c.Request().Context(), guardianID, playerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Jogador desvinculado do responsável com sucesso")
}

// ListPlayers returns the players under one guardian.
func (h *GuardianHandler) ListPlayers(c echo.Context) error {
	guardianID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	players, err := h.uc.ListPlayers(c.Request().Context(), guardianID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, players)
}
