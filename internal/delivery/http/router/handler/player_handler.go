package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlayerHandler holds dependencies for player-related handlers.
type PlayerHandler struct {
	uc usecase.PlayerUsecase
}

// NewPlayerHandler is the constructor for PlayerHandler, injected by Fx.
func NewPlayerHandler(uc usecase.PlayerUsecase) *PlayerHandler {
	return &PlayerHandler{uc: uc}
}

// Create handles the player creation request.
func (h *PlayerHandler) Create(c echo.Context) error {
	var input usecase.PlayerInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	player, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Jogador criado com sucesso", "player", player)
}

// GetByID returns a single player.
func (h *PlayerHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	player, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, player)
}

// List returns all players.
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, players)
}

// Update replaces the mutable fields of a player.
func (h *PlayerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PlayerInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	player, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Jogador atualizado com sucesso", "player", player)
}

// Delete removes a player.
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Jogador removido com sucesso")
}
