package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role-related handlers, including the
// user-role association endpoints.
type RoleHandler struct {
	uc usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

type userRoleRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	RoleID int64  `json:"roleId" validate:"required"`
}

// Create handles the role creation request.
func (h *RoleHandler) Create(c echo.Context) error {
	var input usecase.RoleInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Função criada com sucesso", "role", role)
}

// GetByID returns a single role.
func (h *RoleHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, role)
}

// List returns all roles.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, roles)
}

// Update replaces the mutable fields of a role.
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.RoleInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Função atualizada com sucesso", "role", role)
}

// Delete removes a role.
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Função removida com sucesso")
}

// Assign grants a role to a user.
func (h *RoleHandler) Assign(c echo.Context) error {
	userID, roleID, err := h.bindUserRole(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Assign(c.Request().Context(), userID, roleID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Função atribuída com sucesso")
}

// Unassign revokes a role from a user. Revoking an absent link succeeds.
func (h *RoleHandler) Unassign(c echo.Context) error {
	userID, roleID, err := h.bindUserRole(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Unassign(c.Request().Context(), userID, roleID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Função removida do usuário com sucesso")
}

// ListByUser returns the roles held by one user.
func (h *RoleHandler) ListByUser(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return errors.WithStack(err)
	}

	roles, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, roles)
}

func (h *RoleHandler) bindUserRole(c echo.Context) (uuid.UUID, int64, error) {
	var req userRoleRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, 0, domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return uuid.Nil, 0, err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, 0, domainerrors.ErrValidationFailed
	}

	return userID, req.RoleID, nil
}
