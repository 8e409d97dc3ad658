package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClassHandler holds dependencies for class-related handlers.
type ClassHandler struct {
	uc usecase.ClassUsecase
}

// NewClassHandler is the constructor for ClassHandler, injected by Fx.
func NewClassHandler(uc usecase.ClassUsecase) *ClassHandler {
	return &ClassHandler{uc: uc}
}

// Create handles the class creation request.
func (h *ClassHandler) Create(c echo.Context) error {
	var input usecase.ClassInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	class, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Turma criada com sucesso", "class", class)
}

// GetByID returns a single class.
func (h *ClassHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	class, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, class)
}

// List returns all classes.
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, classes)
}

// Update replaces the mutable fields of a class.
func (h *ClassHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ClassInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	class, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Turma atualizada com sucesso", "class", class)
}

// Delete removes a class.
func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Turma removida com sucesso")
}
