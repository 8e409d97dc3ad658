package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SchoolHandler holds dependencies for school-related handlers.
type SchoolHandler struct {
	uc usecase.SchoolUsecase
}

// NewSchoolHandler is the constructor for SchoolHandler, injected by Fx.
func NewSchoolHandler(uc usecase.SchoolUsecase) *SchoolHandler {
	return &SchoolHandler{uc: uc}
}

// Create handles the school creation request.
func (h *SchoolHandler) Create(c echo.Context) error {
	var input usecase.SchoolInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	school, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Escola criada com sucesso", "school", school)
}

// GetByID returns a single school.
func (h *SchoolHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	school, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, school)
}

// List returns all schools.
func (h *SchoolHandler) List(c echo.Context) error {
	schools, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, schools)
}

// Update replaces the mutable fields of a school.
func (h *SchoolHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.SchoolInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	school, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Escola atualizada com sucesso", "school", school)
}

// Delete removes a school.
func (h *SchoolHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Escola removida com sucesso")
}
