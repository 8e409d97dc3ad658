package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for age-category handlers.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create handles the category creation request.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Categoria criada com sucesso", "category", category)
}

// GetByID returns a single category.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, category)
}

// List returns all categories ordered by age bracket.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

// Update replaces the mutable fields of a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Categoria atualizada com sucesso", "category", category)
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Categoria removida com sucesso")
}
