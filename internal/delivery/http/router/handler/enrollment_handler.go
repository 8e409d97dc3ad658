package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnrollmentHandler holds dependencies for enrollment and attendance handlers.
type EnrollmentHandler struct {
	uc usecase.EnrollmentUsecase
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler, injected by Fx.
func NewEnrollmentHandler(uc usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

// Create handles the enrollment creation request.
func (h *EnrollmentHandler) Create(c echo.Context) error {
	var input usecase.EnrollmentInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	enrollment, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Matrícula criada com sucesso", "enrollment", enrollment)
}

// GetByID returns a single enrollment.
func (h *EnrollmentHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	enrollment, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, enrollment)
}

// List returns all enrollments.
func (h *EnrollmentHandler) List(c echo.Context) error {
	enrollments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, enrollments)
}

// Update replaces the mutable fields of an enrollment.
func (h *EnrollmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.EnrollmentInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	enrollment, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Matrícula atualizada com sucesso", "enrollment", enrollment)
}

// Delete removes an enrollment.
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Matrícula removida com sucesso")
}

// CreateAttendance records a presence entry for an enrollment.
func (h *EnrollmentHandler) CreateAttendance(c echo.Context) error {
	var input usecase.AttendanceInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	attendance, err := h.uc.CreateAttendance(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusCreated, "Presença registrada com sucesso", "attendance", attendance)
}

// GetAttendanceByID returns a single attendance entry.
func (h *EnrollmentHandler) GetAttendanceByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	attendance, err := h.uc.GetAttendanceByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, attendance)
}

// ListAttendances returns all attendance entries. With the enrollmentId query
// parameter it narrows to a single enrollment's history.
func (h *EnrollmentHandler) ListAttendances(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("enrollmentId"); raw != "" {
		enrollmentID, err := queryID(raw)
		if err != nil {
			return errors.WithStack(err)
		}

		attendances, err := h.uc.ListAttendancesByEnrollment(ctx, enrollmentID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.JSON(c, http.StatusOK, attendances)
	}

	attendances, err := h.uc.ListAttendances(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, attendances)
}

// UpdateAttendance replaces the mutable fields of an attendance entry.
func (h *EnrollmentHandler) UpdateAttendance(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.AttendanceInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	attendance, err := h.uc.UpdateAttendance(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MessageWith(c, http.StatusOK, "Presença atualizada com sucesso", "attendance", attendance)
}

// DeleteAttendance removes an attendance entry.
func (h *EnrollmentHandler) DeleteAttendance(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAttendance(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Presença removida com sucesso")
}
