// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"pssports/internal/delivery/http/response"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the session endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login handles the credential exchange request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrCredentialsRequired)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// RefreshToken rotates a refresh-token session.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrRefreshTokenRequired)
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Logout revokes the session holding the presented refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrRefreshTokenRequired)
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Logout realizado com sucesso")
}
