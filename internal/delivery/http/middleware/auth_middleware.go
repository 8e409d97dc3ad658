package middleware

import (
	"strings"

	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "userEmail"
)

// AuthMiddleware validates bearer access tokens on protected routes.
// Verification is stateless: signature and expiry only, no session lookup.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate checks the Authorization header and attaches the token's
// claims to the request context. An absent token, including a bare "Bearer"
// scheme with nothing after it, reports the missing-token error; a token that
// is present but fails verification reports the invalid-token error, with
// every other failure detail collapsed into it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		scheme, tokenString, _ := strings.Cut(authHeader, " ")
		if tokenString == "" {
			return domainerrors.ErrTokenMissing
		}
		if scheme != "Bearer" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
