package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pssports/config"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "segredo-de-teste"

	tokenSvc, err := auth.NewJWTService(cfg, testDiscardLogger())
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func issueToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "segredo-de-teste"

	tokenSvc, err := auth.NewJWTService(cfg, testDiscardLogger())
	require.NoError(t, err)

	token, err := tokenSvc.GenerateAccessToken(userID, email)
	require.NoError(t, err)

	return token
}

func runAuthenticate(m *AuthMiddleware, authHeader string) (error, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	return m.Authenticate(next)(c), c
}

func TestAuthenticate(t *testing.T) {
	m := newTestAuthMiddleware(t)

	t.Run("ValidToken", func(t *testing.T) {
		userID := uuid.New()
		token := issueToken(t, userID, "treinador@escola.com")

		err, c := runAuthenticate(m, "Bearer "+token)
		require.NoError(t, err)

		assert.Equal(t, userID, c.Get(ContextKeyUserID))
		assert.Equal(t, "treinador@escola.com", c.Get(ContextKeyEmail))
	})

	t.Run("MissingHeader", func(t *testing.T) {
		err, _ := runAuthenticate(m, "")
		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("EmptyBearerToken", func(t *testing.T) {
		err, _ := runAuthenticate(m, "Bearer ")
		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("SchemeWithoutToken", func(t *testing.T) {
		err, _ := runAuthenticate(m, "Bearer")
		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("NotBearer", func(t *testing.T) {
		token := issueToken(t, uuid.New(), "treinador@escola.com")

		err, _ := runAuthenticate(m, "Basic "+token)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		err, _ := runAuthenticate(m, "Bearer nao-e-um-jwt")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("WrongSignature", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.JWT.Secret = "outro-segredo"

		otherSvc, err := auth.NewJWTService(cfg, testDiscardLogger())
		require.NoError(t, err)

		token, err := otherSvc.GenerateAccessToken(uuid.New(), "treinador@escola.com")
		require.NoError(t, err)

		authErr, _ := runAuthenticate(m, "Bearer "+token)
		assert.ErrorIs(t, authErr, domainerrors.ErrTokenInvalid)
	})
}
