package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pssports/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(testDiscardLogger())
	m.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("AppErrorMapsToStatusAndMessage", func(t *testing.T) {
		status, body := handleError(t, domainerrors.ErrInvalidCredentials)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, map[string]any{"message": "Email ou senha incorretos"}, body)
	})

	t.Run("WrappedAppErrorStillMaps", func(t *testing.T) {
		status, body := handleError(t, errors.WithStack(domainerrors.ErrRefreshTokenExpired))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Refresh token expirado", body["message"])
	})

	t.Run("EchoHTTPError", func(t *testing.T) {
		status, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Not Found", body["message"])
	})

	t.Run("DatabaseErrorHidesDetail", func(t *testing.T) {
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock detected"), "failed to commit transaction")
		status, body := handleError(t, dbErr)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"message": "Erro interno no servidor"}, body)
	})

	t.Run("UnknownErrorHidesDetail", func(t *testing.T) {
		status, body := handleError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"message": "Erro interno no servidor"}, body)
	})
}
