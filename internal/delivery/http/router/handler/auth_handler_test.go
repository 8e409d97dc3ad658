package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	loginOutput   *usecase.LoginOutput
	loginErr      error
	refreshOutput *usecase.RefreshOutput
	refreshErr    error
	logoutErr     error

	gotLogin   usecase.LoginInput
	gotRefresh string
	gotLogout  string
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.gotLogin = input

	return s.loginOutput, s.loginErr
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	s.gotRefresh = refreshToken

	return s.refreshOutput, s.refreshErr
}

func (s *stubAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	s.gotLogout = refreshToken

	return s.logoutErr
}

func (s *stubAuthUsecase) CleanupExpiredSessions(ctx context.Context) error {
	return nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, h(e.NewContext(req, rec))
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("SuccessBodyShape", func(t *testing.T) {
		stub := &stubAuthUsecase{loginOutput: &usecase.LoginOutput{
			User:         &entity.User{ID: uuid.New(), Email: "treinador@escola.com", Status: entity.StatusActive},
			AccessToken:  "jwt-de-teste",
			RefreshToken: "refresh-de-teste",
			ExpiresIn:    3600,
		}}
		h := NewAuthHandler(stub)

		rec, err := postJSON(t, h.Login, `{"email":"treinador@escola.com","password":"senha123"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "user")
		assert.Contains(t, body, "token")
		assert.Contains(t, body, "refreshToken")
		assert.Contains(t, body, "expiresIn")

		assert.Equal(t, "treinador@escola.com", stub.gotLogin.Email)
		assert.Equal(t, "senha123", stub.gotLogin.Password)
	})

	t.Run("UsecaseErrorPropagates", func(t *testing.T) {
		stub := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
		h := NewAuthHandler(stub)

		_, err := postJSON(t, h.Login, `{"email":"a@b.com","password":"x"}`)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthHandlerRefreshToken(t *testing.T) {
	t.Run("SuccessBodyShape", func(t *testing.T) {
		stub := &stubAuthUsecase{refreshOutput: &usecase.RefreshOutput{
			AccessToken:  "novo-jwt",
			RefreshToken: "novo-refresh",
			ExpiresIn:    3600,
		}}
		h := NewAuthHandler(stub)

		rec, err := postJSON(t, h.RefreshToken, `{"refreshToken":"antigo"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "antigo", stub.gotRefresh)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "novo-jwt", body["token"])
		assert.Equal(t, "novo-refresh", body["refreshToken"])
		assert.Equal(t, float64(3600), body["expiresIn"])
	})

	t.Run("UsecaseErrorPropagates", func(t *testing.T) {
		stub := &stubAuthUsecase{refreshErr: domainerrors.ErrRefreshTokenExpired}
		h := NewAuthHandler(stub)

		_, err := postJSON(t, h.RefreshToken, `{"refreshToken":"vencido"}`)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	t.Run("MessageBody", func(t *testing.T) {
		stub := &stubAuthUsecase{}
		h := NewAuthHandler(stub)

		rec, err := postJSON(t, h.Logout, `{"refreshToken":"qualquer"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "qualquer", stub.gotLogout)
		assert.JSONEq(t, `{"message":"Logout realizado com sucesso"}`, rec.Body.String())
	})

	t.Run("EmptyTokenError", func(t *testing.T) {
		stub := &stubAuthUsecase{logoutErr: domainerrors.ErrRefreshTokenRequired}
		h := NewAuthHandler(stub)

		_, err := postJSON(t, h.Logout, `{}`)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenRequired)
	})
}
