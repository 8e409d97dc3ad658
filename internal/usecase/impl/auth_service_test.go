package impl

import (
	"context"
	"testing"
	"time"

	"pssports/config"
	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc     usecase.AuthUsecase
	users   *fakeUserRepo
	refresh *fakeRefreshTokenRepo
	tokens  *stubTokenService
}

func newAuthFixture(t *testing.T, users ...*entity.User) *authFixture {
	t.Helper()

	userRepo := newFakeUserRepo(users...)
	refreshRepo := newFakeRefreshTokenRepo()
	tokens := newStubTokenService()

	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		users:   userRepo,
		refresh: refreshRepo,
	}}

	svc := NewAuthService(txManager, stubHasher{}, tokens, &config.Config{}, testLogger())

	return &authFixture{svc: svc, users: userRepo, refresh: refreshRepo, tokens: tokens}
}

func activeUser(email, password string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Carlos Silva",
		Email:        email,
		PasswordHash: "hashed:" + password,
		Status:       entity.StatusActive,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		output, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)

		assert.Equal(t, user.ID, output.User.ID)
		assert.Empty(t, output.User.PasswordHash)
		assert.Equal(t, "access-treinador@escola.com", output.AccessToken)
		assert.Equal(t, "refresh-1", output.RefreshToken)
		assert.Equal(t, int64(3600), output.ExpiresIn)

		// The session row stores the hash of the issued token, never the raw value.
		session, err := f.refresh.FindByHash(ctx, "h:refresh-1")
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
		assert.WithinDuration(t, time.Now().Add(defaultRefreshTokenTTL), session.ExpiresAt, time.Minute)
	})

	t.Run("EmptyFields", func(t *testing.T) {
		f := newAuthFixture(t)

		for _, input := range []usecase.LoginInput{
			{},
			{Email: "a@b.com"},
			{Password: "senha123"},
		} {
			_, err := f.svc.Login(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
		}
	})

	t.Run("UnknownEmailAndWrongPasswordAreIdentical", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		_, unknownErr := f.svc.Login(ctx, usecase.LoginInput{Email: "naoexiste@escola.com", Password: "senha123"})
		_, wrongErr := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "errada"})

		require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
		require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("InactiveUser", func(t *testing.T) {
		user := activeUser("inativo@escola.com", "senha123")
		user.Status = entity.StatusInactive
		f := newAuthFixture(t, user)

		_, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("EachLoginOpensNewSession", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		first, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)
		second, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)

		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
		assert.Len(t, f.refresh.byID, 2)

		// The first session remains usable after the second login.
		_, err = f.svc.Refresh(ctx, first.RefreshToken)
		assert.NoError(t, err)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, f *authFixture, user *entity.User) *usecase.LoginOutput {
		t.Helper()
		output, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)

		return output
	}

	t.Run("RotatesInPlace", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)
		loggedIn := login(t, f, user)

		before, err := f.refresh.FindByHash(ctx, "h:"+loggedIn.RefreshToken)
		require.NoError(t, err)

		rotated, err := f.svc.Refresh(ctx, loggedIn.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, loggedIn.RefreshToken, rotated.RefreshToken)
		assert.Equal(t, int64(3600), rotated.ExpiresIn)

		// Same row identity, new hash; no extra rows appear.
		after, err := f.refresh.FindByHash(ctx, "h:"+rotated.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID)
		assert.Len(t, f.refresh.byID, 1)
	})

	t.Run("ConsumedTokenNeverValidatesAgain", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)
		loggedIn := login(t, f, user)

		rotated, err := f.svc.Refresh(ctx, loggedIn.RefreshToken)
		require.NoError(t, err)

		_, err = f.svc.Refresh(ctx, loggedIn.RefreshToken)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

		// Only the latest value in the chain works.
		_, err = f.svc.Refresh(ctx, rotated.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Refresh(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenRequired)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Refresh(ctx, "nunca-emitido")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("ExpiredTokenIsDeleted", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		session := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: "h:vencido",
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, f.refresh.Create(ctx, session))

		_, err := f.svc.Refresh(ctx, "vencido")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)

		// Presenting an expired token removes its row.
		assert.Empty(t, f.refresh.byID)
	})

	t.Run("InactiveUserSessionIsDeleted", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)
		loggedIn := login(t, f, user)

		f.users.byID[user.ID].Status = entity.StatusInactive

		_, err := f.svc.Refresh(ctx, loggedIn.RefreshToken)
		assert.ErrorIs(t, err, domainerrors.ErrSessionUserInvalid)
		assert.Empty(t, f.refresh.byID)
	})

	t.Run("DeletedUserSessionIsDeleted", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)
		loggedIn := login(t, f, user)

		require.NoError(t, f.users.Delete(ctx, user.ID))

		_, err := f.svc.Refresh(ctx, loggedIn.RefreshToken)
		assert.ErrorIs(t, err, domainerrors.ErrSessionUserInvalid)
		assert.Empty(t, f.refresh.byID)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("RevokesSession", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		loggedIn, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)

		require.NoError(t, f.svc.Logout(ctx, loggedIn.RefreshToken))
		assert.Empty(t, f.refresh.byID)

		_, err = f.svc.Refresh(ctx, loggedIn.RefreshToken)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("Idempotent", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		loggedIn, err := f.svc.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "senha123"})
		require.NoError(t, err)

		require.NoError(t, f.svc.Logout(ctx, loggedIn.RefreshToken))
		assert.NoError(t, f.svc.Logout(ctx, loggedIn.RefreshToken))
		assert.NoError(t, f.svc.Logout(ctx, "nunca-emitido"))
	})

	t.Run("EmptyToken", func(t *testing.T) {
		f := newAuthFixture(t)

		assert.ErrorIs(t, f.svc.Logout(ctx, ""), domainerrors.ErrRefreshTokenRequired)
	})
}

func TestCleanupExpiredSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesOnlyExpiredRows", func(t *testing.T) {
		user := activeUser("treinador@escola.com", "senha123")
		f := newAuthFixture(t, user)

		require.NoError(t, f.refresh.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: "h:viva",
			ExpiresAt: time.Now().Add(time.Hour),
		}))
		require.NoError(t, f.refresh.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: "h:vencida",
			ExpiresAt: time.Now().Add(-time.Hour),
		}))

		require.NoError(t, f.svc.CleanupExpiredSessions(ctx))

		_, err := f.refresh.FindByHash(ctx, "h:viva")
		assert.NoError(t, err)
		_, err = f.refresh.FindByHash(ctx, "h:vencida")
		assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	})

	t.Run("NothingToSweep", func(t *testing.T) {
		f := newAuthFixture(t)

		assert.NoError(t, f.svc.CleanupExpiredSessions(ctx))
	})
}
