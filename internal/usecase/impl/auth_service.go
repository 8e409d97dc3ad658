// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pssports/config"
	deliverycontext "pssports/internal/delivery/context"
	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/domain/service"
	"pssports/internal/usecase"

	"github.com/pkg/errors"
)

const defaultRefreshTokenTTL = 30 * 24 * time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	refreshTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	refreshTTL := defaultRefreshTokenTTL
	if cfg.Auth != nil && cfg.Auth.RefreshTokenTTL > 0 {
		refreshTTL = cfg.Auth.RefreshTokenTTL
	}

	return &authService{
		txManager:  txManager,
		hasher:     hasher,
		tokenSvc:   tokenSvc,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and opens a new session. A wrong password and an
// unknown email produce the same error so callers cannot enumerate accounts.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !user.IsActive() {
			return domainerrors.ErrUserInactive
		}

		// Same error as the unknown-email branch above.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		accessToken, err := srv.tokenSvc.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}

		rawRefresh, err := srv.tokenSvc.NewRefreshToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate refresh token")
		}

		// One new session row per login; existing sessions are untouched.
		session := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenSvc.HashToken(rawRefresh),
			ExpiresAt: time.Now().Add(srv.refreshTTL),
		}
		if err := refreshRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to persist session")
		}

		user.PasswordHash = ""
		output = &usecase.LoginOutput{
			User:         user,
			AccessToken:  accessToken,
			RefreshToken: rawRefresh,
			ExpiresIn:    int64(srv.tokenSvc.AccessTokenTTL().Seconds()),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Refresh exchanges a live refresh token for fresh credentials. The session
// row is rotated in place with a conditional update, so of two concurrent
// calls presenting the same token only one can succeed.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenRequired
	}

	oldHash := srv.tokenSvc.HashToken(refreshToken)

	var output *usecase.RefreshOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		session, err := refreshRepo.FindByHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// Rotated-away and never-issued look identical here.
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.Expired(time.Now()) {
			// Dead state; remove the row so the token cannot be retried.
			if err := refreshRepo.DeleteByID(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(err, "failed to delete expired session")
			}

			return domainerrors.ErrRefreshTokenExpired
		}

		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil || !user.IsActive() {
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find session user")
			}

			if delErr := refreshRepo.DeleteByID(ctx, session.ID); delErr != nil && !errors.Is(delErr, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(delErr, "failed to delete orphaned session")
			}

			return domainerrors.ErrSessionUserInvalid
		}

		accessToken, err := srv.tokenSvc.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}

		rawRefresh, err := srv.tokenSvc.NewRefreshToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate refresh token")
		}

		// Conditional rotation keyed on the presented hash. Losing the race
		// means the token was already rotated or revoked.
		newExpiry := time.Now().Add(srv.refreshTTL)
		if err := refreshRepo.Rotate(ctx, session.ID, oldHash, srv.tokenSvc.HashToken(rawRefresh), newExpiry); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to rotate session")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: rawRefresh,
			ExpiresIn:    int64(srv.tokenSvc.AccessTokenTTL().Seconds()),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes the session carrying the given refresh token. Unknown tokens
// succeed silently; logging out twice is not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domainerrors.ErrRefreshTokenRequired
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteByHash(ctx, srv.tokenSvc.HashToken(refreshToken)); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// CleanupExpiredSessions sweeps expired session rows from storage.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RefreshTokenRepo().DeleteExpired(ctx); err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Expired sessions cleaned up")

	return nil
}
