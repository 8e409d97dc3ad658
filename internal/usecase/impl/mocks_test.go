package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes for the repository and service interfaces. They model the
// same observable behavior as the Postgres implementations: sentinel errors
// on missing rows and a conditional update for rotation.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	users       *fakeUserRepo
	refresh     *fakeRefreshTokenRepo
	players     repository.PlayerRepository
	classes     repository.ClassRepository
	enrollments repository.EnrollmentRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository                 { return f.users }
func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.refresh }
func (f *fakeRepoFactory) PlayerRepo() repository.PlayerRepository             { return f.players }
func (f *fakeRepoFactory) ClassRepo() repository.ClassRepository               { return f.classes }
func (f *fakeRepoFactory) EnrollmentRepo() repository.EnrollmentRepository     { return f.enrollments }

type fakeUserRepo struct {
	byID map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{byID: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.byID[u.ID] = u
	}

	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.byID[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.byID))
	for _, user := range r.byID {
		copied := *user
		users = append(users, &copied)
	}

	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.byID[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.byID, id)

	return nil
}

type fakeRefreshTokenRepo struct {
	byID map[uuid.UUID]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byID: make(map[uuid.UUID]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(ctx context.Context, token *entity.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	now := time.Now()
	token.CreatedAt = now
	token.UpdatedAt = now
	copied := *token
	r.byID[token.ID] = &copied

	return nil
}

func (r *fakeRefreshTokenRepo) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	for _, session := range r.byID {
		if session.TokenHash == tokenHash {
			copied := *session

			return &copied, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *fakeRefreshTokenRepo) Rotate(ctx context.Context, id uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	session, ok := r.byID[id]
	if !ok || session.TokenHash != oldHash {
		return repository.ErrRefreshTokenNotFound
	}

	session.TokenHash = newHash
	session.ExpiresAt = expiresAt
	session.UpdatedAt = time.Now()

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByHash(ctx context.Context, tokenHash string) error {
	for id, session := range r.byID {
		if session.TokenHash == tokenHash {
			delete(r.byID, id)

			return nil
		}
	}

	return repository.ErrRefreshTokenNotFound
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	for id, session := range r.byID {
		if session.UserID == userID {
			delete(r.byID, id)
		}
	}

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	for id, session := range r.byID {
		if session.Expired(now) {
			delete(r.byID, id)
		}
	}

	return nil
}

// stubHasher avoids bcrypt cost in tests; the hash is just a tagged copy.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService produces deterministic, sequence-numbered tokens.
type stubTokenService struct {
	counter   int
	accessTTL time.Duration
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{accessTTL: time.Hour}
}

func (s *stubTokenService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return "access-" + email, nil
}

func (s *stubTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubTokenService) NewRefreshToken() (string, error) {
	s.counter++

	return fmt.Sprintf("refresh-%d", s.counter), nil
}

func (s *stubTokenService) HashToken(raw string) string {
	return "h:" + raw
}

func (s *stubTokenService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
