package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pssports/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	// Create test config
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.AccessTTL = time.Hour

	// Create JWT service
	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Test data
	userID := uuid.New()
	email := "treinador@escola.com"

	// Generate access token
	accessToken, err := jwtService.GenerateAccessToken(userID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	// Validate access token
	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateAccessToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfgA := &config.Config{}
	cfgA.JWT.Secret = "secret_a_very_long_for_testing"
	cfgB := &config.Config{}
	cfgB.JWT.Secret = "secret_b_very_long_for_testing"

	serviceA, err := NewJWTService(cfgA, testLogger())
	assert.NoError(t, err)
	serviceB, err := NewJWTService(cfgB, testLogger())
	assert.NoError(t, err)

	token, err := serviceA.GenerateAccessToken(uuid.New(), "aluno@escola.com")
	assert.NoError(t, err)

	// A token signed with one secret must not validate under another.
	claims, err := serviceB.ValidateAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.AccessTTL = time.Millisecond

	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), "aluno@escola.com")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	claims, err := jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecretInProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction

	// Should fail to create service
	jwtService, err := NewJWTService(cfg, testLogger())
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_EmptySecretInDevelopment(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "development"

	// Falls back to the development secret with a warning.
	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)
}

func TestJWTService_NewRefreshToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)

	first, err := jwtService.NewRefreshToken()
	assert.NoError(t, err)
	second, err := jwtService.NewRefreshToken()
	assert.NoError(t, err)

	// Opaque values are random and never repeat.
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)

	// Hashing is deterministic and never exposes the raw value.
	hash := jwtService.HashToken(first)
	assert.Equal(t, jwtService.HashToken(first), hash)
	assert.NotEqual(t, first, hash)
	assert.Len(t, hash, 64) // hex-encoded SHA-256
}

func TestJWTService_AccessTokenTTLDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg, testLogger())
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.AccessTokenTTL())
}
