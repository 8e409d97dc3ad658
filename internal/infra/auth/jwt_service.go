// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pssports/config"
	"pssports/internal/domain/service"
)

const (
	defaultAccessTTL = time.Hour

	// Development-only fallback. Refused in production by config validation
	// and by the constructor below.
	devFallbackSecret = "chave_mestra_temporaria_para_desenvolvimento_123"

	// 256 bits of entropy per refresh token.
	refreshTokenBytes = 32
)

// tokenClaims is the wire form of an access token payload.
type tokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService implements TokenService: HS256 access tokens plus opaque
// refresh-token values (random, hashed before storage).
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret comes
// from configuration; there is no module-level state.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := cfg.JWT.Secret
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("jwt secret must be provided in production")
		}
		logger.Warn("JWT secret not configured, using insecure development fallback")
		secret = devFallbackSecret
	}

	accessTTL := cfg.JWT.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}

	return &jwtService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user id and email.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks the signature and expiry of a token string and
// returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	parsed := new(tokenClaims)

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := uuid.Parse(parsed.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id claim")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            parsed.Email,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}

// NewRefreshToken returns a fresh opaque token value.
func (s *jwtService) NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate refresh token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken derives the SHA-256 digest stored in place of the raw token.
func (s *jwtService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// AccessTokenTTL returns the configured access-token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
