package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devlink/social-api/internal/core/domain"
)

const defaultTokenTTL = 100 * time.Hour

// TokenService issues and verifies HS256 bearer tokens. The payload carries
// the user id nested under a "user" claim plus the standard exp claim; there
// is no refresh mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding userID and an expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates token and returns the embedded user id.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	id, ok := user["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
