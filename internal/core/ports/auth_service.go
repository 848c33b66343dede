package ports

import (
	"context"

	"github.com/devlink/social-api/internal/core/domain"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue returns a signed token embedding userID with a fixed TTL.
	Issue(userID string) (string, error)
	// Verify returns the embedded user id. It fails with
	// domain.ErrTokenExpired past the TTL and domain.ErrInvalidToken for
	// any structural or signature problem.
	Verify(token string) (string, error)
}

// AuthService covers registration, login and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
