package auth

import (
	"context"
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

// Role names known to the system. Roles are rows in the roles table; these
// constants name the ones middleware checks against.
const (
	RoleAdmin kernel.RoleName = "Admin"
	RoleUser  kernel.RoleName = "User"
)

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID    kernel.UserID
	Email     kernel.Email
	Roles     []string
	ExpiresAt time.Time
}

// TokenService signs and validates access tokens.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, roles []string) (string, time.Time, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// CredentialStore hashes and verifies passwords.
type CredentialStore interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// ResetTokenStore keeps short-lived password reset tokens.
type ResetTokenStore interface {
	Store(ctx context.Context, email kernel.Email, token string, ttl time.Duration) error
	Verify(ctx context.Context, email kernel.Email, token string) error
	Invalidate(ctx context.Context, email kernel.Email) error
}

// Notifier delivers reset tokens to users out of band.
type Notifier interface {
	SendPasswordReset(ctx context.Context, email kernel.Email, token string) error
}
