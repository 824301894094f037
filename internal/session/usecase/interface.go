package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	sessionDomain "github.com/allisson/accounts/internal/session/domain"
)

// UseCase defines the session token lifecycle operations.
type UseCase interface {
	// Issue creates a new token bound to the account and returns the plaintext.
	// The plaintext is shown once; only its digest is stored.
	Issue(ctx context.Context, accountID uuid.UUID) (string, error)

	// Authenticate resolves a token digest to the owning account. Missing,
	// revoked, and expired tokens all fail with ErrInvalidToken.
	Authenticate(ctx context.Context, tokenHash string) (*accountDomain.Account, error)

	// Revoke deletes the token record. Revoking a token that isn't active
	// fails with ErrInvalidToken; the caller isn't told whether it ever existed.
	Revoke(ctx context.Context, tokenHash string) error

	// CleanupExpired deletes tokens past their expiry and returns the count.
	// With dryRun set, only counts.
	CleanupExpired(ctx context.Context, dryRun bool) (int64, error)
}

// TokenRepository interface defines token repository operations.
type TokenRepository interface {
	Create(ctx context.Context, token *sessionDomain.Token) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*sessionDomain.Token, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	CountExpired(ctx context.Context, now time.Time) (int64, error)
}

// AccountRepository is the slice of account persistence the session side needs.
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error)
}
