// Package domain defines the session token entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/errors"
)

// Token is the durable record of an issued bearer token. Only the SHA-256
// digest of the plaintext is stored; the plaintext is shown once at issuance
// and never recoverable from the record.
//
// ExpiresAt is nil for tokens without an expiry. Validity predicates live in
// the use case, so new attributes (expiry, scope) can be added without
// changing callers.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	AccountID uuid.UUID
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
// Tokens without an expiry never expire.
func (t *Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// Session token errors.
var (
	// ErrTokenNotFound indicates no record matches the token digest. Revoked
	// and never-issued tokens are indistinguishable here on purpose.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenAlreadyExists indicates a token digest collision on insert.
	ErrTokenAlreadyExists = errors.Wrap(errors.ErrConflict, "token already exists")

	// ErrInvalidToken indicates the presented token doesn't map to a live
	// session. Single boundary-facing kind covering missing, revoked, and
	// expired tokens.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid session token")
)
