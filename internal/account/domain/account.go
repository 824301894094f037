// Package domain defines the core account domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/errors"
)

// Account represents a registered identity in the system.
// PasswordHash is a one-way argon2id digest and must never be exposed to callers.
type Account struct {
	ID           uuid.UUID
	LocalID      uuid.UUID
	FirstName    string
	LastName     string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterAccountInput contains the parameters for registering a new account.
// LocalID is a caller-supplied external identifier and must be unique, as must Email.
type RegisterAccountInput struct {
	LocalID   uuid.UUID // External identifier supplied by the caller (unique)
	FirstName string
	LastName  string
	Name      string // Display name
	Email     string // Unique, stored lowercased
	Password  string // Plain text, hashed before storage and never persisted as-is
}

// LoginInput contains the credentials presented for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput contains the result of a successful register or login.
// SECURITY: PlainToken is the only time the session token is available in
// plain text; only its digest is stored.
type AuthOutput struct {
	Account    *Account
	PlainToken string
}

// Domain-specific errors for account operations.
var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrEmailAlreadyRegistered indicates an account with the same email already exists.
	ErrEmailAlreadyRegistered = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrLocalIDAlreadyRegistered indicates an account with the same local id already exists.
	ErrLocalIDAlreadyRegistered = errors.Wrap(errors.ErrConflict, "local_id already registered")

	// ErrWeakPassword indicates the password doesn't meet the configured minimum length.
	ErrWeakPassword = errors.Wrap(errors.ErrInvalidInput, "password does not meet the minimum length")

	// ErrInvalidCredentials indicates the email/password pair doesn't match any account.
	// Deliberately covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")
)
