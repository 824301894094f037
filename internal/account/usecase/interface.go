// Package usecase implements business logic orchestration for account
// registration and credential verification.
package usecase

import (
	"context"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
)

// AccountRepository defines persistence operations for accounts.
// Implementations must support transaction-aware operations via context propagation.
type AccountRepository interface {
	// Create stores a new account. Returns ErrEmailAlreadyRegistered or
	// ErrLocalIDAlreadyRegistered when a uniqueness constraint is violated.
	Create(ctx context.Context, account *accountDomain.Account) error

	// GetByID retrieves an account by ID. Returns ErrAccountNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error)

	// GetByEmail retrieves an account by email. Returns ErrAccountNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error)
}

// TokenIssuer issues a new session token for an account and returns the
// plain text token. Implemented by the session use case.
type TokenIssuer interface {
	Issue(ctx context.Context, accountID uuid.UUID) (string, error)
}

// UseCase defines business logic operations for account credentials.
type UseCase interface {
	// Register creates a new account and issues its first session token in a
	// single transaction. The password is hashed before storage; uniqueness of
	// email and local_id is enforced by the database so concurrent registrations
	// cannot race past a pre-check.
	//
	// Returns ErrWeakPassword when the password is below the configured minimum
	// length, and ErrEmailAlreadyRegistered / ErrLocalIDAlreadyRegistered on
	// constraint violations.
	Register(
		ctx context.Context,
		registerInput *accountDomain.RegisterAccountInput,
	) (*accountDomain.AuthOutput, error)

	// Login verifies an email/password pair and issues a session token.
	//
	// Returns ErrInvalidCredentials for both unknown email and wrong password;
	// a dummy hash verification keeps the unknown-email path from returning
	// measurably faster.
	Login(ctx context.Context, loginInput *accountDomain.LoginInput) (*accountDomain.AuthOutput, error)
}
