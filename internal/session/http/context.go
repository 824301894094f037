// Package http provides HTTP middleware and handlers for session management.
package http

import (
	"context"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
)

// accountKey is a context key type for storing authenticated accounts.
type accountKey struct{}

// tokenHashKey is a context key type for storing the presented token digest.
type tokenHashKey struct{}

// WithAccount stores an authenticated account in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithAccount(ctx context.Context, account *accountDomain.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// GetAccount retrieves an authenticated account from the context.
// Returns (account, true) if an account is present, or (nil, false) if none was set.
func GetAccount(ctx context.Context) (*accountDomain.Account, bool) {
	account, ok := ctx.Value(accountKey{}).(*accountDomain.Account)
	return account, ok
}

// WithTokenHash stores the digest of the presented session token in the context.
// The logout handler uses it to revoke the exact token the request authenticated with.
func WithTokenHash(ctx context.Context, tokenHash string) context.Context {
	return context.WithValue(ctx, tokenHashKey{}, tokenHash)
}

// GetTokenHash retrieves the presented token digest from the context.
// Returns (tokenHash, true) if present, or ("", false) if not set.
func GetTokenHash(ctx context.Context) (string, bool) {
	tokenHash, ok := ctx.Value(tokenHashKey{}).(string)
	return tokenHash, ok
}
