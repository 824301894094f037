// Package usecase implements the session token lifecycle: issuance,
// resolution, and revocation of opaque bearer tokens.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	sessionDomain "github.com/allisson/accounts/internal/session/domain"
	sessionService "github.com/allisson/accounts/internal/session/service"

	"github.com/allisson/accounts/internal/config"
	apperrors "github.com/allisson/accounts/internal/errors"
)

// sessionUseCase implements UseCase backed by a token repository.
type sessionUseCase struct {
	config       *config.Config
	accountRepo  AccountRepository
	tokenRepo    TokenRepository
	tokenService sessionService.TokenService
}

// NewSessionUseCase creates a new session UseCase with the provided dependencies.
func NewSessionUseCase(
	config *config.Config,
	accountRepo AccountRepository,
	tokenRepo TokenRepository,
	tokenService sessionService.TokenService,
) UseCase {
	return &sessionUseCase{
		config:       config,
		accountRepo:  accountRepo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}

// Issue generates a token, persists its digest, and returns the plaintext.
//
// The unique index on token_hash makes a digest collision a conflict error
// instead of a silent overwrite; issuance regenerates and retries up to
// SessionTokenIssueMaxRetries times. With 256-bit tokens a single retry is
// already beyond unlikely.
func (s *sessionUseCase) Issue(ctx context.Context, accountID uuid.UUID) (string, error) {
	attempts := s.config.SessionTokenIssueMaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		plainToken, tokenHash, err := s.tokenService.GenerateToken()
		if err != nil {
			return "", err
		}

		token := &sessionDomain.Token{
			ID:        uuid.Must(uuid.NewV7()),
			TokenHash: tokenHash,
			AccountID: accountID,
			ExpiresAt: s.expiresAt(),
			CreatedAt: time.Now().UTC(),
		}

		err = s.tokenRepo.Create(ctx, token)
		if err == nil {
			return plainToken, nil
		}
		if !errors.Is(err, sessionDomain.ErrTokenAlreadyExists) {
			return "", err
		}
		lastErr = err
	}

	return "", apperrors.Wrap(lastErr, "token issuance exhausted retries")
}

// Authenticate resolves a token digest to the owning account.
//
// Security notes:
//   - Missing, revoked, and expired tokens all return ErrInvalidToken so the
//     response doesn't reveal which case applied.
//   - A dangling account reference (shouldn't happen given the foreign key)
//     is also collapsed into ErrInvalidToken.
func (s *sessionUseCase) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*accountDomain.Account, error) {
	token, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrTokenNotFound) {
			return nil, sessionDomain.ErrInvalidToken
		}
		return nil, err
	}

	if token.Expired(time.Now().UTC()) {
		return nil, sessionDomain.ErrInvalidToken
	}

	account, err := s.accountRepo.GetByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			return nil, sessionDomain.ErrInvalidToken
		}
		return nil, err
	}

	return account, nil
}

// Revoke deletes the token record for the digest.
func (s *sessionUseCase) Revoke(ctx context.Context, tokenHash string) error {
	err := s.tokenRepo.DeleteByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrTokenNotFound) {
			return sessionDomain.ErrInvalidToken
		}
		return err
	}
	return nil
}

// CleanupExpired deletes (or with dryRun, counts) tokens past their expiry.
func (s *sessionUseCase) CleanupExpired(ctx context.Context, dryRun bool) (int64, error) {
	now := time.Now().UTC()
	if dryRun {
		return s.tokenRepo.CountExpired(ctx, now)
	}
	return s.tokenRepo.DeleteExpired(ctx, now)
}

// expiresAt computes the expiry for a newly issued token, or nil when
// expiration is disabled.
func (s *sessionUseCase) expiresAt() *time.Time {
	if s.config.SessionTokenExpiration <= 0 {
		return nil
	}
	expiresAt := time.Now().UTC().Add(s.config.SessionTokenExpiration)
	return &expiresAt
}
