package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/metrics"
)

// sessionUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a session UseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (s *sessionUseCaseWithMetrics) Issue(ctx context.Context, accountID uuid.UUID) (string, error) {
	start := time.Now()
	plainToken, err := s.next.Issue(ctx, accountID)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "token_issue", status)
	s.metrics.RecordDuration(ctx, "session", "token_issue", time.Since(start), status)

	return plainToken, err
}

// Authenticate records metrics for token resolution operations.
func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := s.next.Authenticate(ctx, tokenHash)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "token_authenticate", status)
	s.metrics.RecordDuration(ctx, "session", "token_authenticate", time.Since(start), status)

	return account, err
}

// Revoke records metrics for token revocation operations.
func (s *sessionUseCaseWithMetrics) Revoke(ctx context.Context, tokenHash string) error {
	start := time.Now()
	err := s.next.Revoke(ctx, tokenHash)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "token_revoke", status)
	s.metrics.RecordDuration(ctx, "session", "token_revoke", time.Since(start), status)

	return err
}

// CleanupExpired records metrics for expired token cleanup operations.
func (s *sessionUseCaseWithMetrics) CleanupExpired(ctx context.Context, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := s.next.CleanupExpired(ctx, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "token_cleanup", status)
	s.metrics.RecordDuration(ctx, "session", "token_cleanup", time.Since(start), status)

	return count, err
}
