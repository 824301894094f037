package usecase

import (
	"context"
	"time"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/metrics"
)

// accountUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type accountUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAccountUseCaseWithMetrics wraps an account UseCase with metrics recording.
func NewAccountUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &accountUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration operations.
func (a *accountUseCaseWithMetrics) Register(
	ctx context.Context,
	registerInput *accountDomain.RegisterAccountInput,
) (*accountDomain.AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Register(ctx, registerInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "register", status)
	a.metrics.RecordDuration(ctx, "account", "register", time.Since(start), status)

	return output, err
}

// Login records metrics for login operations.
func (a *accountUseCaseWithMetrics) Login(
	ctx context.Context,
	loginInput *accountDomain.LoginInput,
) (*accountDomain.AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, loginInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "login", status)
	a.metrics.RecordDuration(ctx, "account", "login", time.Since(start), status)

	return output, err
}
