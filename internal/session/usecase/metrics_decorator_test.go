package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

type mockSessionUseCase struct {
	mock.Mock
}

func (m *mockSessionUseCase) Issue(ctx context.Context, accountID uuid.UUID) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func (m *mockSessionUseCase) Authenticate(ctx context.Context, tokenHash string) (*accountDomain.Account, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

func (m *mockSessionUseCase) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockSessionUseCase) CleanupExpired(ctx context.Context, dryRun bool) (int64, error) {
	args := m.Called(ctx, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

func TestSessionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())

	t.Run("Issue success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Issue", ctx, accountID).Return("plain-token", nil).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "token_issue", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "token_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		plainToken, err := uc.Issue(ctx, accountID)
		assert.NoError(t, err)
		assert.Equal(t, "plain-token", plainToken)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate error", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("error")
		mockNext.On("Authenticate", ctx, "token-hash").Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "token_authenticate", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "token_authenticate", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		account, err := uc.Authenticate(ctx, "token-hash")
		assert.Error(t, err)
		assert.Nil(t, account)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Revoke success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Revoke", ctx, "token-hash").Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "token_revoke", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "token_revoke", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.Revoke(ctx, "token-hash")
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CleanupExpired success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("CleanupExpired", ctx, true).Return(int64(7), nil).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "token_cleanup", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "token_cleanup", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		count, err := uc.CleanupExpired(ctx, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
