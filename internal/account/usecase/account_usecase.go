package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	accountService "github.com/allisson/accounts/internal/account/service"
	"github.com/allisson/accounts/internal/config"
	"github.com/allisson/accounts/internal/database"
)

// accountUseCase implements UseCase for account registration and login.
type accountUseCase struct {
	config          *config.Config
	txManager       database.TxManager
	accountRepo     AccountRepository
	passwordService accountService.PasswordService
	tokenIssuer     TokenIssuer
}

// NewAccountUseCase creates a new account UseCase with the provided dependencies.
func NewAccountUseCase(
	config *config.Config,
	txManager database.TxManager,
	accountRepo AccountRepository,
	passwordService accountService.PasswordService,
	tokenIssuer TokenIssuer,
) UseCase {
	return &accountUseCase{
		config:          config,
		txManager:       txManager,
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenIssuer:     tokenIssuer,
	}
}

// Register creates a new account and issues its first session token.
func (a *accountUseCase) Register(
	ctx context.Context,
	registerInput *accountDomain.RegisterAccountInput,
) (*accountDomain.AuthOutput, error) {
	if utf8.RuneCountInString(registerInput.Password) < a.config.PasswordMinLength {
		return nil, accountDomain.ErrWeakPassword
	}

	// Hash outside the transaction: argon2id is deliberately slow and must not
	// hold a database transaction open.
	passwordHash, err := a.passwordService.HashPassword(ctx, registerInput.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &accountDomain.Account{
		ID:           uuid.Must(uuid.NewV7()),
		LocalID:      registerInput.LocalID,
		FirstName:    registerInput.FirstName,
		LastName:     registerInput.LastName,
		Name:         registerInput.Name,
		Email:        normalizeEmail(registerInput.Email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The account row and its first token are created atomically; a duplicate
	// email or local_id surfaces here as a constraint violation from Create.
	var plainToken string
	err = a.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := a.accountRepo.Create(ctx, account); err != nil {
			return err
		}
		plainToken, err = a.tokenIssuer.Issue(ctx, account.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &accountDomain.AuthOutput{
		Account:    account,
		PlainToken: plainToken,
	}, nil
}

// Login verifies the credentials and issues a session token.
func (a *accountUseCase) Login(
	ctx context.Context,
	loginInput *accountDomain.LoginInput,
) (*accountDomain.AuthOutput, error) {
	account, err := a.accountRepo.GetByEmail(ctx, normalizeEmail(loginInput.Email))
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			// Burn a hash verification so an unknown email takes as long as a
			// wrong password, then fail with the same generic error.
			a.passwordService.VerifyDummy(ctx, loginInput.Password)
			return nil, accountDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := a.passwordService.VerifyPassword(ctx, loginInput.Password, account.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, accountDomain.ErrInvalidCredentials
	}

	plainToken, err := a.tokenIssuer.Issue(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &accountDomain.AuthOutput{
		Account:    account,
		PlainToken: plainToken,
	}, nil
}

// normalizeEmail lowercases and trims the address so lookups and the unique
// index agree on a canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
