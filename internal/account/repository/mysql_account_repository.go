// Package repository provides data persistence implementations for account entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/database"

	apperrors "github.com/allisson/accounts/internal/errors"
)

// MySQLAccountRepository handles account persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewMySQLAccountRepository creates a new MySQLAccountRepository.
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{
		db: db,
	}
}

// Create inserts a new account. Uniqueness of local_id and email is enforced by
// database constraints; a violation maps to the field-specific domain error.
func (r *MySQLAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO accounts (id, local_id, first_name, last_name, name, email, password_hash, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := account.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal account id")
	}

	localID, err := account.LocalID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal local id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		localID,
		account.FirstName,
		account.LastName,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return duplicateAccountError(err)
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *MySQLAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, local_id, first_name, last_name, name, email, password_hash, created_at, updated_at
			  FROM accounts WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal account id")
	}

	if err := r.scanAccount(querier.QueryRowContext(ctx, query, idBytes), &account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by id")
	}

	return &account, nil
}

// GetByEmail retrieves an account by email. The caller is expected to have
// normalized the email to lower case.
func (r *MySQLAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, local_id, first_name, last_name, name, email, password_hash, created_at, updated_at
			  FROM accounts WHERE email = ?`

	if err := r.scanAccount(querier.QueryRowContext(ctx, query, email), &account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by email")
	}

	return &account, nil
}

// scanAccount scans a row into an account, converting BINARY(16) columns back to UUIDs.
func (r *MySQLAccountRepository) scanAccount(row *sql.Row, account *domain.Account) error {
	var idBytes, localIDBytes []byte

	err := row.Scan(
		&idBytes,
		&localIDBytes,
		&account.FirstName,
		&account.LastName,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := account.ID.UnmarshalBinary(idBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal account id")
	}
	if err := account.LocalID.UnmarshalBinary(localIDBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal local id")
	}

	return nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
