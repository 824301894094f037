// Package repository provides data persistence implementations for session tokens.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sessionDomain "github.com/allisson/accounts/internal/session/domain"

	"github.com/allisson/accounts/internal/database"
	apperrors "github.com/allisson/accounts/internal/errors"
)

// MySQLTokenRepository implements Token persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// NewMySQLTokenRepository creates a new MySQL Token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}

// Create inserts a new Token. The unique index on token_hash turns the
// astronomically unlikely digest collision into ErrTokenAlreadyExists, which
// issuance handles by regenerating.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *sessionDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tokens (id, token_hash, account_id, expires_at, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	accountID, err := token.AccountID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal account id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		token.TokenHash,
		accountID,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		if isMySQLTokenUniqueViolation(err) {
			return sessionDomain.ErrTokenAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// GetByTokenHash retrieves a Token by exact digest match. Returns
// ErrTokenNotFound when no record exists; a revoked token looks identical to
// one that was never issued.
func (m *MySQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, account_id, expires_at, created_at
			  FROM tokens WHERE token_hash = ?`

	var token sessionDomain.Token
	var idBytes, accountIDBytes []byte

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
		&token.TokenHash,
		&accountIDBytes,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	if err := token.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token id")
	}
	if err := token.AccountID.UnmarshalBinary(accountIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal account id")
	}

	return &token, nil
}

// DeleteByTokenHash removes the token record. Returns ErrTokenNotFound when no
// record was deleted, so revoking an already-revoked token reports failure.
func (m *MySQLTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE token_hash = ?`

	result, err := querier.ExecContext(ctx, query, tokenHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return sessionDomain.ErrTokenNotFound
	}

	return nil
}

// DeleteExpired removes tokens whose expiry is before the given instant.
// Returns the number of deleted records.
func (m *MySQLTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE expires_at IS NOT NULL AND expires_at < ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired tokens")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}

	return affected, nil
}

// CountExpired counts tokens whose expiry is before the given instant without
// deleting them. Used for dry-run maintenance.
func (m *MySQLTokenRepository) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM tokens WHERE expires_at IS NOT NULL AND expires_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, now).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired tokens")
	}

	return count, nil
}

// isMySQLTokenUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLTokenUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
