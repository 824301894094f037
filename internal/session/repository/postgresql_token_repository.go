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

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

// Create inserts a new Token. The unique index on token_hash turns the
// astronomically unlikely digest collision into ErrTokenAlreadyExists, which
// issuance handles by regenerating.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *sessionDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (id, token_hash, account_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.TokenHash,
		token.AccountID,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		if isPostgreSQLTokenUniqueViolation(err) {
			return sessionDomain.ErrTokenAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// GetByTokenHash retrieves a Token by exact digest match. Returns
// ErrTokenNotFound when no record exists; a revoked token looks identical to
// one that was never issued.
func (p *PostgreSQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, account_id, expires_at, created_at
			  FROM tokens WHERE token_hash = $1`

	var token sessionDomain.Token

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.TokenHash,
		&token.AccountID,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	return &token, nil
}

// DeleteByTokenHash removes the token record. Returns ErrTokenNotFound when no
// record was deleted, so revoking an already-revoked token reports failure.
func (p *PostgreSQLTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE token_hash = $1`

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
func (p *PostgreSQLTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE expires_at IS NOT NULL AND expires_at < $1`

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
func (p *PostgreSQLTokenRepository) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM tokens WHERE expires_at IS NOT NULL AND expires_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, now).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired tokens")
	}

	return count, nil
}

// isPostgreSQLTokenUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLTokenUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
