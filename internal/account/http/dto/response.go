// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
)

// AccountResponse represents an account in API responses (excludes the password hash).
type AccountResponse struct {
	ID        string    `json:"id"`
	LocalID   string    `json:"local_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapAccountToResponse converts a domain account to an API response.
func MapAccountToResponse(account *accountDomain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		LocalID:   account.LocalID.String(),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AuthResponse contains the result of a successful register or login.
// SECURITY: The token is only returned once and must be saved securely.
type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

// MapAuthOutputToResponse converts an auth result to an API response.
func MapAuthOutputToResponse(output *accountDomain.AuthOutput) AuthResponse {
	return AuthResponse{
		Account: MapAccountToResponse(output.Account),
		Token:   output.PlainToken,
	}
}
