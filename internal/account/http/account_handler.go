// Package http provides HTTP handlers for account registration and login.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/account/http/dto"
	accountUseCase "github.com/allisson/accounts/internal/account/usecase"
	"github.com/allisson/accounts/internal/httputil"
	customValidation "github.com/allisson/accounts/internal/validation"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	accountUseCase accountUseCase.UseCase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler with required dependencies.
func NewAccountHandler(
	accountUseCase accountUseCase.UseCase,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// RegisterHandler registers a new account and issues its first session token.
// POST /v1/register - No authentication required.
// Returns 201 Created with the account and a plain text token.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Validated as a UUID by the request rules
	localID := uuid.MustParse(req.LocalID)

	// Create input for use case
	input := &accountDomain.RegisterAccountInput{
		LocalID:   localID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	}

	// Call use case
	output, err := h.accountUseCase.Register(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAuthOutputToResponse(output))
}

// LoginHandler verifies credentials and issues a new session token.
// POST /v1/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the account and a plain text token.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Create input for use case
	input := &accountDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	// Call use case
	output, err := h.accountUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuthOutputToResponse(output))
}
