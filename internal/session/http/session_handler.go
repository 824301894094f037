package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accountDto "github.com/allisson/accounts/internal/account/http/dto"
	apperrors "github.com/allisson/accounts/internal/errors"
	"github.com/allisson/accounts/internal/httputil"
	sessionUseCase "github.com/allisson/accounts/internal/session/usecase"
)

// SessionHandler handles HTTP requests for authenticated session operations.
type SessionHandler struct {
	sessionUseCase sessionUseCase.UseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase sessionUseCase.UseCase,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// LogoutHandler revokes the session token the request authenticated with.
// POST /v1/logout - Requires Bearer authentication.
// Returns 204 No Content. Revoking the same token twice fails with 401 since
// the first revocation already deleted it.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	tokenHash, ok := GetTokenHash(c.Request.Context())
	if !ok {
		// AuthenticationMiddleware not run
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.sessionUseCase.Revoke(c.Request.Context(), tokenHash); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// MeHandler returns the account that owns the presented session token.
// GET /v1/me - Requires Bearer authentication.
// Returns 200 OK with the account.
func (h *SessionHandler) MeHandler(c *gin.Context) {
	account, ok := GetAccount(c.Request.Context())
	if !ok {
		// AuthenticationMiddleware not run
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, accountDto.MapAccountToResponse(account))
}
