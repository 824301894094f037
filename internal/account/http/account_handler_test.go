package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/allisson/accounts/internal/account/domain"
	"github.com/allisson/accounts/internal/account/http/dto"
)

// MockAccountUseCase is a mock implementation of UseCase for testing.
type MockAccountUseCase struct {
	mock.Mock
}

func (m *MockAccountUseCase) Register(
	ctx context.Context,
	input *accountDomain.RegisterAccountInput,
) (*accountDomain.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.AuthOutput), args.Error(1)
}

func (m *MockAccountUseCase) Login(
	ctx context.Context,
	input *accountDomain.LoginInput,
) (*accountDomain.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.AuthOutput), args.Error(1)
}

// setupAccountTestHandler creates a test account handler with mocked dependencies.
func setupAccountTestHandler(t *testing.T) (*AccountHandler, *MockAccountUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockAccountUseCase := &MockAccountUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewAccountHandler(mockAccountUseCase, logger)

	return handler, mockAccountUseCase
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestAccountHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		localID := uuid.Must(uuid.NewV7())
		accountID := uuid.Must(uuid.NewV7())
		plainToken := "tok_1234567890abcdef"

		request := dto.RegisterRequest{
			LocalID:   localID.String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "correct-horse",
		}

		expectedOutput := &accountDomain.AuthOutput{
			Account: &accountDomain.Account{
				ID:      accountID,
				LocalID: localID,
				Name:    "Alice Smith",
				Email:   "alice@example.com",
			},
			PlainToken: plainToken,
		}

		mockUseCase.On("Register", mock.Anything, mock.MatchedBy(func(input *accountDomain.RegisterAccountInput) bool {
			return input.LocalID == localID &&
				input.Email == "alice@example.com" &&
				input.Password == "correct-horse"
		})).
			Return(expectedOutput, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.AuthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, plainToken, response.Token)
		assert.Equal(t, accountID.String(), response.Account.ID)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupAccountTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/register", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "bad_request", response["error"])
	})

	t.Run("Error_InvalidLocalID", func(t *testing.T) {
		handler, _ := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   "not-a-uuid",
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "correct-horse",
		}

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		handler, _ := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   uuid.Must(uuid.NewV7()).String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Password:  "correct-horse",
		}

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_WeakPassword", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   uuid.Must(uuid.NewV7()).String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "short",
		}

		mockUseCase.On("Register", mock.Anything, mock.AnythingOfType("*domain.RegisterAccountInput")).
			Return(nil, accountDomain.ErrWeakPassword).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "invalid_input", response["error"])

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   uuid.Must(uuid.NewV7()).String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "correct-horse",
		}

		mockUseCase.On("Register", mock.Anything, mock.AnythingOfType("*domain.RegisterAccountInput")).
			Return(nil, accountDomain.ErrEmailAlreadyRegistered).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "conflict", response["error"])
		assert.Contains(t, response["message"], "email")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_DuplicateLocalID", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   uuid.Must(uuid.NewV7()).String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "correct-horse",
		}

		mockUseCase.On("Register", mock.Anything, mock.AnythingOfType("*domain.RegisterAccountInput")).
			Return(nil, accountDomain.ErrLocalIDAlreadyRegistered).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Contains(t, response["message"], "local_id")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_RepositoryError", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.RegisterRequest{
			LocalID:   uuid.Must(uuid.NewV7()).String(),
			FirstName: "Alice",
			LastName:  "Smith",
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Password:  "correct-horse",
		}

		mockUseCase.On("Register", mock.Anything, mock.AnythingOfType("*domain.RegisterAccountInput")).
			Return(nil, errors.New("database connection failed")).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "internal_error", response["error"])

		mockUseCase.AssertExpectations(t)
	})
}

func TestAccountHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		accountID := uuid.Must(uuid.NewV7())
		plainToken := "tok_1234567890abcdef"

		request := dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "correct-horse",
		}

		expectedInput := &accountDomain.LoginInput{
			Email:    "alice@example.com",
			Password: "correct-horse",
		}

		expectedOutput := &accountDomain.AuthOutput{
			Account: &accountDomain.Account{
				ID:    accountID,
				Email: "alice@example.com",
			},
			PlainToken: plainToken,
		}

		mockUseCase.On("Login", mock.Anything, expectedInput).
			Return(expectedOutput, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AuthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, plainToken, response.Token)
		assert.Equal(t, accountID.String(), response.Account.ID)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupAccountTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/login", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MissingPassword", func(t *testing.T) {
		handler, _ := setupAccountTestHandler(t)

		request := dto.LoginRequest{
			Email: "alice@example.com",
		}

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		}

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
			Return(nil, accountDomain.ErrInvalidCredentials).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "unauthorized", response["error"])

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_RepositoryError", func(t *testing.T) {
		handler, mockUseCase := setupAccountTestHandler(t)

		request := dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "correct-horse",
		}

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
			Return(nil, errors.New("database connection failed")).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/login", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		mockUseCase.AssertExpectations(t)
	})
}
