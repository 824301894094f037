package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		LocalID:   uuid.Must(uuid.NewV7()).String(),
		FirstName: "Alice",
		LastName:  "Smith",
		Name:      "Alice Smith",
		Email:     "alice@example.com",
		Password:  "correct-horse",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		req := validRegisterRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("Missing local_id", func(t *testing.T) {
		req := validRegisterRequest()
		req.LocalID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("Malformed local_id", func(t *testing.T) {
		req := validRegisterRequest()
		req.LocalID = "not-a-uuid"
		assert.Error(t, req.Validate())
	})

	t.Run("Missing first_name", func(t *testing.T) {
		req := validRegisterRequest()
		req.FirstName = ""
		assert.Error(t, req.Validate())
	})

	t.Run("Blank name", func(t *testing.T) {
		req := validRegisterRequest()
		req.Name = "   "
		assert.Error(t, req.Validate())
	})

	t.Run("Invalid email", func(t *testing.T) {
		req := validRegisterRequest()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("Missing password", func(t *testing.T) {
		req := validRegisterRequest()
		req.Password = ""
		assert.Error(t, req.Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		req := LoginRequest{Email: "alice@example.com", Password: "correct-horse"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Invalid email", func(t *testing.T) {
		req := LoginRequest{Email: "nope", Password: "correct-horse"}
		assert.Error(t, req.Validate())
	})

	t.Run("Missing password", func(t *testing.T) {
		req := LoginRequest{Email: "alice@example.com"}
		assert.Error(t, req.Validate())
	})
}
