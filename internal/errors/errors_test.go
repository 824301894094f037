package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrNotFound, "account lookup")
		assert.EqualError(t, err, "account lookup: not found")
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})

	t.Run("preserves chain across multiple wraps", func(t *testing.T) {
		inner := Wrap(ErrConflict, "duplicate email")
		outer := Wrap(inner, "register account")
		assert.True(t, Is(outer, ErrConflict))
		assert.EqualError(t, outer, "register account: duplicate email: conflict")
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrUnauthorized)
	assert.True(t, Is(err, ErrUnauthorized))
	assert.False(t, Is(err, ErrForbidden))
}

func TestNew(t *testing.T) {
	err := New("boom")
	assert.EqualError(t, err, "boom")
}
