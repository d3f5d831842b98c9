package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/lockbox/internal/errors"
)

func TestErrorCategories(t *testing.T) {
	assert.ErrorIs(t, ErrBadPassword, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, ErrKeyLocked, apperrors.ErrLocked)
	assert.ErrorIs(t, ErrKeyMissing, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrUnableToCreateKey, apperrors.ErrInternal)
	assert.ErrorIs(t, ErrBadInternet, apperrors.ErrUnavailable)
	assert.ErrorIs(t, ErrPotentiallyNoInternet, apperrors.ErrUnavailable)
	assert.ErrorIs(t, ErrUnableToDecode, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, ErrNoLongSecret, apperrors.ErrInvalidInput)
}

func TestUnknownError(t *testing.T) {
	code := 600
	message := "server melted"

	t.Run("full detail", func(t *testing.T) {
		err := &UnknownError{Code: &code, Message: &message}
		assert.ErrorIs(t, err, ErrUnknown)
		assert.Contains(t, err.Error(), "600")
		assert.Contains(t, err.Error(), "server melted")
	})

	t.Run("no detail", func(t *testing.T) {
		err := &UnknownError{}
		assert.ErrorIs(t, err, ErrUnknown)
		assert.Equal(t, "unknown key service error", err.Error())
	})
}
