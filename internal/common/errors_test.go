package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewUserError("no roster file given", ErrMissingConfig)
		assert.Equal(t, "no roster file given: missing configuration", err.Error())
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("something went sideways", nil)
		assert.Equal(t, "something went sideways", err.Error())
	})

	t.Run("unwraps through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("run failed: %w", NewUserError("bad input", ErrInvalidConfig))
		var userErr *UserError
		assert.True(t, errors.As(err, &userErr))
		assert.Equal(t, "bad input", userErr.UserMessage)
	})
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrMissingColumn,
		ErrMalformedRow,
		ErrInvalidChamber,
		ErrRosterTooLarge,
		ErrMissingConfig,
		ErrInvalidConfig,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
