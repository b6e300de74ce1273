package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMatchCommonAncestor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"empty username", ErrEmptyUsername, "username is empty"},
		{"empty password", ErrEmptyPassword, "password is empty"},
		{"empty search text", ErrEmptySearchText, "text is empty"},
		{"negative count", ErrNegativeCount, "count is negative"},
		{"invalid status", ErrInvalidStatus, "invalid status"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, errors.Is(tc.err, ErrValidation))
			assert.True(t, errors.Is(tc.err, tc.err))
			assert.Equal(t, tc.message, tc.err.Error())
		})
	}
}

func TestWrappedValidationErrorStillMatches(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: %q", ErrInvalidStatus, "Sleeping")
	assert.True(t, errors.Is(wrapped, ErrInvalidStatus))
	assert.True(t, errors.Is(wrapped, ErrValidation))

	assert.False(t, errors.Is(errors.New("unrelated"), ErrValidation))
}
