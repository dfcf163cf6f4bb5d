package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidVolume", ErrInvalidVolume},
		{"ErrDuplicateName", ErrDuplicateName},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrHistoryUnavailable", ErrHistoryUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: 3, Token: "abc", Err: ErrInvalidVolume}

	assert.Equal(t, `line 3: "abc": invalid volume`, err.Error())
}

func TestParseError_Unwrap(t *testing.T) {
	var err error = &ParseError{Line: 1, Token: "x", Err: ErrInvalidVolume}
	wrapped := fmt.Errorf("loading volumes: %w", err)

	assert.ErrorIs(t, wrapped, ErrInvalidVolume)

	var parseErr *ParseError
	require.ErrorAs(t, wrapped, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "x", parseErr.Token)
}
