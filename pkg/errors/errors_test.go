package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeStorage, "failed to load profile", cause)

	require.EqualError(t, err, "failed to load profile: connection refused")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, CodeStorage))
	require.False(t, IsCode(err, CodeNotFound))

	wrapped := fmt.Errorf("handler: %w", err)
	require.Equal(t, CodeStorage, CodeOf(wrapped))
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeNotFound, "profile not found", nil)
	require.EqualError(t, err, "profile not found")
	require.Nil(t, errors.Unwrap(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
}
