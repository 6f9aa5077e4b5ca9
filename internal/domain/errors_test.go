package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup %q: %w", "nope", ErrSetNotFound)
	require.Equal(t, "set_not_found", Code(wrapped))
	require.True(t, errors.Is(wrapped, ErrSetNotFound))

	require.Equal(t, "", Code(errors.New("plain")))
	require.Equal(t, "", Code(nil))
}
