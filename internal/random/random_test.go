package random_test

import (
	"testing"

	"github.com/mvirtane/leadwizard/internal/random"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	s, err := random.Letters(24)
	require.NoError(t, err)
	require.Len(t, s, 24)

	s2, err := random.Letters(24)
	require.NoError(t, err)
	require.NotEqual(t, s, s2)

	empty, err := random.Letters(0)
	require.NoError(t, err)
	require.Empty(t, empty)
}
