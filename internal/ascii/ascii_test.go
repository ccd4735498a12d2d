package ascii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLower(t *testing.T) {
	require.Equal(t, byte('a'), ToLower('A'))
	require.Equal(t, byte('z'), ToLower('Z'))
	require.Equal(t, byte('a'), ToLower('a'))
	require.Equal(t, byte('-'), ToLower('-'))
}

func TestToLowerString(t *testing.T) {
	require.Equal(t, "application/json", ToLowerString("Application/JSON"))
}

func TestIsTChar(t *testing.T) {
	for _, b := range []byte("aZ09!#$%&'*+-.^_`|~") {
		require.True(t, IsTChar(b), "expected %q to be a tchar", b)
	}
	for _, b := range []byte(" \t\"(),/:;<=>?@[\\]{}") {
		require.False(t, IsTChar(b), "expected %q not to be a tchar", b)
	}
}

func TestIsQDText(t *testing.T) {
	require.True(t, IsQDText(' '))
	require.True(t, IsQDText('\t'))
	require.True(t, IsQDText('a'))
	require.False(t, IsQDText('"'))
	require.False(t, IsQDText('\\'))
}

func TestEqualFold(t *testing.T) {
	t.Run("equal strings", func(t *testing.T) {
		require.True(t, EqualFold("abc", "abc"))
	})

	t.Run("different cases", func(t *testing.T) {
		require.True(t, EqualFold("abc", "ABC"))
		require.True(t, EqualFold("ABC", "abc"))
		require.True(t, EqualFold("aBc", "AbC"))
	})

	t.Run("different strings equal length", func(t *testing.T) {
		require.False(t, EqualFold("abc", "def"))
	})

	t.Run("different strings by length", func(t *testing.T) {
		require.False(t, EqualFold("abc", "define"))
	})
}
