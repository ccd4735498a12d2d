package httpfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMediaType(t *testing.T) {
	t.Run("lowercases type and subtype", func(t *testing.T) {
		mt, err := ParseMediaType("TexT/pLAIn")
		require.NoError(t, err)
		require.Equal(t, "text", mt.Type)
		require.Equal(t, "plain", mt.Subtype)
		require.Empty(t, mt.Parameters)
	})

	t.Run("lowercases parameter names but not quoted values", func(t *testing.T) {
		mt, err := ParseMediaType(`text/*; CharSet=utf-8 ;    Alternative-Coding="Bla Bla Bla"`)
		require.NoError(t, err)
		require.Equal(t, "text", mt.Type)
		require.Equal(t, "*", mt.Subtype)
		require.Equal(t, PairList{
			{Name: "charset", Value: "utf-8"},
			{Name: "alternative-coding", Value: "Bla Bla Bla"},
		}, mt.Parameters)
	})

	t.Run("preserves a token parameter value's case", func(t *testing.T) {
		mt, err := ParseMediaType(`*/*;foO=BaZ`)
		require.NoError(t, err)
		require.Equal(t, PairList{{Name: "foo", Value: "BaZ"}}, mt.Parameters)
	})

	t.Run("rejects a missing subtype", func(t *testing.T) {
		_, err := ParseMediaType("text")
		require.Error(t, err)
	})
}
