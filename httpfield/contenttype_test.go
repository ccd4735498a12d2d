package httpfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("application/json; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, "application", ct.MediaType.Type)
	require.Equal(t, "json", ct.MediaType.Subtype)
	require.Equal(t, PairList{{Name: "charset", Value: "utf-8"}}, ct.MediaType.Parameters)
}
