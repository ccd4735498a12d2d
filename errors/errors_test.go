package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError_Unwrap(t *testing.T) {
	err := Unexpectedf(4, "tchar")
	require.True(t, stderrors.Is(err, ErrUnexpected))
	require.False(t, stderrors.Is(err, ErrTrailingInput))
}

func TestFurthest(t *testing.T) {
	t.Run("nil a yields b", func(t *testing.T) {
		b := New(3, Unexpected, "x")
		require.Same(t, b, Furthest(nil, b))
	})

	t.Run("nil b yields a", func(t *testing.T) {
		a := New(3, Unexpected, "x")
		require.Same(t, a, Furthest(a, nil))
	})

	t.Run("greater Pos wins", func(t *testing.T) {
		a := New(3, Unexpected, "x")
		b := New(7, Unexpected, "y")
		require.Same(t, b, Furthest(a, b))
		require.Same(t, b, Furthest(b, a))
	})
}

func TestDescribe(t *testing.T) {
	input := []byte("application/json;charset")
	err := New(17, UnterminatedQuotedString, "unterminated quoted string")

	out := Describe(err, input)
	require.Contains(t, out, "unterminated quoted string")
	require.Contains(t, out, "^")
}

func TestDescribe_CaretAccountsForLeadingTrim(t *testing.T) {
	// The excerpt's leading whitespace is stripped before the caret line is
	// built, so the caret offset must be shifted left by the same amount
	// the excerpt was, or it prints under the wrong byte.
	input := []byte("    key=value")
	pos := 8 // the 'v' of "value"
	require.Equal(t, byte('v'), input[pos])

	err := New(pos, Unexpected, "unexpected byte")
	out := Describe(err, input)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "key=value", lines[1])

	caretCol := strings.IndexByte(lines[2], '^')
	require.Equal(t, strings.IndexByte(lines[1], 'v'), caretCol)
}

func TestDescribe_NonParseError(t *testing.T) {
	err := stderrors.New("plain failure")
	require.Equal(t, "plain failure", Describe(err, nil))
}

func TestLstripWS(t *testing.T) {
	require.Equal(t, "abc", lstripWS("  \tabc"))
	require.Equal(t, "", lstripWS("   "))
	require.Equal(t, "a b", lstripWS("a b"))
}

func TestRstripWS(t *testing.T) {
	require.Equal(t, "abc", rstripWS("abc \t "))
	require.Equal(t, "", rstripWS("   "))
	require.Equal(t, "a b", rstripWS("a b"))
}
