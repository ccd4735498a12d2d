package easyparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenProducer(t *testing.T) {
	p := TokenProducer()

	t.Run("consumes a maximal tchar run", func(t *testing.T) {
		c := NewCursor([]byte("foo-bar/baz"))
		v, err := p(c)
		require.NoError(t, err)
		require.Equal(t, "foo-bar", v)
		require.Equal(t, "/baz", string(c.Remaining()))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		c := NewCursor([]byte(""))
		_, err := p(c)
		require.Error(t, err)
	})

	t.Run("rejects a leading non-tchar byte", func(t *testing.T) {
		c := NewCursor([]byte("/foo"))
		_, err := p(c)
		require.Error(t, err)
	})
}

func TestQuotedStringProducer(t *testing.T) {
	p := QuotedStringProducer()

	t.Run("unescapes a quoted-pair", func(t *testing.T) {
		c := NewCursor([]byte(`"Bla \"Bla\" Bla"`))
		v, err := p(c)
		require.NoError(t, err)
		require.Equal(t, `Bla "Bla" Bla`, v)
		require.True(t, c.EOF())
	})

	t.Run("allows an empty quoted string", func(t *testing.T) {
		c := NewCursor([]byte(`""`))
		v, err := p(c)
		require.NoError(t, err)
		require.Equal(t, "", v)
	})

	t.Run("fails when unterminated", func(t *testing.T) {
		c := NewCursor([]byte(`"unterminated`))
		_, err := p(c)
		require.Error(t, err)
	})

	t.Run("requires a leading DQUOTE", func(t *testing.T) {
		c := NewCursor([]byte(`plain`))
		_, err := p(c)
		require.Error(t, err)
	})
}

func TestOWSProducer(t *testing.T) {
	p := OWSProducer()

	c := NewCursor([]byte(" \t\t  rest"))
	_, err := p(c)
	require.NoError(t, err)
	require.Equal(t, "rest", string(c.Remaining()))

	c = NewCursor([]byte("rest"))
	_, err = p(c)
	require.NoError(t, err)
	require.Equal(t, "rest", string(c.Remaining()))
}

func TestTokenOrQuotedStringProducer(t *testing.T) {
	p := TokenOrQuotedStringProducer()

	t.Run("prefers a quoted string", func(t *testing.T) {
		c := NewCursor([]byte(`"Bla Bla Bla"`))
		v, err := p(c)
		require.NoError(t, err)
		require.Equal(t, "Bla Bla Bla", v)
	})

	t.Run("falls back to a token", func(t *testing.T) {
		c := NewCursor([]byte("BaZ"))
		v, err := p(c)
		require.NoError(t, err)
		require.Equal(t, "BaZ", v)
	})

	t.Run("fails on neither", func(t *testing.T) {
		c := NewCursor([]byte(" "))
		_, err := p(c)
		require.Error(t, err)
	})
}
