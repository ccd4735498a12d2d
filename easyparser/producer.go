package easyparser

import (
	"github.com/horu/restinio/errors"
	"github.com/horu/restinio/internal/ascii"
)

// Producer reads from a Cursor and yields a typed value. On success it may
// have advanced the cursor; on failure it must leave the cursor exactly
// where it found it.
type Producer[V any] func(c *Cursor) (V, error)

// SymbolProducer succeeds iff the next byte equals want, consumes it, and
// yields the consumed byte.
func SymbolProducer(want byte) Producer[byte] {
	return func(c *Cursor) (byte, error) {
		got, ok := c.Peek()
		if !ok {
			return 0, errors.EOF(c.Pos(), string(want))
		}
		if got != want {
			return 0, errors.Unexpectedf(c.Pos(), string(want))
		}

		c.Advance(1)
		return got, nil
	}
}

// TokenProducer consumes a non-empty maximal run of tchar bytes (RFC 7230's
// token production) and yields it.
func TokenProducer() Producer[string] {
	return func(c *Cursor) (string, error) {
		start := c.Pos()
		remaining := c.Remaining()

		n := 0
		for n < len(remaining) && ascii.IsTChar(remaining[n]) {
			n++
		}

		if n == 0 {
			if len(remaining) == 0 {
				return "", errors.EOF(start, "tchar")
			}
			return "", errors.Unexpectedf(start, "tchar")
		}

		c.Advance(n)
		return string(remaining[:n]), nil
	}
}

// QuotedStringProducer requires a leading DQUOTE, then zero or more
// qdtext/quoted-pair bytes, then a closing DQUOTE, and yields the
// unescaped, unquoted content.
func QuotedStringProducer() Producer[string] {
	return func(c *Cursor) (string, error) {
		start := c.Pos()

		b, ok := c.Peek()
		if !ok {
			return "", errors.EOF(start, `'"'`)
		}
		if b != '"' {
			return "", errors.Unexpectedf(start, `'"'`)
		}
		c.Advance(1)

		var out []byte
		for {
			b, ok := c.Peek()
			if !ok {
				c.Rewind(Position(start))
				return "", errors.New(start, errors.UnterminatedQuotedString, "unterminated quoted string")
			}

			if b == '"' {
				c.Advance(1)
				return string(out), nil
			}

			if b == '\\' {
				esc, ok := c.PeekAt(1)
				if !ok || !ascii.IsQuotedPairByte(esc) {
					err := errors.New(c.Pos(), errors.UnterminatedQuotedString, "invalid quoted-pair")
					c.Rewind(Position(start))
					return "", err
				}
				out = append(out, esc)
				c.Advance(2)
				continue
			}

			if !ascii.IsQDText(b) {
				err := errors.Unexpectedf(c.Pos(), "qdtext or quoted-pair")
				c.Rewind(Position(start))
				return "", err
			}

			out = append(out, b)
			c.Advance(1)
		}
	}
}

// OWSProducer consumes *( SP / HTAB ) and never fails.
func OWSProducer() Producer[struct{}] {
	return func(c *Cursor) (struct{}, error) {
		for {
			b, ok := c.Peek()
			if !ok || !ascii.IsOWS(b) {
				break
			}
			c.Advance(1)
		}

		return struct{}{}, nil
	}
}

// TokenOrQuotedStringProducer realizes the very common
// ( token / quoted-string ) alternative used by parameter values across
// every grammar in this module.
func TokenOrQuotedStringProducer() Producer[string] {
	token := TokenProducer()
	quoted := QuotedStringProducer()

	return func(c *Cursor) (string, error) {
		pos := c.Mark()

		v, err := quoted(c)
		if err == nil {
			return v, nil
		}
		c.Rewind(pos)

		v, tokErr := token(c)
		if tokErr == nil {
			return v, nil
		}
		c.Rewind(pos)

		return "", errors.Furthest(asParseError(err), asParseError(tokErr))
	}
}

func asParseError(err error) *errors.ParseError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*errors.ParseError); ok {
		return pe
	}

	return errors.New(0, errors.Unexpected, err.Error())
}
