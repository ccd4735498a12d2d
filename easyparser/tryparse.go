package easyparser

import (
	"github.com/indigo-web/utils/uf"

	"github.com/horu/restinio/errors"
)

// TryParse drives p against view and, on success, requires the cursor to
// have reached end-of-input. Any byte left over after p succeeds is
// reported as TrailingInput rather than silently ignored.
func TryParse[T any](view []byte, p Producer[T]) (T, error) {
	c := NewCursor(view)

	v, err := p(c)
	if err != nil {
		var zero T
		return zero, err
	}

	if !c.EOF() {
		var zero T
		return zero, errors.New(c.Pos(), errors.TrailingInput, "trailing input after a successful parse")
	}

	return v, nil
}

// TryParseString is the zero-copy string convenience wrapper around
// TryParse, the same zero-copy boundary used at header/body handoff
// points: the byte view it hands to the cursor aliases string's backing
// array for the duration of this call and is never retained afterwards.
func TryParseString[T any](view string, p Producer[T]) (T, error) {
	return TryParse(uf.S2B(view), p)
}
