package easyparser

import "github.com/horu/restinio/errors"

// skipCommas consumes a run of zero or more "," separators, each optionally
// followed by OWS, and reports whether at least one "," was consumed. OWS
// alone, with no literal comma, is never a valid separator between list
// elements.
func skipCommas(c *Cursor) bool {
	saw := false

	for {
		b, ok := c.Peek()
		if !ok || b != ',' {
			return saw
		}
		c.Advance(1)
		skipOWS(c)
		saw = true
	}
}

// listProducer implements RFC 7230's comma-separated list rule. When min is
// 0 it realizes "#element" (a maybe-empty list: an input made up only of
// commas and OWS yields an empty slice). When min is 1 it realizes
// "1#element" (at least one real element is required; an all-separator
// input fails). Only leading junk, ahead of the first element, may consist
// of OWS with no literal comma; between two elements a literal "," is
// mandatory, so whitespace alone never glues two elements together.
func listProducer[E any](min int, element Producer[E]) Producer[[]E] {
	return func(c *Cursor) ([]E, error) {
		start := c.Mark()
		var out []E

		skipOWS(c)
		skipCommas(c)

		for {
			elemPos := c.Mark()

			v, err := element(c)
			if err != nil {
				c.Rewind(elemPos)
				break
			}

			out = append(out, v)

			skipOWS(c)
			if !skipCommas(c) {
				break
			}
		}

		if len(out) < min {
			err := errors.New(c.Pos(), errors.RepeatBelowMin, "list requires at least one element")
			c.Rewind(start)
			return nil, err
		}

		return out, nil
	}
}

// NonEmptyListProducer realizes the "1#element" list rule: at least one
// element is required; leading/trailing/duplicated commas and OWS around
// them are tolerated, but an input with zero real elements fails.
func NonEmptyListProducer[E any](element Producer[E]) Producer[[]E] {
	return listProducer(1, element)
}

// MaybeEmptyListProducer realizes the "#element" list rule: zero elements
// is a valid, successful parse yielding an empty slice.
func MaybeEmptyListProducer[E any](element Producer[E]) Producer[[]E] {
	return listProducer(0, element)
}
