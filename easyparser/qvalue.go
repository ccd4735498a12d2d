package easyparser

import (
	"strconv"

	"github.com/horu/restinio/errors"
)

// QValue is an RFC 7231 quality value: a fixed-point number in thousandths,
// ranging from 0 to 1000 inclusive.
type QValue uint16

// UntrustedQValue constructs a QValue from a raw millis count that has not
// yet been range-checked, rejecting anything above 1000.
func UntrustedQValue(millis uint16) (QValue, error) {
	if millis > 1000 {
		return 0, errors.New(0, errors.NumericOutOfRange, "qvalue exceeds 1.000")
	}

	return QValue(millis), nil
}

// String renders q using up to three decimal digits, trimming trailing
// zeros only down to whichever of "0", "1" or "0.d"/"0.dd"/"0.ddd" form is
// exact, matching the qvalue grammar of RFC 7231 §5.3.1.
func (q QValue) String() string {
	if q == 0 {
		return "0"
	}
	if q == 1000 {
		return "1"
	}

	s := strconv.Itoa(int(q))
	for len(s) < 3 {
		s = "0" + s
	}

	whole := "0"
	frac := s
	if q >= 1000 {
		whole = "1"
		frac = "000"
	}

	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}

	return whole + "." + frac
}

// QValueProducer parses ( "0" [ "." *3DIGIT ] ) / ( "1" [ "." *3("0") ] )
// (RFC 7231 §5.3.1) and yields the resulting QValue, rejecting anything
// above 1.000. It consumes no trailing whitespace: any OWS around a
// qvalue must be produced explicitly by the enclosing grammar.
func QValueProducer() Producer[QValue] {
	return func(c *Cursor) (QValue, error) {
		start := c.Pos()

		lead, ok := c.Peek()
		if !ok {
			return 0, errors.EOF(start, "'0' or '1'")
		}
		if lead != '0' && lead != '1' {
			return 0, errors.Unexpectedf(start, "'0' or '1'")
		}
		c.Advance(1)

		millis := uint16(lead-'0') * 1000

		dot, ok := c.Peek()
		if ok && dot == '.' {
			c.Advance(1)

			places := [3]uint16{100, 10, 1}
			for i := 0; i < 3; i++ {
				b, ok := c.Peek()
				if !ok || b < '0' || b > '9' {
					break
				}
				c.Advance(1)
				millis += uint16(b-'0') * places[i]
			}
		}

		qv, err := UntrustedQValue(millis)
		if err != nil {
			c.Rewind(Position(start))
			return 0, errors.New(start, errors.NumericOutOfRange, "qvalue exceeds 1.000")
		}

		return qv, nil
	}
}

// WeightProducer parses OWS ";" OWS ( "q" / "Q" ) "=" qvalue and yields the
// resulting QValue.
func WeightProducer() Producer[QValue] {
	qvalue := QValueProducer()

	return func(c *Cursor) (QValue, error) {
		pos := c.Mark()

		skipOWS(c)

		b, ok := c.Peek()
		if !ok || b != ';' {
			c.Rewind(pos)
			return 0, errors.Unexpectedf(c.Pos(), "';'")
		}
		c.Advance(1)

		skipOWS(c)

		q, ok := c.Peek()
		if !ok || (q != 'q' && q != 'Q') {
			c.Rewind(pos)
			return 0, errors.Unexpectedf(c.Pos(), "'q' or 'Q'")
		}
		c.Advance(1)

		eq, ok := c.Peek()
		if !ok || eq != '=' {
			c.Rewind(pos)
			return 0, errors.Unexpectedf(c.Pos(), "'='")
		}
		c.Advance(1)

		v, err := qvalue(c)
		if err != nil {
			c.Rewind(pos)
			return 0, err
		}

		return v, nil
	}
}

func skipOWS(c *Cursor) {
	for {
		b, ok := c.Peek()
		if !ok || !(b == ' ' || b == '\t') {
			return
		}
		c.Advance(1)
	}
}
