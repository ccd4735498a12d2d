// Package errors defines the error vocabulary shared by easyparser and
// httpfield: a small, closed set of failure kinds, one sentinel per kind,
// and the structured ParseError that carries a position alongside a kind.
package errors

import (
	"errors"
	"fmt"
)

// Kind enumerates every way a parse can fail. The set is exhaustive and
// closed: adding a new producer or clause should reuse one of these, not
// grow the list.
type Kind uint8

const (
	Unexpected Kind = iota
	UnexpectedEOF
	NoAlternative
	RepeatBelowMin
	RepeatAboveMax
	TrailingInput
	ZeroLengthIteration
	NumericOutOfRange
	UnterminatedQuotedString
)

func (k Kind) String() string {
	switch k {
	case Unexpected:
		return "unexpected byte"
	case UnexpectedEOF:
		return "unexpected end of input"
	case NoAlternative:
		return "no alternative matched"
	case RepeatBelowMin:
		return "repetition below minimum"
	case RepeatAboveMax:
		return "repetition above maximum"
	case TrailingInput:
		return "trailing input"
	case ZeroLengthIteration:
		return "zero-length iteration"
	case NumericOutOfRange:
		return "numeric value out of range"
	case UnterminatedQuotedString:
		return "unterminated quoted string"
	default:
		return "unknown parse error"
	}
}

// Sentinel base errors, one per Kind, so callers can match failures with
// errors.Is without depending on ParseError's internal shape.
var (
	ErrUnexpected               = errors.New("unexpected byte")
	ErrUnexpectedEOF            = errors.New("unexpected end of input")
	ErrNoAlternative            = errors.New("no alternative matched")
	ErrRepeatBelowMin           = errors.New("repetition did not reach its minimum count")
	ErrRepeatAboveMax           = errors.New("repetition exceeded its maximum count")
	ErrTrailingInput            = errors.New("input was not fully consumed")
	ErrZeroLengthIteration      = errors.New("repeated clause made no progress")
	ErrNumericOutOfRange        = errors.New("numeric value out of range")
	ErrUnterminatedQuotedString = errors.New("unterminated quoted string")
)

func sentinelFor(k Kind) error {
	switch k {
	case Unexpected:
		return ErrUnexpected
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case NoAlternative:
		return ErrNoAlternative
	case RepeatBelowMin:
		return ErrRepeatBelowMin
	case RepeatAboveMax:
		return ErrRepeatAboveMax
	case TrailingInput:
		return ErrTrailingInput
	case ZeroLengthIteration:
		return ErrZeroLengthIteration
	case NumericOutOfRange:
		return ErrNumericOutOfRange
	case UnterminatedQuotedString:
		return ErrUnterminatedQuotedString
	default:
		return nil
	}
}

// ParseError is the structured failure returned by every producer, clause
// and TryParse call. Pos is the earliest-sensible byte offset at which the
// failure was detected (the furthest reach among any speculative
// alternatives, per the propagation rule).
type ParseError struct {
	Pos      int
	Kind     Kind
	Brief    string
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("at byte %d: %s (expected %s)", e.Pos, e.Brief, e.Expected)
	}

	return fmt.Sprintf("at byte %d: %s", e.Pos, e.Brief)
}

func (e *ParseError) Unwrap() error {
	return sentinelFor(e.Kind)
}

// New builds a ParseError of the given kind at pos with brief as its
// human-readable summary.
func New(pos int, kind Kind, brief string) *ParseError {
	return &ParseError{Pos: pos, Kind: kind, Brief: brief}
}

// Unexpectedf builds an Unexpected ParseError describing what was expected
// at pos.
func Unexpectedf(pos int, expected string) *ParseError {
	return &ParseError{
		Pos:      pos,
		Kind:     Unexpected,
		Brief:    "unexpected byte",
		Expected: expected,
	}
}

// EOF builds an UnexpectedEOF ParseError at pos, optionally naming what was
// expected instead.
func EOF(pos int, expected string) *ParseError {
	return &ParseError{
		Pos:      pos,
		Kind:     UnexpectedEOF,
		Brief:    "unexpected end of input",
		Expected: expected,
	}
}

// Furthest returns whichever of a and b reports the greater Pos, treating a
// nil ParseError as never having reached any position. Used by alternatives
// to retain the most informative diagnostic among every failed branch.
func Furthest(a, b *ParseError) *ParseError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Pos > a.Pos {
		return b
	}
	return a
}

// Describe renders a caret-annotated single-line excerpt of input centered
// on err's position, suitable for logs. Non-*ParseError errors are
// rendered with their plain Error() text and no excerpt.
func Describe(err error, input []byte) string {
	pe, ok := err.(*ParseError)
	if !ok {
		return err.Error()
	}

	const radius = 24

	start := pe.Pos - radius
	if start < 0 {
		start = 0
	}
	end := pe.Pos + radius
	if end > len(input) {
		end = len(input)
	}

	raw := string(input[start:end])
	lstripped := lstripWS(raw)
	trimmed := len(raw) - len(lstripped)
	excerpt := rstripWS(lstripped)

	caretOffset := pe.Pos - start - trimmed
	if caretOffset < 0 {
		caretOffset = 0
	}
	if caretOffset > len(excerpt) {
		caretOffset = len(excerpt)
	}

	caretLine := make([]byte, caretOffset)
	for i := range caretLine {
		caretLine[i] = ' '
	}

	return fmt.Sprintf("%s\n%s\n%s^", pe.Error(), excerpt, string(caretLine))
}

// lstripWS trims leading spaces and tabs from str.
func lstripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// rstripWS trims trailing spaces and tabs from str.
func rstripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}
