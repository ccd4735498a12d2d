package easyparser

import "github.com/horu/restinio/internal/ascii"

// Setter is the second half of a binding: given a value produced by a
// Producer, it records that value somewhere in the target currently being
// assembled.
type Setter[T, V any] func(target *T, value V)

// Field returns a Setter that writes into the field selected by access.
// Typical use: easyparser.Field(func(t *MediaType) *string { return &t.Type }).
func Field[T, V any](access func(*T) *V) Setter[T, V] {
	return func(target *T, value V) {
		*access(target) = value
	}
}

// AsResult returns a Setter that replaces the whole target with value,
// for use when the enclosing Produce frame's target type is itself the
// produced value (e.g. Produce[string](...)).
func AsResult[T any]() Setter[T, T] {
	return func(target *T, value T) {
		*target = value
	}
}

// ToContainer returns a Setter that appends value to the slice selected by
// access, implementing the "append to container" binding for container-
// typed fields.
func ToContainer[T, E any](access func(*T) *[]E) Setter[T, E] {
	return func(target *T, value E) {
		s := access(target)
		*s = append(*s, value)
	}
}

// ToSelfContainer returns a Setter that appends value directly to the
// target when the target itself is the container (e.g. Produce[[]string]).
func ToSelfContainer[E any]() Setter[[]E, E] {
	return func(target *[]E, value E) {
		*target = append(*target, value)
	}
}

// Skip returns a Setter that discards the produced value while still
// having required the producer to consume input.
func Skip[T, V any]() Setter[T, V] {
	return func(*T, V) {}
}

// ToLower wraps a string Producer so its yielded value is ASCII-lower-cased
// before any Setter sees it. This is the only place case normalization
// happens: producers and setters never infer case rules on their own.
func ToLower(p Producer[string]) Producer[string] {
	return func(c *Cursor) (string, error) {
		v, err := p(c)
		if err != nil {
			return "", err
		}

		return ascii.ToLowerString(v), nil
	}
}
