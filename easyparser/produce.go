package easyparser

// Produce builds a Producer[T] that starts from a fresh, zero-valued T,
// runs clauses against it in sequence, and yields the completed T. If any
// clause fails, the frame fails and the partially-built T is discarded.
func Produce[T any](clauses ...Clause[T]) Producer[T] {
	seq := Sequence(clauses...)

	return func(c *Cursor) (T, error) {
		var target T

		if err := seq(c, &target); err != nil {
			var zero T
			return zero, err
		}

		return target, nil
	}
}
