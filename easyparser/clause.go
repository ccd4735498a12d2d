package easyparser

import (
	"github.com/horu/restinio/errors"
)

// Clause runs against a Cursor and the target currently being assembled by
// the enclosing Produce frame. It may mutate *target through whatever
// Setter its Bind closed over; on failure it must undo both the cursor
// advance and any mutation it performed.
type Clause[T any] func(c *Cursor, target *T) error

// Bind realizes the `producer >> setter` binding: run p, and on success
// hand its value to set.
func Bind[T, V any](p Producer[V], set Setter[T, V]) Clause[T] {
	return func(c *Cursor, target *T) error {
		v, err := p(c)
		if err != nil {
			return err
		}

		set(target, v)
		return nil
	}
}

// Symbol is the clause form of SymbolProducer: it consumes want and binds
// nothing.
func Symbol[T any](want byte) Clause[T] {
	p := SymbolProducer(want)
	return func(c *Cursor, _ *T) error {
		_, err := p(c)
		return err
	}
}

// OWS is the clause form of OWSProducer.
func OWS[T any]() Clause[T] {
	p := OWSProducer()
	return func(c *Cursor, _ *T) error {
		_, err := p(c)
		return err
	}
}

// Sequence runs every clause in order, stopping at the first failure. On
// failure the cursor is rewound to the position it held when Sequence
// began; writes already performed by earlier clauses in the sequence are
// not undone by Sequence itself (they are either discarded by an enclosing
// Alternatives/Maybe/Repeat snapshot, or irrelevant because the whole
// Produce frame is about to be discarded).
func Sequence[T any](clauses ...Clause[T]) Clause[T] {
	return func(c *Cursor, target *T) error {
		pos := c.Mark()

		for _, cl := range clauses {
			if err := cl(c, target); err != nil {
				c.Rewind(pos)
				return err
			}
		}

		return nil
	}
}

// Alternatives tries each branch in order. The first branch to succeed
// commits its cursor advance and its writes into target. Every other
// branch, whether tried before or not needed, leaves no trace: when a
// branch fails, target is restored from a copy taken before that branch
// ran and the cursor is rewound, so its partial writes are discarded and
// the next branch starts from the same state.
func Alternatives[T any](branches ...Clause[T]) Clause[T] {
	return func(c *Cursor, target *T) error {
		pos := c.Mark()

		var furthest *errors.ParseError
		for _, branch := range branches {
			snapshot := *target

			if err := branch(c, target); err == nil {
				return nil
			} else {
				furthest = errors.Furthest(furthest, asParseError(err))
				*target = snapshot
				c.Rewind(pos)
			}
		}

		if furthest == nil {
			return errors.New(c.Pos(), errors.NoAlternative, "no alternative matched")
		}

		return errors.New(furthest.Pos, errors.NoAlternative, "no alternative matched")
	}
}

// Maybe behaves like Sequence, except a failure is converted into a
// no-op success: the cursor and target are both rewound to their
// pre-attempt state.
func Maybe[T any](clauses ...Clause[T]) Clause[T] {
	seq := Sequence(clauses...)

	return func(c *Cursor, target *T) error {
		pos := c.Mark()
		snapshot := *target

		if err := seq(c, target); err != nil {
			c.Rewind(pos)
			*target = snapshot
			return nil
		}

		return nil
	}
}

// Unbounded marks Repeat's max parameter as having no upper limit.
const Unbounded = -1

// Repeat applies clause greedily between min and max times (inclusive;
// Unbounded means no upper limit). Every iteration must either advance the
// cursor or fail: a successful zero-length iteration is rejected with
// ZeroLengthIteration to guarantee termination.
func Repeat[T any](min, max int, clause Clause[T]) Clause[T] {
	return func(c *Cursor, target *T) error {
		count := 0

		for max == Unbounded || count < max {
			pos := c.Mark()
			snapshot := *target

			if err := clause(c, target); err != nil {
				c.Rewind(pos)
				*target = snapshot
				break
			}

			if c.Mark() == pos {
				c.Rewind(pos)
				*target = snapshot
				return errors.New(c.Pos(), errors.ZeroLengthIteration, "repeated clause made no progress")
			}

			count++
		}

		if count < min {
			return errors.New(c.Pos(), errors.RepeatBelowMin, "repetition did not reach its minimum count")
		}

		return nil
	}
}

// Not is a negative lookahead: it succeeds iff the inner sequence fails.
// The cursor is always rewound and no bindings from the inner sequence are
// ever applied, win or lose.
func Not[T any](clauses ...Clause[T]) Clause[T] {
	seq := Sequence(clauses...)

	return func(c *Cursor, target *T) error {
		pos := c.Mark()
		scratch := *target

		err := seq(c, &scratch)
		c.Rewind(pos)

		if err == nil {
			return errors.New(int(pos), errors.NoAlternative, "negative lookahead matched")
		}

		return nil
	}
}

// And is a positive lookahead: it succeeds iff the inner sequence
// succeeds. The cursor is always rewound and no bindings are ever applied.
func And[T any](clauses ...Clause[T]) Clause[T] {
	seq := Sequence(clauses...)

	return func(c *Cursor, target *T) error {
		pos := c.Mark()
		scratch := *target

		err := seq(c, &scratch)
		c.Rewind(pos)

		return err
	}
}
