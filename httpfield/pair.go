// Package httpfield implements the concrete HTTP header-value grammars
// (Media-Type, Content-Type, Content-Encoding, Cache-Control, Accept,
// Accept-Encoding, Content-Disposition) on top of easyparser.
package httpfield

import "github.com/indigo-web/iter"

// Pair is a name/value parameter as found in Media-Type and
// Content-Disposition: both sides always present.
type Pair struct {
	Name  string
	Value string
}

// PairList is an ordered, duplicate-preserving sequence of Pairs.
type PairList []Pair

// Iter returns an iterator over the pairs in order, without copying the
// underlying slice.
func (l PairList) Iter() iter.Iterator[Pair] {
	return iter.Slice(l)
}

// OptPair is a name/optional-value parameter, as found in Cache-Control
// directives and Accept's accept-ext: a directive like no-transform has a
// Name but no Value.
type OptPair struct {
	Name  string
	Value *string
}

// HasValue reports whether this pair carried a "=value" part.
func (p OptPair) HasValue() bool {
	return p.Value != nil
}

// OptPairList is an ordered, duplicate-preserving sequence of OptPairs.
type OptPairList []OptPair

// Iter returns an iterator over the pairs in order, without copying the
// underlying slice.
func (l OptPairList) Iter() iter.Iterator[OptPair] {
	return iter.Slice(l)
}
