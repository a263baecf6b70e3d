/*
Package seq provides pure lazy sequences.

A Seq[T] is a suspended list: elements are computed on demand, one at a
time, as the sequence is consumed. The nil sequence is empty. Sequences are
immutable values and safe to share, but they are not memoized — forcing the
same suspension twice recomputes its elements. That never corrupts results,
it only repeats work, so a partially consumed sequence should be threaded
through a traversal exactly once if complexity matters.

Package triemap consumes lazy sequences as trie keys, and its fixpoint
combinator produces them while flattening tree-shaped keys.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

// Seq is a lazy sequence of T. Calling it forces the first element,
// returning the element, the remaining sequence and true, or ok=false at
// the end of the sequence. nil is the empty sequence. Clients usually go
// through Uncons, which handles nil.
type Seq[T any] func() (T, Seq[T], bool)

// Uncons forces the first element of s. It returns ok=false if s is
// exhausted (or nil).
func Uncons[T any](s Seq[T]) (T, Seq[T], bool) {
	if s == nil {
		var none T
		return none, nil, false
	}
	return s()
}

// Cons prepends an (already computed) element to a sequence.
func Cons[T any](x T, rest Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		return x, rest, true
	}
}

// Delay suspends a sequence computation. f will not be called before the
// resulting sequence is forced, and is called again on every forcing.
func Delay[T any](f func() Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		return Uncons(f())
	}
}

// Singleton is the one-element sequence.
func Singleton[T any](x T) Seq[T] {
	return Cons[T](x, nil)
}

// FromSlice wraps a slice. The slice must not be mutated afterwards.
func FromSlice[T any](xs []T) Seq[T] {
	if len(xs) == 0 {
		return nil
	}
	return func() (T, Seq[T], bool) {
		return xs[0], FromSlice(xs[1:]), true
	}
}

// Map applies f to every element, lazily.
func Map[T, S any](f func(T) S, s Seq[T]) Seq[S] {
	if s == nil {
		return nil
	}
	return func() (S, Seq[S], bool) {
		v, rest, ok := Uncons(s)
		if !ok {
			var none S
			return none, nil, false
		}
		return f(v), Map(f, rest), true
	}
}

// Append concatenates two sequences. The second sequence is not touched
// before the first one is exhausted.
func Append[T any](a, b Seq[T]) Seq[T] {
	if a == nil {
		return b
	}
	return func() (T, Seq[T], bool) {
		v, rest, ok := Uncons(a)
		if !ok {
			return Uncons(b)
		}
		return v, Append(rest, b), true
	}
}

// Take materializes up to n leading elements.
func Take[T any](n int, s Seq[T]) []T {
	var xs []T
	for i := 0; i < n; i++ {
		v, rest, ok := Uncons(s)
		if !ok {
			break
		}
		xs = append(xs, v)
		s = rest
	}
	return xs
}

// Slice materializes a whole sequence. It will not return on an unbounded
// sequence.
func Slice[T any](s Seq[T]) []T {
	var xs []T
	for {
		v, rest, ok := Uncons(s)
		if !ok {
			return xs
		}
		xs = append(xs, v)
		s = rest
	}
}
