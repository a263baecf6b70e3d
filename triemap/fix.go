package triemap

import (
	"github.com/npillmayer/keytrie/maybe"
	"github.com/npillmayer/keytrie/ralist"
	"github.com/npillmayer/keytrie/seq"
)

// Fix describes maps over tree-shaped key types, i.e. types defined as the
// least fixpoint of a branching rule. The only capability required of the
// key type is subs, yielding the lazy, finite sequence of a value's
// immediate children. subs must yield proper substructures only; both
// flattening and trie descent then terminate in time proportional to the
// structural size of the concrete key, never to the (unbounded) depth the
// type admits.
//
// A key cannot be flattened into one bounded-length path up front, so the
// map is an open-ended trie over a lazily produced path: each value on the
// path contributes a separator marker followed by the flattening of its
// substructures, closed by an end marker. The path is matched against
// nested continuation tries created on demand, so adjustment never fails,
// and keys sharing a common substructure prefix share trie nodes. Lookup
// fails with ErrNotFound when no stored path matches.
func Fix[T any](subs func(T) seq.Seq[T]) Maker[T] {
	paths := Seqs(steps())
	return ByRep(func(key T) seq.Seq[step] {
		return flatten(subs, seq.Singleton(maybe.Just(key)))
	}, paths)
}

// step is the path alphabet of flattened tree-shaped keys.
type step uint8

const (
	stepInto step = iota // separator preceding a value
	stepOut              // end of a sibling group
)

// steps describes the two-slot map over the path alphabet, as Sum(Unit, Unit).
func steps() Maker[step] {
	return ByRep(func(s step) Either[struct{}, struct{}] {
		if s == stepInto {
			return Left[struct{}, struct{}](struct{}{})
		}
		return Right[struct{}, struct{}](struct{}{})
	}, Sums(Units(), Units()))
}

// A frontier is the state of one single-pass flattening traversal: a stack
// of pending segments, each a lazy sequence of optional values, where an
// absent value marks the end of a sibling group. The stack is a persistent
// random-access list, so advancing the iterator is a constant-time head
// operation and an already emitted iterator state stays valid.
type frontier[T any] struct {
	subs    func(T) seq.Seq[T]
	pending ralist.List[seq.Seq[maybe.Maybe[T]]]
}

// flatten turns a frontier of optional values into the lazy sequence of
// path elements for the trie traversal: a present value expands into a
// separator followed, recursively, by the flattening of its substructures
// and an end marker; an absent value emits the end marker.
func flatten[T any](subs func(T) seq.Seq[T], front seq.Seq[maybe.Maybe[T]]) seq.Seq[step] {
	fr := frontier[T]{
		subs:    subs,
		pending: ralist.List[seq.Seq[maybe.Maybe[T]]]{}.Cons(front),
	}
	return fr.path()
}

// path exposes the remaining traversal as a lazy sequence of steps. The
// traversal advances on demand, element by element; nothing of a key's
// structural descent is materialized eagerly.
func (fr frontier[T]) path() seq.Seq[step] {
	return func() (step, seq.Seq[step], bool) {
		cur := fr
		for {
			top, rest := cur.pending.UnconsOpt()
			segment, ok := top.Value()
			if !ok {
				return 0, nil, false // frontier drained, path exhausted
			}
			head, tail, ok := seq.Uncons(segment)
			if !ok {
				cur.pending = rest
				continue
			}
			cur.pending = rest.Cons(tail)
			if v, present := head.Value(); present {
				tracer().Debugf("fix: expanding one value into its substructures")
				children := seq.Append(
					seq.Map(maybe.Just[T], cur.subs(v)),
					seq.Singleton(maybe.Nothing[T]()),
				)
				cur.pending = cur.pending.Cons(children)
				return stepInto, cur.path(), true
			}
			return stepOut, cur.path(), true
		}
	}
}
