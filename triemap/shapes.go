package triemap

import (
	"github.com/npillmayer/keytrie/maybe"
)

// --- Key shape types -------------------------------------------------------

// Pair is the product key shape.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// P abbreviates pair construction.
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Either is the sum key shape: a tagged value that is either a Left A or a
// Right B.
type Either[A, B any] struct {
	tag   bool // true ⇒ right
	left  A
	right B
}

// Left injects into the left variant.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{left: a}
}

// Right injects into the right variant.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{tag: true, right: b}
}

// Left returns the left value, comma-ok style.
func (e Either[A, B]) Left() (A, bool) {
	return e.left, !e.tag
}

// Right returns the right value, comma-ok style.
func (e Either[A, B]) Right() (B, bool) {
	return e.right, e.tag
}

// --- Unit ------------------------------------------------------------------

// Units describes maps over the unit key: such a map holds zero or one
// entry.
func Units() Maker[struct{}] {
	return func() Map[struct{}, any] {
		return unitMap{val: maybe.Nothing[any]()}
	}
}

type unitMap struct {
	val maybe.Maybe[any]
}

func (m unitMap) Lookup(struct{}) (any, error) {
	if v, ok := m.val.Value(); ok {
		return v, nil
	}
	return nil, ErrNotFound
}

func (m unitMap) Adjust(_ struct{}, f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[struct{}, any] {
	return unitMap{val: f(m.val)}
}

// --- Product ---------------------------------------------------------------

// Pairs describes maps over product keys as a map of maps: an outer map
// from the first component to an inner map from the second component to the
// value. Adjusting creates the empty inner map on demand for an unseen
// first component.
func Pairs[A, B any](ma Maker[A], mb Maker[B]) Maker[Pair[A, B]] {
	return func() Map[Pair[A, B], any] {
		return pairMap[A, B]{mb: mb, outer: ma()}
	}
}

type pairMap[A, B any] struct {
	mb    Maker[B]
	outer Map[A, any] // values are Map[B, any]
}

func (m pairMap[A, B]) Lookup(key Pair[A, B]) (any, error) {
	iv, err := m.outer.Lookup(key.Fst)
	if err != nil {
		return nil, err
	}
	return iv.(Map[B, any]).Lookup(key.Snd)
}

func (m pairMap[A, B]) Adjust(key Pair[A, B], f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[Pair[A, B], any] {
	outer := m.outer.Adjust(key.Fst, func(cur maybe.Maybe[any]) maybe.Maybe[any] {
		inner := m.mb()
		if v, ok := cur.Value(); ok {
			inner = v.(Map[B, any])
		}
		return maybe.Just[any](inner.Adjust(key.Snd, f))
	})
	return pairMap[A, B]{mb: m.mb, outer: outer}
}

// --- Sum -------------------------------------------------------------------

// Sums describes maps over sum keys as a pair of maps; every operation
// dispatches on the key's tag and touches only the matching side.
func Sums[A, B any](ma Maker[A], mb Maker[B]) Maker[Either[A, B]] {
	return func() Map[Either[A, B], any] {
		return sumMap[A, B]{left: ma(), right: mb()}
	}
}

type sumMap[A, B any] struct {
	left  Map[A, any]
	right Map[B, any]
}

func (m sumMap[A, B]) Lookup(key Either[A, B]) (any, error) {
	if b, ok := key.Right(); ok {
		return m.right.Lookup(b)
	}
	a, _ := key.Left()
	return m.left.Lookup(a)
}

func (m sumMap[A, B]) Adjust(key Either[A, B], f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[Either[A, B], any] {
	if b, ok := key.Right(); ok {
		return sumMap[A, B]{left: m.left, right: m.right.Adjust(b, f)}
	}
	a, _ := key.Left()
	return sumMap[A, B]{left: m.left.Adjust(a, f), right: m.right}
}

// --- Representation --------------------------------------------------------

// ByRep derives a map for a new key type from a map over a representation
// type, given an injective representation function. This is the reuse
// vehicle for every key shape that is not primitive.
func ByRep[K, R any](repr func(K) R, mr Maker[R]) Maker[K] {
	return func() Map[K, any] {
		return repMap[K, R]{repr: repr, inner: mr()}
	}
}

type repMap[K, R any] struct {
	repr  func(K) R
	inner Map[R, any]
}

func (m repMap[K, R]) Lookup(key K) (any, error) {
	return m.inner.Lookup(m.repr(key))
}

func (m repMap[K, R]) Adjust(key K, f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[K, any] {
	return repMap[K, R]{repr: m.repr, inner: m.inner.Adjust(m.repr(key), f)}
}

// --- Option ----------------------------------------------------------------

// Options describes maps over optional keys, representing Maybe[A] as
// Sum(Unit, A).
func Options[A any](ma Maker[A]) Maker[maybe.Maybe[A]] {
	return ByRep(func(key maybe.Maybe[A]) Either[struct{}, A] {
		if v, ok := key.Value(); ok {
			return Right[struct{}, A](v)
		}
		return Left[struct{}, A](struct{}{})
	}, Sums(Units(), ma))
}
