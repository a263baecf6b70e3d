package ralist

/*
Remarks:
--------

- Blocks form a linked list, front to back; every operation that touches a
  block copies the spine up to it and shares everything else.

- A new modified incarnation of a list always is reflected by a new leading
  block chain; trees are only ever copied along one root-to-element path.

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/keytrie/maybe"
)

// ErrEmpty is returned by Uncons on the empty list.
var ErrEmpty = errors.New("list is empty")

// ErrIndex is returned by Get, Set and Update for an out-of-range index.
var ErrIndex = errors.New("index out of bounds")

// List is a persistent random-access list. An empty instance is usable as
// an empty list, i.e. this is legal:
//
//     l := ralist.List[int]{}.Cons(42)
//
type List[T any] struct {
	blocks *block[T]
}

// Immutable constructs an empty random-access list. It is equivalent to the
// zero value and exists for symmetry with the other constructors of this
// module.
func Immutable[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// Cons returns a copy of the list with x prepended.
func (l List[T]) Cons(x T) List[T] {
	if b := l.blocks; b != nil && b.next != nil && b.weight == b.next.weight {
		// two leading blocks of equal weight w merge into one of weight 1+2w
		tracer().Debugf("cons: merging two blocks of weight %d", b.weight)
		merged := &block[T]{
			weight: 1 + b.weight + b.next.weight,
			tree:   &node[T]{value: x, left: b.tree, right: b.next.tree},
			next:   b.next.next,
		}
		return List[T]{blocks: merged}
	}
	tracer().Debugf("cons: prepending singleton block")
	return List[T]{blocks: &block[T]{weight: 1, tree: &node[T]{value: x}, next: l.blocks}}
}

// Uncons splits the list into its head element and the remaining list.
// It fails with ErrEmpty on the empty list.
func (l List[T]) Uncons() (T, List[T], error) {
	b := l.blocks
	if b == nil {
		var none T
		return none, l, ErrEmpty
	}
	if b.weight == 1 {
		return b.tree.value, List[T]{blocks: b.next}, nil
	}
	// drop the root: its two children become the two new leading blocks
	half := b.weight / 2
	right := &block[T]{weight: half, tree: b.tree.right, next: b.next}
	left := &block[T]{weight: half, tree: b.tree.left, next: right}
	tracer().Debugf("uncons: splitting block of weight %d", b.weight)
	return b.tree.value, List[T]{blocks: left}, nil
}

// UnconsOpt is the total variant of Uncons: on the empty list it returns
// Nothing and the empty list.
func (l List[T]) UnconsOpt() (maybe.Maybe[T], List[T]) {
	head, rest, err := l.Uncons()
	if err != nil {
		return maybe.Nothing[T](), l
	}
	return maybe.Just(head), rest
}

// Get returns the element at index i (0 is the head). It fails with
// ErrIndex if i is out of range.
func (l List[T]) Get(i int) (T, error) {
	if i >= 0 {
		j := i
		for b := l.blocks; b != nil; b = b.next {
			if j < b.weight {
				return b.tree.get(b.weight, j), nil
			}
			j -= b.weight
		}
	}
	var none T
	return none, fmt.Errorf("index %d with length %d: %w", i, l.length(), ErrIndex)
}

// GetOpt is the total variant of Get, converting ErrIndex to Nothing.
func (l List[T]) GetOpt(i int) maybe.Maybe[T] {
	v, err := l.Get(i)
	return maybe.Of(v, err == nil)
}

// Update returns a copy of the list with f applied to the element at index
// i. It fails with ErrIndex if i is out of range.
func (l List[T]) Update(i int, f func(T) T) (List[T], error) {
	if i >= 0 {
		if blocks, ok := updateBlocks(l.blocks, i, f); ok {
			return List[T]{blocks: blocks}, nil
		}
	}
	return l, fmt.Errorf("index %d with length %d: %w", i, l.length(), ErrIndex)
}

// UpdateOpt is the total variant of Update, converting ErrIndex to Nothing.
func (l List[T]) UpdateOpt(i int, f func(T) T) maybe.Maybe[List[T]] {
	nl, err := l.Update(i, f)
	return maybe.Of(nl, err == nil)
}

// Set returns a copy of the list with the element at index i replaced by v.
// It fails with ErrIndex if i is out of range.
func (l List[T]) Set(i int, v T) (List[T], error) {
	return l.Update(i, func(T) T { return v })
}

// SetOpt is the total variant of Set, converting ErrIndex to Nothing.
func (l List[T]) SetOpt(i int, v T) maybe.Maybe[List[T]] {
	nl, err := l.Set(i, v)
	return maybe.Of(nl, err == nil)
}
