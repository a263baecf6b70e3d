package triemap

import (
	"cmp"
	"math/rand"

	"github.com/npillmayer/keytrie/maybe"
)

// Ordered describes maps over atomic ordered keys (integers, strings, …).
// This is the leaf representation composite combinators build on, e.g. as
// the element map of a sequence trie.
//
// The representation is a persistent treap: a binary search tree in key
// order that is simultaneously a heap in (random) priority order, which
// keeps it balanced in expectation. Modifications copy one root-to-key
// path and share the rest.
func Ordered[A cmp.Ordered]() Maker[A] {
	return func() Map[A, any] {
		return treap[A]{}
	}
}

type treap[A cmp.Ordered] struct {
	root *tnode[A]
}

type tnode[A cmp.Ordered] struct {
	key   A
	value any
	prio  uint64
	left  *tnode[A]
	right *tnode[A]
}

func (m treap[A]) Lookup(key A) (any, error) {
	nd := m.root
	for nd != nil {
		switch {
		case key < nd.key:
			nd = nd.left
		case nd.key < key:
			nd = nd.right
		default:
			return nd.value, nil
		}
	}
	return nil, ErrNotFound
}

func (m treap[A]) Adjust(key A, f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[A, any] {
	less, hit, greater := split(m.root, key)
	cur := maybe.Nothing[any]()
	if hit != nil {
		cur = maybe.Just(hit.value)
	}
	if v, ok := f(cur).Value(); ok {
		nd := &tnode[A]{key: key, value: v, prio: rand.Uint64()}
		if hit != nil {
			nd.prio = hit.prio // keep the tree shape stable on replacement
		}
		tracer().Debugf("treap: storing key %v", key)
		return treap[A]{root: join(join(less, nd), greater)}
	}
	// adjusted to absent: the key vanishes without a trace
	return treap[A]{root: join(less, greater)}
}

// split partitions a treap into keys below key, the node holding key (or
// nil), and keys above key, copying the search path.
func split[A cmp.Ordered](nd *tnode[A], key A) (less, hit, greater *tnode[A]) {
	if nd == nil {
		return nil, nil, nil
	}
	if key < nd.key {
		less, hit, mid := split(nd.left, key)
		cow := *nd
		cow.left = mid
		return less, hit, &cow
	}
	if nd.key < key {
		mid, hit, greater := split(nd.right, key)
		cow := *nd
		cow.right = mid
		return &cow, hit, greater
	}
	return nd.left, nd, nd.right
}

// join merges two treaps under the precondition that every key in l is
// below every key in r, choosing roots by priority.
func join[A cmp.Ordered](l, r *tnode[A]) *tnode[A] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.prio >= r.prio {
		cow := *l
		cow.right = join(l.right, r)
		return &cow
	}
	cow := *r
	cow.left = join(l, r.left)
	return &cow
}
