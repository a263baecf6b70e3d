package triemap

import (
	"github.com/npillmayer/keytrie/maybe"
)

// Slices describes maps over finite sequence keys as a prefix trie: each
// trie node holds the optional value stored at the empty remaining
// sequence, plus a map from head element to the trie for the tails. Keys
// sharing a common prefix share trie nodes up to the point where they
// diverge.
func Slices[A any](elem Maker[A]) Maker[[]A] {
	return func() Map[[]A, any] {
		return emptySliceTrie(elem)
	}
}

type sliceTrie[A any] struct {
	elem Maker[A]
	here maybe.Maybe[any]
	sub  Map[A, any] // values are Map[[]A, any] continuation tries
}

func emptySliceTrie[A any](elem Maker[A]) sliceTrie[A] {
	return sliceTrie[A]{elem: elem, here: maybe.Nothing[any](), sub: elem()}
}

func (m sliceTrie[A]) Lookup(key []A) (any, error) {
	if len(key) == 0 {
		if v, ok := m.here.Value(); ok {
			return v, nil
		}
		return nil, ErrNotFound
	}
	sv, err := m.sub.Lookup(key[0])
	if err != nil {
		return nil, err
	}
	return sv.(Map[[]A, any]).Lookup(key[1:])
}

func (m sliceTrie[A]) Adjust(key []A, f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[[]A, any] {
	if len(key) == 0 {
		return sliceTrie[A]{elem: m.elem, here: f(m.here), sub: m.sub}
	}
	sub := m.sub.Adjust(key[0], func(cur maybe.Maybe[any]) maybe.Maybe[any] {
		child := Map[[]A, any](emptySliceTrie(m.elem))
		if v, ok := cur.Value(); ok {
			child = v.(Map[[]A, any])
		}
		return maybe.Just[any](child.Adjust(key[1:], f))
	})
	return sliceTrie[A]{elem: m.elem, here: m.here, sub: sub}
}
