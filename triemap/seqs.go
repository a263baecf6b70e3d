package triemap

import (
	"github.com/npillmayer/keytrie/maybe"
	"github.com/npillmayer/keytrie/seq"
)

// Seqs describes maps over lazy sequence keys. The trie shape is the same
// as for Slices, but the key is consumed one element at a time, as the
// traversal reaches it — later elements of the key are never forced when a
// lookup already failed or an adjustment already bottomed out. This makes
// Seqs usable for keys whose element sequence is expensive, or produced by
// an open-ended computation such as the flattening of a tree-shaped key
// (see Fix).
//
// A lazy key is consumed exactly once per operation; see package seq on
// re-forcing.
func Seqs[A any](elem Maker[A]) Maker[seq.Seq[A]] {
	return func() Map[seq.Seq[A], any] {
		return emptySeqTrie(elem)
	}
}

type seqTrie[A any] struct {
	elem Maker[A]
	here maybe.Maybe[any]
	sub  Map[A, any] // values are Map[seq.Seq[A], any] continuation tries
}

func emptySeqTrie[A any](elem Maker[A]) seqTrie[A] {
	return seqTrie[A]{elem: elem, here: maybe.Nothing[any](), sub: elem()}
}

func (m seqTrie[A]) Lookup(key seq.Seq[A]) (any, error) {
	head, tail, ok := seq.Uncons(key)
	if !ok {
		if v, present := m.here.Value(); present {
			return v, nil
		}
		return nil, ErrNotFound
	}
	sv, err := m.sub.Lookup(head)
	if err != nil {
		return nil, err
	}
	return sv.(Map[seq.Seq[A], any]).Lookup(tail)
}

func (m seqTrie[A]) Adjust(key seq.Seq[A], f func(maybe.Maybe[any]) maybe.Maybe[any]) Map[seq.Seq[A], any] {
	head, tail, ok := seq.Uncons(key)
	if !ok {
		return seqTrie[A]{elem: m.elem, here: f(m.here), sub: m.sub}
	}
	sub := m.sub.Adjust(head, func(cur maybe.Maybe[any]) maybe.Maybe[any] {
		child := Map[seq.Seq[A], any](emptySeqTrie(m.elem))
		if v, present := cur.Value(); present {
			child = v.(Map[seq.Seq[A], any])
		}
		return maybe.Just[any](child.Adjust(tail, f))
	})
	return seqTrie[A]{elem: m.elem, here: m.here, sub: sub}
}
