package ralist

import (
	"fmt"
	"strings"
)

// node is a complete binary tree of elements; every node, inner nodes
// included, carries a value. The head element of a list is the root of the
// leading block's tree.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// block pairs a tree with its weight (= element count, always 2^k−1) and
// links to the next block.
type block[T any] struct {
	weight int
	tree   *node[T]
	next   *block[T]
}

// get descends a tree of the given weight. Index 0 selects the root;
// otherwise the index is decremented and the search branches on half the
// weight. The caller guarantees 0 ≤ i < weight.
func (nd *node[T]) get(weight, i int) T {
	assertThat(nd != nil, "tree of weight %d has no node", weight)
	if i == 0 {
		return nd.value
	}
	i--
	half := weight / 2
	if i < half {
		return nd.left.get(half, i)
	}
	return nd.right.get(half, i-half)
}

// updated copies the root-to-index path, applying f at the index.
func (nd *node[T]) updated(weight, i int, f func(T) T) *node[T] {
	assertThat(nd != nil, "tree of weight %d has no node", weight)
	if i == 0 {
		return &node[T]{value: f(nd.value), left: nd.left, right: nd.right}
	}
	i--
	half := weight / 2
	if i < half {
		return &node[T]{value: nd.value, left: nd.left.updated(half, i, f), right: nd.right}
	}
	return &node[T]{value: nd.value, left: nd.left, right: nd.right.updated(half, i-half, f)}
}

// updateBlocks copies the block spine up to the block containing index i
// and rebuilds that block's element path. ok=false if i runs past the end.
func updateBlocks[T any](b *block[T], i int, f func(T) T) (*block[T], bool) {
	if b == nil {
		return nil, false
	}
	if i < b.weight {
		cow := &block[T]{weight: b.weight, tree: b.tree.updated(b.weight, i, f), next: b.next}
		return cow, true
	}
	rest, ok := updateBlocks(b.next, i-b.weight, f)
	if !ok {
		return nil, false
	}
	return &block[T]{weight: b.weight, tree: b.tree, next: rest}, true
}

func (l List[T]) length() int {
	n := 0
	for b := l.blocks; b != nil; b = b.next {
		n += b.weight
	}
	return n
}

func (l List[T]) String() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	first := true
	for b := l.blocks; b != nil; b = b.next {
		if !first {
			sb.WriteByte('|')
		}
		first = false
		sb.WriteString(fmt.Sprintf("%d", b.weight))
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ralist: "+msg, msgargs...)
		panic(msg)
	}
}
