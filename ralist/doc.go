/*
Package ralist implements a persistent random-access list.

A random-access list is an immutable sequence with the access pattern of a
stack — constant-time insertion and removal at the head — that additionally
supports reading and replacing arbitrary positions in logarithmic time.
Each “modification” (cons, uncons, set, update) creates a new incarnation
of the list, leaving the original unmodified; under the hood most of the
structure is shared between original and copy.

The representation is skew-binary: the list is a sequence of blocks, each a
complete binary tree carrying elements in every node, with non-decreasing
block weights of the form 2^k−1. At most the two leading weights may be
equal, and a head insertion resolves such equality by merging the two
blocks under a fresh root. This digit rule is what bounds indexed access by
O(log n) block skips.

Immutable lists are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ralist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keytrie.ralist'.
func tracer() tracing.Trace {
	return tracing.Select("keytrie.ralist")
}
