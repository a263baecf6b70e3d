/*
Package triemap implements persistent key/value maps for composite key
types, assembled by structural composition of trie combinators.

Every map representation only has to supply three primitives — an empty
value, a definite lookup, and a single Adjust combinator — packaged as the
Map interface plus a Maker. Everything else (Get, Contains, Set, Delete,
Update) is derived once, generically, on top of the minimal contract and is
therefore guaranteed consistent across all representations.

Maps for composite key types are built bottom-up from maps for their
parts:

    // a map keyed by pairs of an int and a string slice
    mk := triemap.Pairs(triemap.Ordered[int](), triemap.Slices(triemap.Ordered[byte]()))
    m := triemap.New[triemap.Pair[int, []byte], string](mk)
    m = triemap.Set(m, triemap.P(7, []byte("abc")), "seven-abc")

Combinators exist for unit, product, sum and option keys, for finite and
lazy sequences (tries sharing common prefixes), for atomic ordered keys,
and — through Fix — for arbitrary tree-shaped (recursively defined) key
types described only by a substructures operation.

All maps are persistent: Adjust and the operations derived from it return a
new incarnation and leave every previously observed map value intact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package triemap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'keytrie.triemap'.
func tracer() tracing.Trace {
	return tracing.Select("keytrie.triemap")
}
