/*
Package keytrie provides persistent (immutable) key/value maps for composite
key types, built by structural composition of trie combinators, together
with a persistent random-access list.

A map over a composite key type is assembled from maps over its parts: unit,
product, sum, option, finite and lazy sequences, and — through a fixpoint
combinator — arbitrary tree-shaped key types. Every map representation only
has to supply three primitives (empty, lookup, adjust); all convenience
operations are derived once, generically, in package triemap.

All structures in this module are persistent: an “update” returns a new
incarnation and leaves every previously observed value intact. Structural
sharing keeps copies cheap, and immutability makes concurrent reads safe
without synchronization.

Packages:

▪︎ triemap — the map framework: minimal contract, derived operations,
structural combinators, fixpoint combinator

▪︎ ralist — random-access list with a skew-binary block representation

▪︎ seq — pure lazy sequences

▪︎ maybe — optional values with pattern matching

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keytrie
