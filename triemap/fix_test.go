package triemap_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/keytrie/seq"
	"github.com/npillmayer/keytrie/triemap"
)

// shape is a tree-shaped key type: values carry no payload and are
// distinguished by structure alone.
type shape struct {
	kids []shape
}

func n(kids ...shape) shape {
	return shape{kids: kids}
}

func substructures(s shape) seq.Seq[shape] {
	return seq.FromSlice(s.kids)
}

func newShapeMap() triemap.Map[shape, string] {
	return triemap.New[shape, string](triemap.Fix(substructures))
}

func TestFixEmptyMap(t *testing.T) {
	m := newShapeMap()
	if triemap.Contains(m, n()) {
		t.Error("expected fresh fixpoint map to be empty, isn't")
	}
	if triemap.Get(m, n(n(), n())).Present() {
		t.Error("expected fresh fixpoint map to be empty for any key, isn't")
	}
}

func TestFixRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keytrie.triemap")
	defer teardown()
	//
	m := newShapeMap()
	leaf := n()
	fork := n(n(), n())
	chain := n(n(n()))
	m = triemap.Set(m, leaf, "leaf")
	m = triemap.Set(m, fork, "fork")
	m = triemap.Set(m, chain, "chain")

	if v := triemap.Get(m, leaf).WithDefault(""); v != "leaf" {
		t.Errorf("expected leaf ↦ leaf, is %q", v)
	}
	if v := triemap.Get(m, fork).WithDefault(""); v != "fork" {
		t.Errorf("expected two-child node ↦ fork, is %q", v)
	}
	if v := triemap.Get(m, chain).WithDefault(""); v != "chain" {
		t.Errorf("expected unary chain ↦ chain, is %q", v)
	}
}

func TestFixStructurallyDistinctKeysAreIsolated(t *testing.T) {
	// fork and chain both consist of three nodes; only structure tells
	// them apart
	m := newShapeMap()
	fork := n(n(), n())
	chain := n(n(n()))
	m = triemap.Set(m, fork, "fork")
	if triemap.Contains(m, chain) {
		t.Error("expected chain to be absent after inserting fork, isn't")
	}
	m = triemap.Set(m, chain, "chain")
	m = triemap.Delete(m, fork)
	if triemap.Contains(m, fork) {
		t.Error("expected fork to be gone, isn't")
	}
	if v := triemap.Get(m, chain).WithDefault(""); v != "chain" {
		t.Errorf("expected chain to survive deleting fork, is %q", v)
	}
}

func TestFixLastWriteWins(t *testing.T) {
	m := newShapeMap()
	key := n(n(), n(n()))
	m = triemap.Set(m, key, "first")
	m = triemap.Set(m, key, "second")
	if v := triemap.Get(m, key).WithDefault(""); v != "second" {
		t.Errorf("expected re-insertion to overwrite, is %q", v)
	}
}

func TestFixSharedSubstructure(t *testing.T) {
	// keys sharing a leading substructure diverge later in the path and
	// must not disturb one another
	a := n(n(), n())
	m := newShapeMap()
	m = triemap.Set(m, n(a, n()), "one")
	m = triemap.Set(m, n(a, n(n())), "two")
	m = triemap.Set(m, n(a), "three")
	if v := triemap.Get(m, n(a, n())).WithDefault(""); v != "one" {
		t.Errorf("expected first key ↦ one, is %q", v)
	}
	if v := triemap.Get(m, n(a, n(n()))).WithDefault(""); v != "two" {
		t.Errorf("expected second key ↦ two, is %q", v)
	}
	if v := triemap.Get(m, n(a)).WithDefault(""); v != "three" {
		t.Errorf("expected third key ↦ three, is %q", v)
	}
}

func TestFixPersistence(t *testing.T) {
	m0 := newShapeMap()
	key := n(n())
	m1 := triemap.Set(m0, key, "v")
	if triemap.Contains(m0, key) {
		t.Error("expected original incarnation to stay empty, doesn't")
	}
	if !triemap.Contains(m1, key) {
		t.Error("expected new incarnation to hold the key, doesn't")
	}
}

func TestFixDeepKey(t *testing.T) {
	// depth is bounded by the key value, not by the type: a deep chain
	// must flatten and store without trouble
	deep := n()
	for i := 0; i < 200; i++ {
		deep = n(deep)
	}
	m := triemap.Set(newShapeMap(), deep, "deep")
	if v := triemap.Get(m, deep).WithDefault(""); v != "deep" {
		t.Errorf("expected deep chain to round-trip, is %q", v)
	}
	almost := n()
	for i := 0; i < 199; i++ {
		almost = n(almost)
	}
	if triemap.Contains(m, almost) {
		t.Error("expected chain of different depth to be absent, isn't")
	}
}
