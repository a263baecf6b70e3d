package triemap

import (
	"errors"
	"fmt"

	"github.com/npillmayer/keytrie/maybe"
)

// ErrNotFound is returned by Lookup when the key has no stored value. It is
// the only failure kind a Map implementation may produce.
var ErrNotFound = errors.New("key not found")

// Map is the minimal contract every map representation supplies. All
// other map behaviour is derived from it by the package-level functions
// below; representations never re-implement the derived operations.
//
// Adjust hands the current value at key — present or absent — to f and
// stores whatever f returns. Adjusting a key to absent is observationally
// equivalent to never having stored it. Adjust never fails.
type Map[K, V any] interface {
	Lookup(key K) (V, error)
	Adjust(key K, f func(maybe.Maybe[V]) maybe.Maybe[V]) Map[K, V]
}

// Maker produces an empty map for keys of type K. The value type is erased
// to `any` so that combinators can nest maps inside maps; New recovers a
// typed surface.
type Maker[K any] func() Map[K, any]

// New builds an empty map with values of type V from a key-shape
// description.
func New[K, V any](mk Maker[K]) Map[K, V] {
	return typed[K, V]{inner: mk()}
}

// typed adapts the untyped combinator core to a typed value domain.
type typed[K, V any] struct {
	inner Map[K, any]
}

func (m typed[K, V]) Lookup(key K) (V, error) {
	v, err := m.inner.Lookup(key)
	if err != nil {
		var none V
		return none, err
	}
	return v.(V), nil
}

func (m typed[K, V]) Adjust(key K, f func(maybe.Maybe[V]) maybe.Maybe[V]) Map[K, V] {
	inner := m.inner.Adjust(key, func(cur maybe.Maybe[any]) maybe.Maybe[any] {
		nv := f(maybe.Map(func(v any) V { return v.(V) }, cur))
		return maybe.Map(func(v V) any { return v }, nv)
	})
	return typed[K, V]{inner: inner}
}

// --- Derived operations ----------------------------------------------------

// Get looks a key up, converting exactly ErrNotFound into Nothing. Lookup
// failing with any other kind is a broken Map implementation and panics.
func Get[K, V any](m Map[K, V], key K) maybe.Maybe[V] {
	v, err := m.Lookup(key)
	if err == nil {
		return maybe.Just(v)
	}
	assertThat(errors.Is(err, ErrNotFound), "lookup failed with foreign error: %v", err)
	return maybe.Nothing[V]()
}

// Contains reports whether key has a stored value.
func Contains[K, V any](m Map[K, V], key K) bool {
	return Get(m, key).Present()
}

// Set returns a copy of the map with value stored at key, replacing any
// previous entry.
func Set[K, V any](m Map[K, V], key K, value V) Map[K, V] {
	return m.Adjust(key, func(maybe.Maybe[V]) maybe.Maybe[V] {
		return maybe.Just(value)
	})
}

// Delete returns a copy of the map with the entry for key removed. Deleting
// an absent key is a no-op.
func Delete[K, V any](m Map[K, V], key K) Map[K, V] {
	return m.Adjust(key, func(maybe.Maybe[V]) maybe.Maybe[V] {
		return maybe.Nothing[V]()
	})
}

// Update applies f to the stored value at key, if any. An absent key stays
// absent.
func Update[K, V any](m Map[K, V], key K, f func(V) V) Map[K, V] {
	return m.Adjust(key, func(cur maybe.Maybe[V]) maybe.Maybe[V] {
		return cur.Map(f)
	})
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("triemap: "+msg, msgargs...)
		panic(msg)
	}
}
