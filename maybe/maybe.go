/*
Package maybe provides optional values.

A Maybe[T] either holds a value of type T (Just) or holds nothing (Nothing).
It is the present-or-absent currency of this module: the map framework in
package triemap threads Maybe values through every adjustment, and the
total operation variants of package ralist report missing results as
Nothing instead of an error.

Values can be inspected directly,

    if v, ok := m.Value(); ok { … }

or through the Matcher protocol:

    var v int
    switch mm := m.Match(); mm {
    case mm.Just(&v):
        …
    case mm.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	Present() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of builds Just(x) if ok, Nothing otherwise. It adapts comma-ok results:
//
//     maybe.Of(m[key])
//
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Value returns the wrapped value, comma-ok style.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// Present is true for Just values.
func (m maybe[T]) Present() bool {
	return m.tag
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a Maybe-producing function, short-circuiting on Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map is the type-changing variant of Maybe.Map.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match on a Maybe in a switch statement.
// Just stores the wrapped value through the given pointer if it matches.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
