// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// Maybe is either Some(value) or None. The zero Maybe is None.
type Maybe[V any] struct {
	some  bool
	value V
}

// Some creates a Maybe holding v.
func Some[V any](v V) Maybe[V] {
	return Maybe[V]{some: true, value: v}
}

// None returns the empty Maybe.
func None[V any]() Maybe[V] {
	return Maybe[V]{}
}

// MaybeOf returns None for a nil pointer and Some(*p) otherwise.
func MaybeOf[V any](p *V) Maybe[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}

// IsSome reports whether m holds a value.
func (m Maybe[V]) IsSome() bool { return m.some }

// IsNone reports whether m is empty.
func (m Maybe[V]) IsNone() bool { return !m.some }

// IsSomeAnd reports whether m holds a value that satisfies pred.
func (m Maybe[V]) IsSomeAnd(pred func(V) bool) bool {
	return m.some && pred(m.value)
}

// Get returns the value and true, or zero and false.
func (m Maybe[V]) Get() (V, bool) {
	return m.value, m.some
}

// GetOrElse returns the value, or def for None.
func (m Maybe[V]) GetOrElse(def V) V {
	if m.some {
		return m.value
	}
	return def
}

// GetOrElseFunc returns the value, or fn() for None.
func (m Maybe[V]) GetOrElseFunc(fn func() V) V {
	if m.some {
		return m.value
	}
	return fn()
}

// Pointer returns a pointer to a copy of the value, or nil for None.
func (m Maybe[V]) Pointer() *V {
	if !m.some {
		return nil
	}
	v := m.value
	return &v
}

// OnSome calls fn with the value and returns m unchanged.
func (m Maybe[V]) OnSome(fn func(V)) Maybe[V] {
	if m.some {
		fn(m.value)
	}
	return m
}

// OnNone calls fn if m is None and returns m unchanged.
func (m Maybe[V]) OnNone(fn func()) Maybe[V] {
	if !m.some {
		fn()
	}
	return m
}

// Filter keeps the value only if it satisfies pred.
func (m Maybe[V]) Filter(pred func(V) bool) Maybe[V] {
	if !m.some || pred(m.value) {
		return m
	}
	return None[V]()
}

// OrElse returns m if it holds a value and alt otherwise.
func (m Maybe[V]) OrElse(alt Maybe[V]) Maybe[V] {
	if m.some {
		return m
	}
	return alt
}

// Recover replaces None with Some(fn()). A Some is returned as is.
func (m Maybe[V]) Recover(fn func() V) Maybe[V] {
	if m.some {
		return m
	}
	return Some(fn())
}

// Result turns Some into Success and None into a Failure with an empty cause.
func (m Maybe[V]) Result() Result[V, struct{}] {
	if m.some {
		return Success[struct{}](m.value)
	}
	return Failure[V](struct{}{})
}

// String renders m as Some(v) or None.
func (m Maybe[V]) String() string {
	if m.some {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "None"
}

// FlatMapMaybe applies fn to a held value; None short-circuits.
func FlatMapMaybe[V, U any](m Maybe[V], fn func(V) Maybe[U]) Maybe[U] {
	if m.some {
		return fn(m.value)
	}
	return None[U]()
}

// MapMaybe applies fn to a held value.
func MapMaybe[V, U any](m Maybe[V], fn func(V) U) Maybe[U] {
	return FlatMapMaybe(m, func(v V) Maybe[U] {
		return Some(fn(v))
	})
}

// FoldMaybe calls onNone or onSome.
func FoldMaybe[V, R any](m Maybe[V], onNone func() R, onSome func(V) R) R {
	if m.some {
		return onSome(m.value)
	}
	return onNone()
}
