// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hlist provides a strictly keyed heterogeneous list: every element
// is stored under a typed Key, and reading it back through that Key yields
// the element with its static type restored.
package hlist

import "code.hybscloud.com/outcome"

type slot struct {
	name string
}

// AnyKey is satisfied by every Key[T].
type AnyKey interface {
	slot() *slot
}

// Key names a slot holding a T. Keys compare by identity, so two keys
// created with the same name are distinct.
type Key[T any] struct {
	s *slot
}

// NewKey creates a fresh key. name is only used for display.
func NewKey[T any](name string) Key[T] {
	return Key[T]{s: &slot{name: name}}
}

func (k Key[T]) slot() *slot { return k.s }

// Name returns the display name given to NewKey.
func (k Key[T]) Name() string {
	if k.s == nil {
		return ""
	}
	return k.s.name
}

// Of binds v to k. Panics on the zero Key.
func (k Key[T]) Of(v T) Entry {
	if k.s == nil {
		panic("hlist: zero Key")
	}
	return Entry{s: k.s, value: v}
}

// Entry is one keyed element.
type Entry struct {
	s     *slot
	value any
}

// Name returns the name of the entry's key.
func (e Entry) Name() string { return e.s.name }

// Value returns the element with its static type erased.
func (e Entry) Value() any { return e.value }

// List is an immutable, insertion-ordered list with at most one entry per key.
type List struct {
	entries []Entry
}

// Empty returns the list with no entries.
func Empty() List { return List{} }

// Of builds a list; a later entry replaces an earlier one with the same key.
// Panics on the zero Entry.
func Of(entries ...Entry) List {
	l := Empty()
	for _, e := range entries {
		l = l.Plus(e)
	}
	return l
}

func (l List) index(s *slot) int {
	for i, e := range l.entries {
		if e.s == s {
			return i
		}
	}
	return -1
}

// Plus returns a list with e added. If e's key is already present its entry
// is replaced in place; otherwise e is appended. Panics on the zero Entry.
func (l List) Plus(e Entry) List {
	if e.s == nil {
		panic("hlist: zero Entry")
	}
	entries := make([]Entry, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	if i := l.index(e.s); i >= 0 {
		entries[i] = e
		return List{entries: entries}
	}
	return List{entries: append(entries, e)}
}

// Contains reports whether k has an entry.
func (l List) Contains(k AnyKey) bool {
	return k.slot() != nil && l.index(k.slot()) >= 0
}

// Len returns the number of entries.
func (l List) Len() int { return len(l.entries) }

// Names returns the key names in order.
func (l List) Names() []string {
	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.s.name
	}
	return names
}

// Get returns the element stored under k.
func Get[T any](l List, k Key[T]) outcome.Maybe[T] {
	if k.s == nil {
		return outcome.None[T]()
	}
	i := l.index(k.s)
	if i < 0 {
		return outcome.None[T]()
	}
	v, _ := l.entries[i].value.(T)
	return outcome.Some(v)
}

// Fold folds the entries in insertion order.
func Fold[R any](l List, initial R, fn func(acc R, e Entry) R) R {
	acc := initial
	for _, e := range l.entries {
		acc = fn(acc, e)
	}
	return acc
}
