// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nel provides NonEmptyList, a list that always holds at least one
// element, and fail-accumulating traversals over outcome.Result for callers
// that want every failure rather than the first one.
package nel

import (
	"iter"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"code.hybscloud.com/outcome"
)

// NonEmptyList is an immutable list with at least one element.
// The zero value is a one-element list holding the zero T.
type NonEmptyList[T any] struct {
	head T
	tail []T
}

// ValueOf creates a list from a head and a tail. tail is copied.
func ValueOf[T any](head T, tail []T) NonEmptyList[T] {
	return NonEmptyList[T]{head: head, tail: slices.Clone(tail)}
}

// Of creates a list from its elements.
func Of[T any](head T, tail ...T) NonEmptyList[T] {
	return ValueOf(head, tail)
}

// FromSlice returns None for an empty slice.
func FromSlice[T any](xs []T) outcome.Maybe[NonEmptyList[T]] {
	if len(xs) == 0 {
		return outcome.None[NonEmptyList[T]]()
	}
	return outcome.Some(ValueOf(xs[0], xs[1:]))
}

// Head returns the first element.
func (l NonEmptyList[T]) Head() T { return l.head }

// Tail returns a copy of every element but the first.
func (l NonEmptyList[T]) Tail() []T { return slices.Clone(l.tail) }

// Len returns the number of elements, at least 1.
func (l NonEmptyList[T]) Len() int { return 1 + len(l.tail) }

// Last returns the final element.
func (l NonEmptyList[T]) Last() T {
	if len(l.tail) == 0 {
		return l.head
	}
	return l.tail[len(l.tail)-1]
}

// Slice returns a fresh slice of all elements.
func (l NonEmptyList[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	out = append(out, l.head)
	return append(out, l.tail...)
}

// All iterates over the elements in order.
func (l NonEmptyList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(l.head) {
			return
		}
		for _, v := range l.tail {
			if !yield(v) {
				return
			}
		}
	}
}

// Plus appends v.
func (l NonEmptyList[T]) Plus(v T) NonEmptyList[T] {
	return l.PlusAll(v)
}

// PlusAll appends vs.
func (l NonEmptyList[T]) PlusAll(vs ...T) NonEmptyList[T] {
	tail := make([]T, 0, len(l.tail)+len(vs))
	tail = append(tail, l.tail...)
	return NonEmptyList[T]{head: l.head, tail: append(tail, vs...)}
}

// Concat appends every element of other.
func (l NonEmptyList[T]) Concat(other NonEmptyList[T]) NonEmptyList[T] {
	return l.PlusAll(other.Slice()...)
}

func fromNonEmpty[T any](xs []T) NonEmptyList[T] {
	return NonEmptyList[T]{head: xs[0], tail: xs[1:]}
}

// Map applies fn to every element in order.
func Map[T, U any](l NonEmptyList[T], fn func(T) U) NonEmptyList[U] {
	return fromNonEmpty(lo.Map(l.Slice(), func(v T, _ int) U { return fn(v) }))
}

// FlatMap applies fn to every element and concatenates the results.
func FlatMap[T, U any](l NonEmptyList[T], fn func(T) NonEmptyList[U]) NonEmptyList[U] {
	return fromNonEmpty(lo.FlatMap(l.Slice(), func(v T, _ int) []U { return fn(v).Slice() }))
}

// Errors combines a list of errors into one multierror.
// nil elements are skipped; the result is nil only if every element is nil.
func Errors(l NonEmptyList[error]) error {
	return multierror.Append(nil, l.Slice()...).ErrorOrNil()
}
