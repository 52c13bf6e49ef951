// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "github.com/samber/mo"

// Conversions to and from github.com/samber/mo.

// Option converts m to a mo.Option.
func (m Maybe[V]) Option() mo.Option[V] {
	if m.some {
		return mo.Some(m.value)
	}
	return mo.None[V]()
}

// MaybeFromOption converts a mo.Option.
func MaybeFromOption[V any](o mo.Option[V]) Maybe[V] {
	if v, ok := o.Get(); ok {
		return Some(v)
	}
	return None[V]()
}

// ToMoResult converts an error-typed Result to a mo.Result.
func ToMoResult[T any](r Result[T, error]) mo.Result[T] {
	if r.ok {
		return mo.Ok(r.value)
	}
	return mo.Err[T](r.cause)
}

// FromMoResult converts a mo.Result.
func FromMoResult[T any](r mo.Result[T]) Result[T, error] {
	v, err := r.Get()
	return FromPair(v, err)
}

// ToMoEither converts e to a mo.Either with the same sides.
func ToMoEither[L, R any](e Either[L, R]) mo.Either[L, R] {
	if e.isRight {
		return mo.Right[L](e.right)
	}
	return mo.Left[L, R](e.left)
}

// FromMoEither converts a mo.Either.
func FromMoEither[L, R any](e mo.Either[L, R]) Either[L, R] {
	if r, ok := e.Right(); ok {
		return Right[L](r)
	}
	l, _ := e.Left()
	return Left[R](l)
}
