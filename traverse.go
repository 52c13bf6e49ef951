// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "iter"

// Collection operations are fail-fast: iteration stops at the first failure,
// which is returned as is. On full success the unwrapped values are returned
// in input order. An empty input yields a success holding an empty, non-nil slice.

// Traverse applies fn to each element of xs in order.
func Traverse[A, B, F any](xs []A, fn func(A) Result[B, F]) Result[[]B, F] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		r := fn(x)
		if !r.ok {
			return Failure[[]B](r.cause)
		}
		out = append(out, r.value)
	}
	return Success[F](out)
}

// Sequence turns a slice of results into a result of a slice.
func Sequence[T, F any](rs []Result[T, F]) Result[[]T, F] {
	return Traverse(rs, func(r Result[T, F]) Result[T, F] { return r })
}

// TraverseSeq is [Traverse] over an iterator. The iterator is not advanced
// past the first failure.
func TraverseSeq[A, B, F any](xs iter.Seq[A], fn func(A) Result[B, F]) Result[[]B, F] {
	out := make([]B, 0)
	for x := range xs {
		r := fn(x)
		if !r.ok {
			return Failure[[]B](r.cause)
		}
		out = append(out, r.value)
	}
	return Success[F](out)
}

// TraverseK is [Traverse] for ResultK.
func TraverseK[A, B, F any](xs []A, fn func(A) ResultK[B, F]) ResultK[[]B, F] {
	return Traverse(xs, func(a A) Result[B, F] { return fn(a).r }).K()
}

// SequenceK is [Sequence] for ResultK.
func SequenceK[V, F any](rs []ResultK[V, F]) ResultK[[]V, F] {
	return TraverseK(rs, func(rk ResultK[V, F]) ResultK[V, F] { return rk })
}

// TraverseEither stops at the first Left.
func TraverseEither[A, L, R any](xs []A, fn func(A) Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(xs))
	for _, x := range xs {
		e := fn(x)
		if !e.isRight {
			return Left[[]R](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}

// SequenceEither stops at the first Left.
func SequenceEither[L, R any](es []Either[L, R]) Either[L, []R] {
	return TraverseEither(es, func(e Either[L, R]) Either[L, R] { return e })
}

// TraverseMaybe stops at the first None.
func TraverseMaybe[A, V any](xs []A, fn func(A) Maybe[V]) Maybe[[]V] {
	out := make([]V, 0, len(xs))
	for _, x := range xs {
		m := fn(x)
		if !m.some {
			return None[[]V]()
		}
		out = append(out, m.value)
	}
	return Some(out)
}

// SequenceMaybe stops at the first None.
func SequenceMaybe[V any](ms []Maybe[V]) Maybe[[]V] {
	return TraverseMaybe(ms, func(m Maybe[V]) Maybe[V] { return m })
}
