// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// ResultK is the Success(value) | Failure(failure) shape used where the failure
// is itself a structured payload, most commonly Fail[E, X] (see [BiFailureResultK]).
// It shares the algebra of [Result] and converts to and from it without copying.
type ResultK[V, F any] struct {
	r Result[V, F]
}

// SuccessK creates a Success ResultK.
func SuccessK[F, V any](v V) ResultK[V, F] {
	return ResultK[V, F]{r: Success[F](v)}
}

// FailureK creates a Failure ResultK.
func FailureK[V, F any](f F) ResultK[V, F] {
	return ResultK[V, F]{r: Failure[V](f)}
}

// Result converts rk to the equivalent Result.
func (rk ResultK[V, F]) Result() Result[V, F] { return rk.r }

// IsSuccess reports whether rk holds a value.
func (rk ResultK[V, F]) IsSuccess() bool { return rk.r.ok }

// IsFailure reports whether rk holds a failure.
func (rk ResultK[V, F]) IsFailure() bool { return !rk.r.ok }

// IsSuccessAnd reports whether rk is a Success whose value satisfies pred.
func (rk ResultK[V, F]) IsSuccessAnd(pred func(V) bool) bool { return rk.r.IsSuccessAnd(pred) }

// IsFailureAnd reports whether rk is a Failure whose payload satisfies pred.
func (rk ResultK[V, F]) IsFailureAnd(pred func(F) bool) bool { return rk.r.IsFailureAnd(pred) }

// Get returns the Success value; ok is false for a Failure.
func (rk ResultK[V, F]) Get() (V, bool) { return rk.r.Get() }

// GetFailure returns the Failure payload; ok is false for a Success.
func (rk ResultK[V, F]) GetFailure() (F, bool) { return rk.r.GetFailure() }

// GetOrElse returns the Success value, or def for a Failure.
func (rk ResultK[V, F]) GetOrElse(def V) V { return rk.r.GetOrElse(def) }

// GetOrElseFunc returns the Success value, or fn(failure) for a Failure.
func (rk ResultK[V, F]) GetOrElseFunc(fn func(F) V) V { return rk.r.GetOrElseFunc(fn) }

// OnSuccess calls fn on a Success and returns rk unchanged.
func (rk ResultK[V, F]) OnSuccess(fn func(V)) ResultK[V, F] {
	rk.r.OnSuccess(fn)
	return rk
}

// OnFailure calls fn on a Failure and returns rk unchanged.
func (rk ResultK[V, F]) OnFailure(fn func(F)) ResultK[V, F] {
	rk.r.OnFailure(fn)
	return rk
}

// Recover replaces a Failure with Success(fn(failure)).
func (rk ResultK[V, F]) Recover(fn func(F) V) ResultK[V, F] {
	return ResultK[V, F]{r: rk.r.Recover(fn)}
}

// RecoverWith replaces a Failure with the result of fn.
func (rk ResultK[V, F]) RecoverWith(fn func(F) ResultK[V, F]) ResultK[V, F] {
	if rk.r.ok {
		return rk
	}
	return fn(rk.r.cause)
}

// FilterOrElse turns a Success whose value fails pred into Failure(orElse(value)).
func (rk ResultK[V, F]) FilterOrElse(pred func(V) bool, orElse func(V) F) ResultK[V, F] {
	return ResultK[V, F]{r: rk.r.FilterOrElse(pred, orElse)}
}

// Maybe drops the failure payload.
func (rk ResultK[V, F]) Maybe() Maybe[V] { return rk.r.Maybe() }

// Either maps Success to Right and Failure to Left.
func (rk ResultK[V, F]) Either() Either[F, V] { return rk.r.Either() }

// String renders rk the way [Result.String] does.
func (rk ResultK[V, F]) String() string { return rk.r.String() }

// FlatMapK applies fn to the Success value; a Failure short-circuits.
func FlatMapK[V, U, F any](rk ResultK[V, F], fn func(V) ResultK[U, F]) ResultK[U, F] {
	if rk.r.ok {
		return fn(rk.r.value)
	}
	return ResultK[U, F]{r: Result[U, F]{cause: rk.r.cause}}
}

// MapK applies fn to the Success value.
func MapK[V, U, F any](rk ResultK[V, F], fn func(V) U) ResultK[U, F] {
	return FlatMapK(rk, func(v V) ResultK[U, F] {
		return SuccessK[F](fn(v))
	})
}

// MapFailureK applies fn to the Failure payload.
func MapFailureK[V, F, G any](rk ResultK[V, F], fn func(F) G) ResultK[V, G] {
	return ResultK[V, G]{r: MapFailure(rk.r, fn)}
}

// FoldK eliminates rk; exactly one branch runs.
func FoldK[V, F, R any](rk ResultK[V, F], onSuccess func(V) R, onFailure func(F) R) R {
	return Fold(rk.r, onSuccess, onFailure)
}

// MergeK collapses a ResultK whose variants carry the same type.
func MergeK[V any](rk ResultK[V, V]) V {
	return Merge(rk.r)
}
