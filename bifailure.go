// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// BiFailureResultK separates domain errors (E) from technical exceptions (X).
// It is a plain ResultK, so the whole ResultK algebra and the Raise DSL apply;
// the functions below only forward to the Fail algebra.
type BiFailureResultK[V, E, X any] = ResultK[V, Fail[E, X]]

// SuccessBi creates a successful BiFailureResultK.
func SuccessBi[E, X, V any](v V) BiFailureResultK[V, E, X] {
	return SuccessK[Fail[E, X]](v)
}

// ErrorBi creates a BiFailureResultK failed with a domain error.
func ErrorBi[V, X, E any](e E) BiFailureResultK[V, E, X] {
	return FailureK[V](Error[X](e))
}

// ExceptionBi creates a BiFailureResultK failed with a technical exception.
func ExceptionBi[V, E, X any](x X) BiFailureResultK[V, E, X] {
	return FailureK[V](Exception[E](x))
}

// IsErrorBi reports whether rk failed with a domain error.
func IsErrorBi[V, E, X any](rk BiFailureResultK[V, E, X]) bool {
	return rk.IsFailureAnd(Fail[E, X].IsError)
}

// IsExceptionBi reports whether rk failed with an exception.
func IsExceptionBi[V, E, X any](rk BiFailureResultK[V, E, X]) bool {
	return rk.IsFailureAnd(Fail[E, X].IsException)
}

// FoldBiFailure calls exactly one of onSuccess, onError and onException.
func FoldBiFailure[V, E, X, R any](
	rk BiFailureResultK[V, E, X],
	onSuccess func(V) R,
	onError func(E) R,
	onException func(X) R,
) R {
	return FoldK(rk, onSuccess, func(f Fail[E, X]) R {
		return FoldFail(f, onError, onException)
	})
}

// MapBiError transforms a domain error; successes and exceptions pass through.
func MapBiError[V, E, X, E2 any](rk BiFailureResultK[V, E, X], fn func(E) E2) BiFailureResultK[V, E2, X] {
	return MapFailureK(rk, func(f Fail[E, X]) Fail[E2, X] {
		return MapError(f, fn)
	})
}

// MapBiException transforms a technical exception; successes and errors pass through.
func MapBiException[V, E, X, X2 any](rk BiFailureResultK[V, E, X], fn func(X) X2) BiFailureResultK[V, E, X2] {
	return MapFailureK(rk, func(f Fail[E, X]) Fail[E, X2] {
		return MapException(f, fn)
	})
}

// OnBiError calls fn with a domain error and returns rk unchanged.
func OnBiError[V, E, X any](rk BiFailureResultK[V, E, X], fn func(E)) BiFailureResultK[V, E, X] {
	return rk.OnFailure(func(f Fail[E, X]) { f.OnError(fn) })
}

// OnBiException calls fn with a technical exception and returns rk unchanged.
func OnBiException[V, E, X any](rk BiFailureResultK[V, E, X], fn func(X)) BiFailureResultK[V, E, X] {
	return rk.OnFailure(func(f Fail[E, X]) { f.OnException(fn) })
}

// RecoverBiFailure turns either kind of failure into a success.
func RecoverBiFailure[V, E, X any](
	rk BiFailureResultK[V, E, X],
	onError func(E) V,
	onException func(X) V,
) BiFailureResultK[V, E, X] {
	return rk.Recover(func(f Fail[E, X]) V {
		return FoldFail(f, onError, onException)
	})
}

// RaiseError raises a domain error in a bi-failure scope.
func RaiseError[E, X any](r *Raise[Fail[E, X]], e E) {
	r.Raise(Error[X](e))
}

// RaiseException raises a technical exception in a bi-failure scope.
func RaiseException[E, X any](r *Raise[Fail[E, X]], x X) {
	r.Raise(Exception[E](x))
}

// CatchException runs block and raises a non-fatal panic as Exception(err).
func CatchException[V, E any](r *Raise[Fail[E, error]], block func() V) V {
	return CatchInto(r, Exception[E, error], block)
}
