// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// Result is a value that is either Success(value) or Failure(cause).
// The zero Result is a Failure carrying the zero F.
type Result[T, F any] struct {
	ok    bool
	value T
	cause F
}

// Success creates a Success result. F comes first so that T is inferred:
//
//	r := outcome.Success[string](42) // Result[int, string]
func Success[F, T any](v T) Result[T, F] {
	return Result[T, F]{ok: true, value: v}
}

// Failure creates a Failure result.
func Failure[T, F any](f F) Result[T, F] {
	return Result[T, F]{cause: f}
}

// FromPair lifts a conventional (value, error) pair.
// A non-nil err yields Failure(err) and the value is dropped.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](v)
}

// IsSuccess reports whether r is a Success.
func (r Result[T, F]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r is a Failure.
func (r Result[T, F]) IsFailure() bool {
	return !r.ok
}

// IsSuccessAnd reports whether r is a Success whose value satisfies pred.
// pred is not evaluated for a Failure.
func (r Result[T, F]) IsSuccessAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsFailureAnd reports whether r is a Failure whose cause satisfies pred.
// pred is not evaluated for a Success.
func (r Result[T, F]) IsFailureAnd(pred func(F) bool) bool {
	return !r.ok && pred(r.cause)
}

// Get returns the Success value and true, or zero and false.
func (r Result[T, F]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetFailure returns the Failure cause and true, or zero and false.
func (r Result[T, F]) GetFailure() (F, bool) {
	if !r.ok {
		return r.cause, true
	}
	var zero F
	return zero, false
}

// GetOrElse returns the Success value, or def for a Failure.
func (r Result[T, F]) GetOrElse(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// GetOrElseFunc returns the Success value, or fn(cause) for a Failure.
func (r Result[T, F]) GetOrElseFunc(fn func(F) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.cause)
}

// OnSuccess calls fn with the value of a Success and returns r unchanged.
func (r Result[T, F]) OnSuccess(fn func(T)) Result[T, F] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// OnFailure calls fn with the cause of a Failure and returns r unchanged.
func (r Result[T, F]) OnFailure(fn func(F)) Result[T, F] {
	if !r.ok {
		fn(r.cause)
	}
	return r
}

// Recover replaces a Failure with Success(fn(cause)).
// A Success is returned as is.
func (r Result[T, F]) Recover(fn func(F) T) Result[T, F] {
	if r.ok {
		return r
	}
	return Success[F](fn(r.cause))
}

// RecoverWith replaces a Failure with the result of fn.
// A Success is returned as is.
func (r Result[T, F]) RecoverWith(fn func(F) Result[T, F]) Result[T, F] {
	if r.ok {
		return r
	}
	return fn(r.cause)
}

// FilterOrElse turns a Success whose value fails pred into Failure(orElse(value)).
func (r Result[T, F]) FilterOrElse(pred func(T) bool, orElse func(T) F) Result[T, F] {
	if !r.ok || pred(r.value) {
		return r
	}
	return Failure[T](orElse(r.value))
}

// Maybe returns Some(value) for a Success and None for a Failure.
func (r Result[T, F]) Maybe() Maybe[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// FailureMaybe returns Some(cause) for a Failure and None for a Success.
func (r Result[T, F]) FailureMaybe() Maybe[F] {
	if r.ok {
		return None[F]()
	}
	return Some(r.cause)
}

// Either maps Failure to Left and Success to Right.
func (r Result[T, F]) Either() Either[F, T] {
	if r.ok {
		return Right[F](r.value)
	}
	return Left[T](r.cause)
}

// K converts r to the equivalent ResultK.
func (r Result[T, F]) K() ResultK[T, F] {
	return ResultK[T, F]{r: r}
}

// String implements fmt.Stringer.
func (r Result[T, F]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.cause)
}

// FlatMap applies fn to the Success value. A Failure short-circuits
// and fn is never called.
func FlatMap[T, U, F any](r Result[T, F], fn func(T) Result[U, F]) Result[U, F] {
	if r.ok {
		return fn(r.value)
	}
	return Result[U, F]{cause: r.cause}
}

// Map applies fn to the Success value. Equivalent to
// FlatMap(r, func(t T) Result[U, F] { return Success[F](fn(t)) }).
func Map[T, U, F any](r Result[T, F], fn func(T) U) Result[U, F] {
	return FlatMap(r, func(t T) Result[U, F] {
		return Success[F](fn(t))
	})
}

// MapFailure applies fn to the Failure cause.
func MapFailure[T, F, G any](r Result[T, F], fn func(F) G) Result[T, G] {
	if r.ok {
		return Result[T, G]{ok: true, value: r.value}
	}
	return Failure[T](fn(r.cause))
}

// Fold eliminates r. Exactly one of onSuccess and onFailure is called, once.
func Fold[T, F, R any](r Result[T, F], onSuccess func(T) R, onFailure func(F) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.cause)
}

// Flatten removes one level of nesting.
func Flatten[T, F any](r Result[Result[T, F], F]) Result[T, F] {
	return FlatMap(r, func(inner Result[T, F]) Result[T, F] { return inner })
}

// Merge collapses a Result whose variants carry the same type.
func Merge[T any](r Result[T, T]) T {
	if r.ok {
		return r.value
	}
	return r.cause
}
