// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// Either represents a value that is either Left or Right.
// Unlike [Result] it carries no success/failure meaning, but combinators
// are right-biased: MapEither and FlatMapEither transform the Right side.
// The zero Either is Left(zero L).
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[R, L any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right creates a Right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{isRight: true, right: v}
}

// IsRight reports whether e holds the Right side.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// IsLeft reports whether e holds the Left side.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsLeftAnd reports whether e is Left and its value satisfies pred.
func (e Either[L, R]) IsLeftAnd(pred func(L) bool) bool {
	return !e.isRight && pred(e.left)
}

// IsRightAnd reports whether e is Right and its value satisfies pred.
func (e Either[L, R]) IsRightAnd(pred func(R) bool) bool {
	return e.isRight && pred(e.right)
}

// GetRight returns the Right payload; ok is false for a Left.
func (e Either[L, R]) GetRight() (v R, ok bool) {
	return e.right, e.isRight
}

// GetLeft returns the Left payload; ok is false for a Right.
func (e Either[L, R]) GetLeft() (v L, ok bool) {
	return e.left, !e.isRight
}

// GetOrElse returns the Right value, or def for a Left.
func (e Either[L, R]) GetOrElse(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// GetOrElseFunc returns the Right value, or fn(left) for a Left.
func (e Either[L, R]) GetOrElseFunc(fn func(L) R) R {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// Recover replaces a Left with Right(fn(left)). A Right is returned as is.
func (e Either[L, R]) Recover(fn func(L) R) Either[L, R] {
	if e.isRight {
		return e
	}
	return Right[L](fn(e.left))
}

// RecoverWith replaces a Left with the result of fn. A Right is returned as is.
func (e Either[L, R]) RecoverWith(fn func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return fn(e.left)
}

// FilterOrElse turns a Right whose value fails pred into Left(orElse(value)).
func (e Either[L, R]) FilterOrElse(pred func(R) bool, orElse func(R) L) Either[L, R] {
	if !e.isRight || pred(e.right) {
		return e
	}
	return Left[R](orElse(e.right))
}

// OnLeft calls fn with a Left value and returns e unchanged.
func (e Either[L, R]) OnLeft(fn func(L)) Either[L, R] {
	if !e.isRight {
		fn(e.left)
	}
	return e
}

// OnRight calls fn with a Right value and returns e unchanged.
func (e Either[L, R]) OnRight(fn func(R)) Either[L, R] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[L](e.right)
	}
	return Right[R](e.left)
}

// Result treats Right as Success and Left as Failure.
func (e Either[L, R]) Result() Result[R, L] {
	if e.isRight {
		return Success[L](e.right)
	}
	return Failure[R](e.left)
}

// String renders e as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// FoldEither reduces e to a T; exactly one of onLeft and onRight runs.
func FoldEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FlatMapEither feeds a Right value to fn; a Left passes through with its
// payload retyped.
func FlatMapEither[L, R, S any](e Either[L, R], fn func(R) Either[L, S]) Either[L, S] {
	if !e.isRight {
		return Left[S](e.left)
	}
	return fn(e.right)
}

// MapEither transforms the Right payload.
func MapEither[L, R, S any](e Either[L, R], fn func(R) S) Either[L, S] {
	return FlatMapEither(e, func(r R) Either[L, S] { return Right[L](fn(r)) })
}

// MapLeftEither transforms the Left payload.
func MapLeftEither[L, M, R any](e Either[L, R], fn func(L) M) Either[M, R] {
	if !e.isRight {
		return Left[R](fn(e.left))
	}
	return Right[M](e.right)
}

// MergeEither collapses an Either whose sides carry the same type.
func MergeEither[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}
