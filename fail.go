// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// Fail classifies a failure as a domain Error or a technical Exception.
// It is a payload, not a result shape: it is carried as the failure of a
// ResultK (see [BiFailureResultK]). The zero Fail is Error(zero E).
type Fail[E, X any] struct {
	isException bool
	err         E
	exc         X
}

// Error creates a domain failure.
func Error[X, E any](e E) Fail[E, X] {
	return Fail[E, X]{err: e}
}

// Exception creates a technical failure.
func Exception[E, X any](x X) Fail[E, X] {
	return Fail[E, X]{isException: true, exc: x}
}

// IsError reports whether f carries a domain error.
func (f Fail[E, X]) IsError() bool { return !f.isException }

// IsException reports whether f carries a technical exception.
func (f Fail[E, X]) IsException() bool { return f.isException }

// IsErrorAnd reports whether f is an Error whose value satisfies pred.
func (f Fail[E, X]) IsErrorAnd(pred func(E) bool) bool {
	return !f.isException && pred(f.err)
}

// IsExceptionAnd reports whether f is an Exception whose value satisfies pred.
func (f Fail[E, X]) IsExceptionAnd(pred func(X) bool) bool {
	return f.isException && pred(f.exc)
}

// GetError returns the domain error; ok is false for an Exception.
func (f Fail[E, X]) GetError() (E, bool) {
	if !f.isException {
		return f.err, true
	}
	var zero E
	return zero, false
}

// GetException returns the exception; ok is false for an Error.
func (f Fail[E, X]) GetException() (X, bool) {
	if f.isException {
		return f.exc, true
	}
	var zero X
	return zero, false
}

// OnError calls fn for an Error and returns f unchanged.
func (f Fail[E, X]) OnError(fn func(E)) Fail[E, X] {
	if !f.isException {
		fn(f.err)
	}
	return f
}

// OnException calls fn for an Exception and returns f unchanged.
func (f Fail[E, X]) OnException(fn func(X)) Fail[E, X] {
	if f.isException {
		fn(f.exc)
	}
	return f
}

// String renders f as Error(e) or Exception(x).
func (f Fail[E, X]) String() string {
	if f.isException {
		return fmt.Sprintf("Exception(%v)", f.exc)
	}
	return fmt.Sprintf("Error(%v)", f.err)
}

// FoldFail calls onError or onException.
func FoldFail[E, X, R any](f Fail[E, X], onError func(E) R, onException func(X) R) R {
	if f.isException {
		return onException(f.exc)
	}
	return onError(f.err)
}

// MapError transforms the Error value; an Exception passes through.
func MapError[E, X, E2 any](f Fail[E, X], fn func(E) E2) Fail[E2, X] {
	if f.isException {
		return Exception[E2](f.exc)
	}
	return Error[X](fn(f.err))
}

// MapException transforms the Exception value; an Error passes through.
func MapException[E, X, X2 any](f Fail[E, X], fn func(X) X2) Fail[E, X2] {
	if f.isException {
		return Exception[E](fn(f.exc))
	}
	return Error[X2](f.err)
}

// MergeFail collapses a Fail whose variants carry the same type.
func MergeFail[T any](f Fail[T, T]) T {
	if f.isException {
		return f.exc
	}
	return f.err
}
