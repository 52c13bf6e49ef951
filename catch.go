// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Fatal panic categories. The Go runtime aborts the process on a real stack
// overflow or out-of-memory condition, so these sentinels are for code that
// detects the condition itself (depth guards, allocation budgets) and panics
// with them to demand that no Catch converts the panic into a value.
var (
	ErrStackOverflow = errors.New("outcome: stack overflow")
	ErrOutOfMemory   = errors.New("outcome: out of memory")
)

// fatalErrors is the deny-list consulted by IsFatal via errors.Is.
var fatalErrors = []error{
	ErrStackOverflow,
	ErrOutOfMemory,
	context.Canceled,
}

// FatalErrors returns the sentinel errors that IsFatal treats as fatal.
func FatalErrors() []error {
	return slices.Clone(fatalErrors)
}

// Fataler is implemented by panic values that classify themselves.
type Fataler interface {
	Fatal() bool
}

// IsFatal reports whether the panic value v must never be caught.
// v is fatal if it implements Fataler and reports true, or if it is an
// error matching one of [FatalErrors]. A raise signal is not fatal:
// it is neither caught nor classified, only passed through.
func IsFatal(v any) bool {
	if v == nil || isUnwind(v) {
		return false
	}
	if f, ok := v.(Fataler); ok && f.Fatal() {
		return true
	}
	err, ok := v.(error)
	if !ok {
		return false
	}
	for _, fatal := range fatalErrors {
		if errors.Is(err, fatal) {
			return true
		}
	}
	return false
}

// PanicError carries a recovered panic value that is not an error.
type PanicError struct {
	Value any
}

// Error formats the recovered value.
func (e *PanicError) Error() string {
	return fmt.Sprintf("outcome: panic: %v", e.Value)
}

func panicToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// Catch runs block and returns its value. If block panics with a non-fatal
// value, onPanic receives it as an error and its result is returned instead.
// Fatal panics (see [IsFatal]) and raise signals are re-panicked unchanged,
// and runtime.Goexit is never intercepted.
func Catch[T any](onPanic func(error) T, block func() T) (out T) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if isUnwind(v) || IsFatal(v) {
			panic(v)
		}
		out = onPanic(panicToError(v))
	}()
	return block()
}

// Try runs block and captures a non-fatal panic as Failure.
func Try[T any](block func() T) Result[T, error] {
	return Catch(func(err error) Result[T, error] {
		return Failure[T](err)
	}, func() Result[T, error] {
		return Success[error](block())
	})
}

// CatchInto runs block and raises transform(err) in r for a non-fatal panic.
func CatchInto[T, F any](r *Raise[F], transform func(error) F, block func() T) T {
	res := Try(block)
	if !res.ok {
		r.Raise(transform(res.cause))
	}
	return res.value
}
