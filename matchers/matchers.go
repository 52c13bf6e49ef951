// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package matchers provides test assertions for outcome containers.
//
// The Should* functions report through testify's assert.TestingT, so they
// accept a *testing.T directly, and return whether the assertion held.
// Payloads are compared with go-cmp, including nested outcome, nel and hlist
// values; errors match when errors.Is reports so.
package matchers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/outcome"
)

type tHelper interface {
	Helper()
}

// root is the import path of package outcome. Types declared under it have
// unexported fields, which cmp reads only when an Exporter allows it.
var root = reflect.TypeFor[outcome.Maybe[struct{}]]().PkgPath()

func ownType(t reflect.Type) bool {
	p := t.PkgPath()
	return p == root || strings.HasPrefix(p, root+"/")
}

var compareOptions = cmp.Options{
	cmpopts.EquateErrors(),
	cmp.Exporter(ownType),
}

// BeSuccess reports whether r is a Success.
func BeSuccess[T, F any](r outcome.Result[T, F]) bool { return r.IsSuccess() }

// BeFailure reports whether r is a Failure.
func BeFailure[T, F any](r outcome.Result[T, F]) bool { return r.IsFailure() }

// BeSome reports whether m holds a value.
func BeSome[V any](m outcome.Maybe[V]) bool { return m.IsSome() }

// BeNone reports whether m is empty.
func BeNone[V any](m outcome.Maybe[V]) bool { return m.IsNone() }

// BeLeft reports whether e is Left.
func BeLeft[L, R any](e outcome.Either[L, R]) bool { return e.IsLeft() }

// BeRight reports whether e is Right.
func BeRight[L, R any](e outcome.Either[L, R]) bool { return e.IsRight() }

// payload compares want and got, failing t with a diff on mismatch.
func payload(t assert.TestingT, variant string, want, got any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if cmp.Equal(want, got, compareOptions) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("%s payload mismatch (-want +got):\n%s",
		variant, cmp.Diff(want, got, compareOptions)), msgAndArgs...)
}

func variant(t assert.TestingT, want string, got fmt.Stringer, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Fail(t, fmt.Sprintf("expected %s, got %v", want, got), msgAndArgs...)
}

// ShouldBeSuccess asserts that r is Success(want).
func ShouldBeSuccess[T, F any](t assert.TestingT, r outcome.Result[T, F], want T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got, ok := r.Get()
	if !ok {
		return variant(t, "Success", r, msgAndArgs...)
	}
	return payload(t, "Success", want, got, msgAndArgs...)
}

// ShouldBeFailure asserts that r is Failure(want).
func ShouldBeFailure[T, F any](t assert.TestingT, r outcome.Result[T, F], want F, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got, ok := r.GetFailure()
	if !ok {
		return variant(t, "Failure", r, msgAndArgs...)
	}
	return payload(t, "Failure", want, got, msgAndArgs...)
}

// ShouldBeSome asserts that m is Some(want).
func ShouldBeSome[V any](t assert.TestingT, m outcome.Maybe[V], want V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got, ok := m.Get()
	if !ok {
		return variant(t, "Some", m, msgAndArgs...)
	}
	return payload(t, "Some", want, got, msgAndArgs...)
}

// ShouldBeNone asserts that m is None.
func ShouldBeNone[V any](t assert.TestingT, m outcome.Maybe[V], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if m.IsNone() {
		return true
	}
	return variant(t, "None", m, msgAndArgs...)
}

// ShouldBeLeft asserts that e is Left(want).
func ShouldBeLeft[L, R any](t assert.TestingT, e outcome.Either[L, R], want L, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got, ok := e.GetLeft()
	if !ok {
		return variant(t, "Left", e, msgAndArgs...)
	}
	return payload(t, "Left", want, got, msgAndArgs...)
}

// ShouldBeRight asserts that e is Right(want).
func ShouldBeRight[L, R any](t assert.TestingT, e outcome.Either[L, R], want R, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	got, ok := e.GetRight()
	if !ok {
		return variant(t, "Right", e, msgAndArgs...)
	}
	return payload(t, "Right", want, got, msgAndArgs...)
}

// ShouldBeError asserts that rk failed with the domain error want.
func ShouldBeError[V, E, X any](t assert.TestingT, rk outcome.BiFailureResultK[V, E, X], want E, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	f, _ := rk.GetFailure()
	got, ok := f.GetError()
	if rk.IsSuccess() || !ok {
		return variant(t, "Failure(Error)", rk, msgAndArgs...)
	}
	return payload(t, "Error", want, got, msgAndArgs...)
}

// ShouldBeException asserts that rk failed with the technical exception want.
func ShouldBeException[V, E, X any](t assert.TestingT, rk outcome.BiFailureResultK[V, E, X], want X, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	f, _ := rk.GetFailure()
	got, ok := f.GetException()
	if rk.IsSuccess() || !ok {
		return variant(t, "Failure(Exception)", rk, msgAndArgs...)
	}
	return payload(t, "Exception", want, got, msgAndArgs...)
}
