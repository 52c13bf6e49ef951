// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/outcome"
)

// counter returns a callback wrapper and a pointer to its call count.
func counter[A, B any](f func(A) B) (func(A) B, *int) {
	n := new(int)
	return func(a A) B {
		*n++
		return f(a)
	}, n
}

// forbidden returns a callback that fails the test when invoked.
func forbidden[A, B any](t *testing.T) func(A) B {
	return func(A) B {
		t.Helper()
		t.Fatal("callback invoked on the non-matching variant")
		var zero B
		return zero
	}
}

func TestResultSuccess(t *testing.T) {
	r := outcome.Success[string](42)
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatal("expected Success")
	}
	v, ok := r.Get()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := r.GetFailure(); ok {
		t.Fatal("GetFailure on Success reported ok")
	}
	if got := r.String(); got != "Success(42)" {
		t.Fatalf("got %q, want %q", got, "Success(42)")
	}
}

func TestResultFailure(t *testing.T) {
	r := outcome.Failure[int]("boom")
	if !r.IsFailure() || r.IsSuccess() {
		t.Fatal("expected Failure")
	}
	f, ok := r.GetFailure()
	if !ok || f != "boom" {
		t.Fatalf("got (%q, %v), want (\"boom\", true)", f, ok)
	}
	if got := r.String(); got != "Failure(boom)" {
		t.Fatalf("got %q, want %q", got, "Failure(boom)")
	}
}

func TestResultZeroIsFailure(t *testing.T) {
	var r outcome.Result[int, string]
	if !r.IsFailure() {
		t.Fatal("zero Result should be Failure")
	}
}

func TestResultPredicates(t *testing.T) {
	s := outcome.Success[string](4)
	f := outcome.Failure[int]("e")

	if !s.IsSuccessAnd(func(v int) bool { return v%2 == 0 }) {
		t.Fatal("IsSuccessAnd: want true")
	}
	if s.IsFailureAnd(forbidden[string, bool](t)) {
		t.Fatal("IsFailureAnd on Success: want false")
	}
	if f.IsSuccessAnd(forbidden[int, bool](t)) {
		t.Fatal("IsSuccessAnd on Failure: want false")
	}
	if !f.IsFailureAnd(func(e string) bool { return e == "e" }) {
		t.Fatal("IsFailureAnd: want true")
	}
}

func TestResultFromPair(t *testing.T) {
	n, err := strconv.Atoi("12")
	if got := outcome.FromPair(n, err); got.GetOrElse(0) != 12 {
		t.Fatalf("got %v, want Success(12)", got)
	}
	n, err = strconv.Atoi("x")
	r := outcome.FromPair(n, err)
	got, ok := r.GetFailure()
	if !ok {
		t.Fatal("expected Failure")
	}
	var numErr *strconv.NumError
	if !errors.As(got, &numErr) {
		t.Fatalf("got %T, want *strconv.NumError", got)
	}
}

func TestResultGetOrElseRoundTrip(t *testing.T) {
	if got := outcome.Success[string](7).GetOrElse(0); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := outcome.Failure[int]("e").GetOrElse(-1); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}

	fn, n := counter(func(e string) int { return len(e) })
	if got := outcome.Failure[int]("abc").GetOrElseFunc(fn); got != 3 || *n != 1 {
		t.Fatalf("got %d after %d calls, want 3 after 1", got, *n)
	}
	if got := outcome.Success[string](9).GetOrElseFunc(forbidden[string, int](t)); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMapSuccess(t *testing.T) {
	inc, n := counter(func(x int) int { return x + 1 })
	got := outcome.Map(outcome.Success[string](1), inc)
	if v, _ := got.Get(); v != 2 {
		t.Fatalf("got %v, want Success(2)", got)
	}
	if *n != 1 {
		t.Fatalf("callback invoked %d times, want 1", *n)
	}
}

func TestMapFailureUntouched(t *testing.T) {
	r := outcome.Failure[int]("e")
	got := outcome.Map(r, forbidden[int, string](t))
	if f, ok := got.GetFailure(); !ok || f != "e" {
		t.Fatalf("got %v, want Failure(e)", got)
	}

	// Type-preserving operations hand back the receiver itself.
	same := outcome.Map(r, forbidden[int, int](t))
	if same != r {
		t.Fatalf("got %v, want the receiver %v", same, r)
	}
}

func TestFlatMap(t *testing.T) {
	half := func(x int) outcome.Result[int, string] {
		if x%2 != 0 {
			return outcome.Failure[int]("odd")
		}
		return outcome.Success[string](x / 2)
	}
	if got := outcome.FlatMap(outcome.Success[string](8), half); got != outcome.Success[string](4) {
		t.Fatalf("got %v, want Success(4)", got)
	}
	if got := outcome.FlatMap(outcome.Success[string](3), half); got != outcome.Failure[int]("odd") {
		t.Fatalf("got %v, want Failure(odd)", got)
	}
	r := outcome.Failure[int]("first")
	if got := outcome.FlatMap(r, forbidden[int, outcome.Result[int, string]](t)); got != r {
		t.Fatalf("got %v, want %v", got, r)
	}
}

func TestMapFailure(t *testing.T) {
	got := outcome.MapFailure(outcome.Failure[int]("abc"), func(s string) int { return len(s) })
	if f, _ := got.GetFailure(); f != 3 {
		t.Fatalf("got %v, want Failure(3)", got)
	}
	ok := outcome.MapFailure(outcome.Success[string](1), forbidden[string, int](t))
	if v, _ := ok.Get(); v != 1 {
		t.Fatalf("got %v, want Success(1)", ok)
	}
}

func TestFoldInvokesExactlyOneBranch(t *testing.T) {
	onS, ns := counter(func(v int) string { return "s" + strconv.Itoa(v) })
	onF, nf := counter(func(e string) string { return "f" + e })

	if got := outcome.Fold(outcome.Success[string](1), onS, onF); got != "s1" {
		t.Fatalf("got %q, want %q", got, "s1")
	}
	if got := outcome.Fold(outcome.Failure[int]("x"), onS, onF); got != "fx" {
		t.Fatalf("got %q, want %q", got, "fx")
	}
	if *ns != 1 || *nf != 1 {
		t.Fatalf("branch calls = (%d, %d), want (1, 1)", *ns, *nf)
	}
}

func TestRecover(t *testing.T) {
	fn, n := counter(func(e string) int { return len(e) })
	if got := outcome.Failure[int]("abcd").Recover(fn); got != outcome.Success[string](4) {
		t.Fatalf("got %v, want Success(4)", got)
	}
	s := outcome.Success[string](1)
	if got := s.Recover(forbidden[string, int](t)); got != s {
		t.Fatalf("got %v, want %v", got, s)
	}
	if *n != 1 {
		t.Fatalf("recover invoked %d times, want 1", *n)
	}

	with := outcome.Failure[int]("x").RecoverWith(func(e string) outcome.Result[int, string] {
		return outcome.Failure[int](e + "!")
	})
	if with != outcome.Failure[int]("x!") {
		t.Fatalf("got %v, want Failure(x!)", with)
	}
	if got := s.RecoverWith(forbidden[string, outcome.Result[int, string]](t)); got != s {
		t.Fatalf("got %v, want %v", got, s)
	}
}

func TestTaps(t *testing.T) {
	var seen []string
	s := outcome.Success[string](1)
	f := outcome.Failure[int]("e")

	if got := s.OnSuccess(func(int) { seen = append(seen, "s") }).OnFailure(func(string) { seen = append(seen, "bad") }); got != s {
		t.Fatalf("OnSuccess changed the result: %v", got)
	}
	if got := f.OnFailure(func(string) { seen = append(seen, "f") }).OnSuccess(func(int) { seen = append(seen, "bad") }); got != f {
		t.Fatalf("OnFailure changed the result: %v", got)
	}
	if len(seen) != 2 || seen[0] != "s" || seen[1] != "f" {
		t.Fatalf("got taps %v, want [s f]", seen)
	}
}

func TestFilterOrElse(t *testing.T) {
	positive := func(v int) bool { return v > 0 }
	neg := func(v int) string { return "neg " + strconv.Itoa(v) }

	s := outcome.Success[string](3)
	if got := s.FilterOrElse(positive, neg); got != s {
		t.Fatalf("got %v, want %v", got, s)
	}
	if got := outcome.Success[string](-2).FilterOrElse(positive, neg); got != outcome.Failure[int]("neg -2") {
		t.Fatalf("got %v, want Failure(neg -2)", got)
	}
	f := outcome.Failure[int]("e")
	if got := f.FilterOrElse(forbidden[int, bool](t), neg); got != f {
		t.Fatalf("got %v, want %v", got, f)
	}
}

func TestMergeAndFlatten(t *testing.T) {
	if got := outcome.Merge(outcome.Success[string]("a")); got != "a" {
		t.Fatalf("got %q, want a", got)
	}
	if got := outcome.Merge(outcome.Failure[string]("b")); got != "b" {
		t.Fatalf("got %q, want b", got)
	}
	nested := outcome.Success[string](outcome.Success[string](5))
	if got := outcome.Flatten(nested); got != outcome.Success[string](5) {
		t.Fatalf("got %v, want Success(5)", got)
	}
	outer := outcome.Failure[outcome.Result[int, string]]("outer")
	if got := outcome.Flatten(outer); got != outcome.Failure[int]("outer") {
		t.Fatalf("got %v, want Failure(outer)", got)
	}
}

func TestResultConversions(t *testing.T) {
	s := outcome.Success[string](1)
	f := outcome.Failure[int]("e")

	if v, ok := s.Maybe().Get(); !ok || v != 1 {
		t.Fatal("Success.Maybe should be Some(1)")
	}
	if f.Maybe().IsSome() {
		t.Fatal("Failure.Maybe should be None")
	}
	if e, ok := f.FailureMaybe().Get(); !ok || e != "e" {
		t.Fatal("Failure.FailureMaybe should be Some(e)")
	}
	if !s.FailureMaybe().IsNone() {
		t.Fatal("Success.FailureMaybe should be None")
	}
	if !s.Either().IsRight() || !f.Either().IsLeft() {
		t.Fatal("Either conversion should map Success to Right and Failure to Left")
	}
	if s.K().Result() != s {
		t.Fatal("K round trip changed the value")
	}
}
