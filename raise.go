// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// Raise is the capability to abort the enclosing scope with a failure of type F.
// A *Raise[F] is created by a scope builder ([Run], [RunWith], [RunMaybe], ...)
// and handed to the block; it must not outlive the block.
//
// A raise is delivered by panicking with a private signal that records the
// raising *Raise. Only the scope that created that exact *Raise converts the
// signal to a failure. Every other recover site in between, including nested
// scopes of the same failure type and [Catch], re-panics it unchanged.
type Raise[F any] struct {
	// done is set once the owning scope has returned.
	// It also keeps Raise non-zero-sized so that every scope gets a distinct address.
	done bool
}

// unwind is the panic value carried from Raise.Raise to the owning scope.
type unwind[F any] struct {
	owner   *Raise[F]
	failure F
}

func (*unwind[F]) raiseSignal() {}

// signal is implemented by every unwind instantiation, whatever its F.
type signal interface{ raiseSignal() }

func isUnwind(v any) bool {
	_, ok := v.(signal)
	return ok
}

// raiseOutsideScope panics for a capability used after its scope returned.
//
//go:noinline
func raiseOutsideScope() {
	panic("outcome: raise used outside its scope")
}

// Raise aborts the owning scope with failure f. It never returns.
// Panics if the owning scope has already completed.
func (r *Raise[F]) Raise(f F) {
	if r.done {
		raiseOutsideScope()
	}
	panic(&unwind[F]{owner: r, failure: f})
}

// Ensure raises failure() when cond is false. failure is called at most once.
func (r *Raise[F]) Ensure(cond bool, failure func() F) {
	if !cond {
		r.Raise(failure())
	}
}

// EnsureNotNil raises failure() when p is nil and returns *p otherwise.
func EnsureNotNil[T, F any](r *Raise[F], p *T, failure func() F) T {
	if p == nil {
		r.Raise(failure())
	}
	return *p
}

// Bind returns the Success value, or raises the Failure cause in r's scope.
func (res Result[T, F]) Bind(r *Raise[F]) T {
	if !res.ok {
		r.Raise(res.cause)
	}
	return res.value
}

// Bind returns the Success value, or raises the Failure payload in r's scope.
func (rk ResultK[V, F]) Bind(r *Raise[F]) V {
	return rk.r.Bind(r)
}

// Bind returns the Right value, or raises the Left value in r's scope.
func (e Either[L, R]) Bind(r *Raise[L]) R {
	if !e.isRight {
		r.Raise(e.left)
	}
	return e.right
}

// BindMaybe returns the held value, or raises ifNone() in r's scope.
func BindMaybe[V, F any](r *Raise[F], m Maybe[V], ifNone func() F) V {
	if !m.some {
		r.Raise(ifNone())
	}
	return m.value
}

// scope runs block under a fresh capability. On a raise owned by that
// capability it returns the failure and raised=true; any other panic
// propagates unchanged.
func scope[T, F any](block func(r *Raise[F]) T) (value T, failure F, raised bool) {
	r := &Raise[F]{}
	defer func() {
		r.done = true
		v := recover()
		if v == nil {
			return
		}
		if u, ok := v.(*unwind[F]); ok && u.owner == r {
			failure, raised = u.failure, true
			return
		}
		panic(v)
	}()
	value = block(r)
	return
}

// Run executes block and wraps its return value as Success.
// A raise on the block's capability yields Failure.
//
//	res := outcome.Run(func(r *outcome.Raise[string]) int {
//		a := outcome.Success[string](1).Bind(r)
//		r.Ensure(a > 0, func() string { return "negative" })
//		return a * 2
//	})
func Run[T, F any](block func(r *Raise[F]) T) Result[T, F] {
	v, f, raised := scope(block)
	if raised {
		return Failure[T](f)
	}
	return Success[F](v)
}

// RunWith executes block, which returns the Result directly.
func RunWith[T, F any](block func(r *Raise[F]) Result[T, F]) Result[T, F] {
	v, f, raised := scope(block)
	if raised {
		return Failure[T](f)
	}
	return v
}

// RunK is [Run] producing a ResultK.
func RunK[V, F any](block func(r *Raise[F]) V) ResultK[V, F] {
	return Run(block).K()
}

// RunWithK is [RunWith] producing a ResultK.
func RunWithK[V, F any](block func(r *Raise[F]) ResultK[V, F]) ResultK[V, F] {
	v, f, raised := scope(block)
	if raised {
		return FailureK[V](f)
	}
	return v
}

// RunEither is [Run] producing Right on completion and Left on raise.
func RunEither[L, R any](block func(r *Raise[L]) R) Either[L, R] {
	return Run(block).Either()
}

// RunMaybe executes block and reports only its failure: a raise yields
// Some(failure), otherwise the block's own Maybe is returned
// (None meaning no failure).
func RunMaybe[F any](block func(r *Raise[F]) Maybe[F]) Maybe[F] {
	v, f, raised := scope(block)
	if raised {
		return Some(f)
	}
	return v
}

// RecoverScope runs block and maps a raised failure to a value with onFailure.
func RecoverScope[T, F any](block func(r *Raise[F]) T, onFailure func(F) T) T {
	v, f, raised := scope(block)
	if raised {
		return onFailure(f)
	}
	return v
}

// WithError runs block in a nested scope with failure type F and re-raises
// any failure in r after transforming it.
func WithError[T, F, G any](r *Raise[G], transform func(F) G, block func(inner *Raise[F]) T) T {
	v, f, raised := scope(block)
	if raised {
		r.Raise(transform(f))
	}
	return v
}
