// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// Resource safety under raise.

// Bracket acquires a resource, passes it to use and always releases it,
// whether use returns, raises in r, or panics. A failure raised while
// acquiring skips both use and release.
func Bracket[R, A, F any](
	r *Raise[F],
	acquire func(r *Raise[F]) R,
	release func(R),
	use func(r *Raise[F], resource R) A,
) A {
	resource := acquire(r)
	defer release(resource)
	return use(r, resource)
}

// OnRaise runs cleanup only if body raises through the capability it
// receives, then re-raises the same failure in r. Other panics skip cleanup.
func OnRaise[T, F any](r *Raise[F], body func(r *Raise[F]) T, cleanup func(F)) T {
	v, f, raised := scope(body)
	if raised {
		cleanup(f)
		r.Raise(f)
	}
	return v
}
