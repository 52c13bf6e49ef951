// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nel

import "code.hybscloud.com/outcome"

// TraverseAccumulate applies fn to every element of xs, unlike
// outcome.Traverse which stops at the first failure. If any call fails, the
// result is a Failure holding every failure in input order.
func TraverseAccumulate[A, B, F any](xs []A, fn func(A) outcome.Result[B, F]) outcome.Result[[]B, NonEmptyList[F]] {
	values := make([]B, 0, len(xs))
	var failures []F
	for _, x := range xs {
		r := fn(x)
		if f, failed := r.GetFailure(); failed {
			failures = append(failures, f)
			continue
		}
		v, _ := r.Get()
		values = append(values, v)
	}
	if len(failures) > 0 {
		return outcome.Failure[[]B](fromNonEmpty(failures))
	}
	return outcome.Success[NonEmptyList[F]](values)
}

// SequenceAccumulate collects every failure of rs.
func SequenceAccumulate[T, F any](rs []outcome.Result[T, F]) outcome.Result[[]T, NonEmptyList[F]] {
	return TraverseAccumulate(rs, func(r outcome.Result[T, F]) outcome.Result[T, F] { return r })
}

// RaiseAll runs every block in its own scope and raises the collected
// failures in r if any block raised. The values of all blocks are returned
// in order otherwise.
func RaiseAll[T, F any](r *outcome.Raise[NonEmptyList[F]], blocks ...func(*outcome.Raise[F]) T) []T {
	res := TraverseAccumulate(blocks, func(block func(*outcome.Raise[F]) T) outcome.Result[T, F] {
		return outcome.Run(block)
	})
	return res.Bind(r)
}
