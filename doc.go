// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package outcome provides two-variant result types and a short-circuit
// "raise" DSL in Go.
//
// Every container is an immutable value with exactly two variants. Go methods
// cannot introduce type parameters, so type-preserving operations are methods
// and type-changing ones are package functions suffixed by container name
// ([MapEither], [FoldMaybe], ...). [Result] functions carry no suffix.
//
// # Containers
//
//   - [Result]: [Success] | [Failure]
//   - [ResultK]: [SuccessK] | [FailureK], convertible to and from Result
//   - [Either]: [Left] | [Right], right-biased
//   - [Maybe]: [Some] | [None]
//   - [Fail]: [Error] (domain) | [Exception] (technical), a failure payload
//   - [BiFailureResultK]: ResultK[V, Fail[E, X]]
//
// Constructors take the type parameter that cannot be inferred first:
//
//	outcome.Success[string](1)      // Result[int, string]
//	outcome.Failure[int]("boom")    // Result[int, string]
//	outcome.Right[error]("ok")      // Either[error, string]
//
// # Algebra
//
// Callbacks run at most once and never on the non-matching variant.
// Operations that keep the container type return the receiver itself when
// they do not apply (e.g. [Result.Recover] on a Success).
//
//   - Tests: IsSuccess, IsSuccessAnd(pred), IsFailure, IsFailureAnd(pred)
//   - Elimination: [Fold], [FoldK], [FoldEither], [FoldMaybe], [FoldFail]
//   - Transformation: [Map], [FlatMap], [MapFailure], [Flatten]
//   - Recovery: Recover, RecoverWith, GetOrElse, GetOrElseFunc
//   - Taps: OnSuccess, OnFailure, OnLeft, OnRight, OnSome, OnNone
//   - Merging: [Merge], [MergeK], [MergeEither], [MergeFail]
//   - Collections: [Traverse], [Sequence] and variants. Fail-fast: the first
//     failure is returned and later elements are not visited.
//
// # Raise
//
// A scope builder runs a block with a [Raise] capability. [Raise.Raise]
// aborts the scope, which then produces its failure variant.
//
//   - [Run]: block returns T, scope returns Result[T, F]
//   - [RunWith]: block returns Result[T, F]
//   - [RunMaybe]: block returns Maybe[F]; a raise becomes Some(failure)
//   - [RunK], [RunWithK], [RunEither]: same for other containers
//   - [Result.Bind], [ResultK.Bind], [Either.Bind], [BindMaybe]: unwrap or raise
//   - [Raise.Ensure], [EnsureNotNil]: raise on a failed condition
//   - [WithError], [RecoverScope]: translate or handle a nested scope's failure
//   - [Bracket], [OnRaise]: resource safety
//
// Raising panics with a private signal that remembers the raising capability.
// Only the scope that created that capability converts it; nested scopes and
// [Catch] re-panic signals they do not own. A capability used after its
// scope returned panics with "outcome: raise used outside its scope".
//
// # Catch
//
// [Catch] turns non-fatal panics into values. [IsFatal] values are always
// re-panicked: [ErrStackOverflow], [ErrOutOfMemory], context.Canceled and any
// [Fataler] reporting true. runtime.Goexit is never intercepted.
//
// # Example
//
//	res := outcome.Run(func(r *outcome.Raise[string]) int {
//		a := outcome.Success[string](1).Bind(r)
//		b := outcome.Success[string](2).Bind(r)
//		if b == 2 {
//			r.Raise("stop")
//		}
//		return a + b
//	})
//	// res == Failure("stop")
package outcome
