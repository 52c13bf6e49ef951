// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nel_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/nel"
)

func parse(s string) outcome.Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return outcome.Failure[int]("bad " + s)
	}
	return outcome.Success[string](n)
}

func TestTraverseAccumulate(t *testing.T) {
	require := require.New(t)

	ok := nel.TraverseAccumulate([]string{"1", "2"}, parse)
	got, isSuccess := ok.Get()
	require.True(isSuccess)
	require.Equal([]int{1, 2}, got)

	calls := 0
	failed := nel.TraverseAccumulate([]string{"x", "1", "y"}, func(s string) outcome.Result[int, string] {
		calls++
		return parse(s)
	})
	require.Equal(3, calls)
	failures, isFailure := failed.GetFailure()
	require.True(isFailure)
	require.Equal([]string{"bad x", "bad y"}, failures.Slice())
}

func TestTraverseAccumulateEmpty(t *testing.T) {
	got, ok := nel.TraverseAccumulate([]string(nil), parse).Get()
	require.True(t, ok)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSequenceAccumulate(t *testing.T) {
	rs := []outcome.Result[int, string]{
		outcome.Failure[int]("first"),
		outcome.Success[string](2),
		outcome.Failure[int]("second"),
	}
	failures, ok := nel.SequenceAccumulate(rs).GetFailure()
	require.True(t, ok)
	require.Equal(t, []string{"first", "second"}, failures.Slice())
}

func TestRaiseAll(t *testing.T) {
	require := require.New(t)

	validate := func(name string, ok bool) func(*outcome.Raise[string]) string {
		return func(r *outcome.Raise[string]) string {
			r.Ensure(ok, func() string { return name + " invalid" })
			return name
		}
	}

	good := outcome.Run(func(r *outcome.Raise[nel.NonEmptyList[string]]) []string {
		return nel.RaiseAll(r, validate("name", true), validate("email", true))
	})
	names, ok := good.Get()
	require.True(ok)
	require.Equal([]string{"name", "email"}, names)

	bad := outcome.Run(func(r *outcome.Raise[nel.NonEmptyList[string]]) []string {
		return nel.RaiseAll(r, validate("name", false), validate("email", true), validate("age", false))
	})
	failures, isFailure := bad.GetFailure()
	require.True(isFailure)
	require.Equal([]string{"name invalid", "age invalid"}, failures.Slice())
}
