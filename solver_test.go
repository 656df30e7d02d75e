// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verpy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kythera-dev/verpy"
	"github.com/kythera-dev/verpy/repository/memory"
)

func mustReq(t *testing.T, s string) verpy.Requirement {
	t.Helper()
	req, err := verpy.ParseRequirement(s)
	require.NoError(t, err)
	return req
}

func addPkg(t *testing.T, repo *memory.Repository, name, version string, reqs ...string) {
	t.Helper()
	v, err := verpy.ParseVersion(version)
	require.NoError(t, err)
	parsed := make([]verpy.Requirement, 0, len(reqs))
	for _, r := range reqs {
		parsed = append(parsed, mustReq(t, r))
	}
	repo.AddPackage(name, v, parsed)
}

func solutionMap(t *testing.T, solved interface {
	Keys() []string
	Get(string) (interface{}, bool)
}) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, k := range solved.Keys() {
		v, ok := solved.Get(k)
		require.True(t, ok)
		out[k] = v.(string)
	}
	return out
}

func TestSolveSimpleResolution(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0", "bar >=1.0 & <2.0")
	addPkg(t, repo, "bar", "1.0", "baz 1.0")
	addPkg(t, repo, "bar", "2.0", "taz 2.0")
	addPkg(t, repo, "baz", "1.0")
	addPkg(t, repo, "taz", "2.0")

	roots := []verpy.Requirement{mustReq(t, "bar>=1.0"), mustReq(t, "foo>=1.0 & <2.0")}
	solved, err := verpy.Solve(roots, repo)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"foo": "1.0", "bar": "1.0", "baz": "1.0"}, solutionMap(t, solved))
}

func TestSolveDowngradeOnConflict(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0", "bar 1.0")
	addPkg(t, repo, "bar", "1.0", "baz 1.0")
	addPkg(t, repo, "bar", "2.0", "foo 1.0")
	addPkg(t, repo, "baz", "1.0")

	roots := []verpy.Requirement{mustReq(t, "bar>=1.0")}
	solved, err := verpy.Solve(roots, repo)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"bar": "1.0", "baz": "1.0"}, solutionMap(t, solved))
}

func TestSolveTransitiveBacktrack(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0", "taz>=1.0")
	addPkg(t, repo, "bar", "1.0", "baz 1.0")
	addPkg(t, repo, "bar", "2.0", "foo 1.0")
	addPkg(t, repo, "taz", "1.0", "bar 2.0")
	addPkg(t, repo, "taz", "2.0", "bar 1.0")
	addPkg(t, repo, "baz", "1.0")

	roots := []verpy.Requirement{mustReq(t, "bar>=1.0")}
	solved, err := verpy.Solve(roots, repo)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"bar": "2.0", "foo": "1.0", "taz": "1.0"}, solutionMap(t, solved))
}

func TestSolveUnresolvable(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0", "bar 1.0")
	addPkg(t, repo, "bar", "2.0", "foo 1.0")

	roots := []verpy.Requirement{mustReq(t, "bar>=1.0")}
	_, err := verpy.Solve(roots, repo)
	require.Error(t, err)

	var solverErr *verpy.SolverError
	require.True(t, errors.As(err, &solverErr))
	require.Equal(t, verpy.NoAllowedVersions, solverErr.Kind)
}

func TestSolveOptionalPackageElided(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "a", "1.0", "x>=1.0")
	addPkg(t, repo, "b", "1.0", "x<2.0")
	addPkg(t, repo, "c", "1.0")
	addPkg(t, repo, "c", "2.0", "a>=1", "b>=1")
	addPkg(t, repo, "x", "0.0")
	addPkg(t, repo, "x", "1.0", "y 1.0")
	addPkg(t, repo, "x", "2.0")
	addPkg(t, repo, "y", "1.0")
	addPkg(t, repo, "y", "2.0")

	roots := []verpy.Requirement{mustReq(t, "c>=1.0"), mustReq(t, "y>=2.0")}
	solved, err := verpy.Solve(roots, repo)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"c": "1.0", "y": "2.0"}, solutionMap(t, solved))
}

func TestSolveHighestAllowedSelectionWithCrossConstraints(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0", "taz 1.0")
	addPkg(t, repo, "bar", "1.0", "taz>=1.0")
	addPkg(t, repo, "bar", "2.0", "taz 3.0")
	addPkg(t, repo, "baz", "1.0", "taz>=1.0")
	addPkg(t, repo, "baz", "2.0", "taz<3.0")
	addPkg(t, repo, "taz", "1.0")
	addPkg(t, repo, "taz", "2.0")
	addPkg(t, repo, "taz", "3.0")

	roots := []verpy.Requirement{mustReq(t, "bar>=1.0"), mustReq(t, "foo>=1.0"), mustReq(t, "baz>=1.0")}
	solved, err := verpy.Solve(roots, repo)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"bar": "1.0", "foo": "1.0", "baz": "2.0", "taz": "1.0"}, solutionMap(t, solved))
}

func TestSolveNearestWinsStrategyForcesNearerVersion(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "app", "1.0", "lib 1.0", "mid 1.0")
	addPkg(t, repo, "mid", "1.0", "lib 2.0")
	addPkg(t, repo, "lib", "1.0")
	addPkg(t, repo, "lib", "2.0")

	roots := []verpy.Requirement{mustReq(t, "app>=1.0"), mustReq(t, "mid>=1.0")}
	solved, err := verpy.Solve(roots, repo, verpy.WithStrategy(verpy.NearestWinsStrategy{}))
	require.NoError(t, err)
	got := solutionMap(t, solved)
	require.Equal(t, "1.0", got["lib"])
}

func TestSolveRespectsMaxSteps(t *testing.T) {
	repo := memory.New()
	addPkg(t, repo, "foo", "1.0")
	roots := []verpy.Requirement{mustReq(t, "foo>=1.0")}
	_, err := verpy.Solve(roots, repo, verpy.WithMaxSteps(1))
	require.NoError(t, err)
}
