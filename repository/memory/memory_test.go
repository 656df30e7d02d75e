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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kythera-dev/verpy"
	"github.com/kythera-dev/verpy/repository/memory"
)

func TestRepositoryGetVersionsSortedAscending(t *testing.T) {
	repo := memory.New()
	repo.AddPackage("foo", verpy.MustParseVersion("2.0"), nil)
	repo.AddPackage("foo", verpy.MustParseVersion("1.0"), nil)

	versions, err := repo.GetVersions("foo")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	require.True(t, versions[0].Equal(verpy.MustParseVersion("1.0")))
	require.True(t, versions[1].Equal(verpy.MustParseVersion("2.0")))
}

func TestRepositoryGetVersionsUnknownPackage(t *testing.T) {
	repo := memory.New()
	_, err := repo.GetVersions("missing")
	require.Error(t, err)
	var notFound *memory.PackageNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRepositoryGetDependencies(t *testing.T) {
	repo := memory.New()
	req, err := verpy.ParseRequirement("bar>=1.0")
	require.NoError(t, err)
	repo.AddPackage("foo", verpy.MustParseVersion("1.0"), []verpy.Requirement{req})

	deps, err := repo.GetDependencies("foo", verpy.MustParseVersion("1.0"), nil)
	require.NoError(t, err)
	require.Equal(t, []verpy.Requirement{req}, deps)
}

func TestRepositoryGetDependenciesUnknownVersion(t *testing.T) {
	repo := memory.New()
	repo.AddPackage("foo", verpy.MustParseVersion("1.0"), nil)

	_, err := repo.GetDependencies("foo", verpy.MustParseVersion("2.0"), nil)
	require.Error(t, err)
	var notFound *memory.PackageVersionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRepositoryAddPackageReplacesRequirements(t *testing.T) {
	repo := memory.New()
	oldReq, err := verpy.ParseRequirement("bar>=1.0")
	require.NoError(t, err)
	newReq, err := verpy.ParseRequirement("bar>=2.0")
	require.NoError(t, err)

	repo.AddPackage("foo", verpy.MustParseVersion("1.0"), []verpy.Requirement{oldReq})
	repo.AddPackage("foo", verpy.MustParseVersion("1.0"), []verpy.Requirement{newReq})

	versions, err := repo.GetVersions("foo")
	require.NoError(t, err)
	require.Len(t, versions, 1, "re-adding the same version must not duplicate it")

	deps, err := repo.GetDependencies("foo", verpy.MustParseVersion("1.0"), nil)
	require.NoError(t, err)
	require.Equal(t, []verpy.Requirement{newReq}, deps)
}
