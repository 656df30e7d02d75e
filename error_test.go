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

package verpy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorMessageIncludesOffenseWhenPresent(t *testing.T) {
	err := &ParseError{Input: "foo >=bad", Offense: "bad", Reason: "not a version"}
	require.Contains(t, err.Error(), "bad")
	require.Contains(t, err.Error(), "not a version")

	bare := &ParseError{Input: "", Reason: "empty requirement"}
	require.Contains(t, bare.Error(), "empty requirement")
}

func TestSolverErrorMessageIncludesConflictsAndRootChain(t *testing.T) {
	err := &SolverError{
		Kind:                    NoAllowedVersions,
		Package:                 "foo",
		ConflictingRequirements: []Requirement{NewRequirement("foo", Eq(MustParseVersion("1.0"))), NewRequirement("foo", Eq(MustParseVersion("2.0")))},
		RootChain:               []Requirement{NewRequirement("bar", Gteq(MustParseVersion("1.0")))},
	}
	msg := err.Error()
	require.Contains(t, msg, "foo")
	require.Contains(t, msg, "via root requirements")
	require.Contains(t, msg, "bar")
}

func TestSolverErrorEmptyCandidateSetMessage(t *testing.T) {
	err := &SolverError{Kind: EmptyCandidateSet, Package: "foo"}
	require.Contains(t, err.Error(), "no candidate versions")
}
