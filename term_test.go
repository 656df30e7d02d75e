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

func TestTermTruthValueUnknownWhenUnassigned(t *testing.T) {
	term := NewTerm(NewRequirement("foo", Any()))
	require.Equal(t, Unknown, term.TruthValue(nil))
}

func TestTermTruthValueNullAssignment(t *testing.T) {
	null := NewNullAssignment("foo")
	positive := NewTerm(NewRequirement("foo", Any()))
	negative := NewNegativeTerm(NewRequirement("foo", Any()))
	require.Equal(t, False, positive.TruthValue([]Assignment{null}))
	require.Equal(t, True, negative.TruthValue([]Assignment{null}))
}

func TestTermTruthValuePolarity(t *testing.T) {
	a := NewAssignment("foo", MustParseVersion("1.0"))
	inSet := NewTerm(NewRequirement("foo", Eq(MustParseVersion("1.0"))))
	outOfSet := NewTerm(NewRequirement("foo", Eq(MustParseVersion("2.0"))))
	require.Equal(t, True, inSet.TruthValue([]Assignment{a}))
	require.Equal(t, False, outOfSet.TruthValue([]Assignment{a}))
	require.Equal(t, False, inSet.Negate().TruthValue([]Assignment{a}))
	require.Equal(t, True, outOfSet.Negate().TruthValue([]Assignment{a}))
}

func TestFindAssignmentPrefersMostRecent(t *testing.T) {
	old := NewAssignment("foo", MustParseVersion("1.0"))
	newer := NewAssignment("foo", MustParseVersion("2.0"))
	got, ok := findAssignment([]Assignment{old, newer}, "foo")
	require.True(t, ok)
	require.True(t, got.Version.Equal(newer.Version))
}
