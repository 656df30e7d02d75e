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

import "fmt"

// Assignment commits a package to exactly one version, or to Null meaning
// "explicitly not chosen". At most one Assignment per package is live in a
// SearchState at any time.
type Assignment struct {
	Package string
	Version Version
	Null    bool

	// Forced marks an assignment produced by the nearest-wins strategy:
	// the solver loop commits it without probing clauses for violations,
	// and while it is live every positive term on its package evaluates
	// True (see Term.TruthValue), the way Maven's nearest-dependant-wins
	// selection overrides otherwise-conflicting constraints.
	Forced bool
}

// NewAssignment creates a real assignment of name to version.
func NewAssignment(name string, version Version) Assignment {
	return Assignment{Package: name, Version: version}
}

// NewNullAssignment creates the Null assignment for name: the package is
// explicitly excluded from the solution.
func NewNullAssignment(name string) Assignment {
	return Assignment{Package: name, Null: true}
}

// rootPackageName is the reserved name of the virtual RootAssignment.
const rootPackageName = "__root__"

// rootVersion is the fixed version the root assignment carries; its value
// is never observed by a Repository, since the root is never looked up via
// GetVersions/GetDependencies.
var rootVersion = MustParseVersion("0")

// NewRootAssignment returns the distinguished assignment that anchors a
// search. It is seeded before any user-visible step and is never
// backtracked.
func NewRootAssignment() Assignment {
	return Assignment{Package: rootPackageName, Version: rootVersion}
}

// IsRoot reports whether a matches the reserved root assignment's package.
func (a Assignment) IsRoot() bool {
	return a.Package == rootPackageName
}

// String renders the assignment for diagnostics.
func (a Assignment) String() string {
	if a.Null {
		return fmt.Sprintf("%s: (none)", a.Package)
	}
	return fmt.Sprintf("%s: %s", a.Package, a.Version)
}

// assignmentKey identifies an assignment by package name and the version's
// normalized hash, composed so a.key() == b.key() implies a and b describe the same
// package+version pairing without comparing Version ASTs directly.
type assignmentKey struct {
	name string
	null bool
	hash uint64
}

func (a Assignment) key() assignmentKey {
	if a.Null {
		return assignmentKey{name: a.Package, null: true}
	}
	return assignmentKey{name: a.Package, hash: a.Version.Hash()}
}
