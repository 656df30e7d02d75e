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

import "unique"

// Name represents a package name using value interning for memory efficiency.
// Multiple instances of the same package name share the same underlying memory.
//
// Name uses Go's unique.Handle for efficient string interning, enabling:
//   - Fast equality comparisons (pointer comparison instead of string comparison)
//   - Reduced memory usage when the same package names appear frequently
//   - Safe concurrent access (interning is thread-safe)
//
// RootName is the reserved name of the virtual root assignment (§3 of the
// design doc): it anchors the search and is never backtracked.
type Name = unique.Handle[string]

// rootNameValue is the package name of the distinguished RootAssignment,
// returned interned by RootName.
var rootNameValue = "__root__"

// MakeName creates an interned Name from a string.
// Equal strings will return the same Name value, enabling fast comparisons.
//
// Example:
//
//	pkg1 := MakeName("lodash")
//	pkg2 := MakeName("lodash")
//	// pkg1 == pkg2 (fast pointer comparison)
func MakeName(s string) Name {
	return unique.Make(s)
}

// EmptyName returns an empty name (interned empty string).
// Useful for creating placeholder names.
func EmptyName() Name {
	return unique.Make("")
}

// RootName returns the interned name of the reserved root package.
func RootName() Name {
	return unique.Make(rootNameValue)
}

// CanonicalPackageName interns s and returns its canonical string value.
// Requirement/Assignment/Clause key package identity by plain string, but a
// single resolve can parse the same package name out of dozens of
// requirement strings; routing every parsed name through the interning
// table here means those strings share one backing allocation instead of
// one per occurrence.
func CanonicalPackageName(s string) string {
	return MakeName(s).Value()
}
