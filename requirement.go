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

// Requirement pairs a package name with the set of versions that satisfy
// it, plus any opaque extras an adapter attached. The core neither
// interprets Flags nor uses them in clause logic; an adapter that models
// extras (e.g. pip-style "pkg[extra]") may fold them into Name itself as a
// synthetic package name.
type Requirement struct {
	Name    string
	Set     VersionSet
	Flags   []string
}

// NewRequirement builds a Requirement from a name and version set.
func NewRequirement(name string, set VersionSet) Requirement {
	return Requirement{Name: name, Set: set}
}

// WithFlags returns a copy of r carrying the given extras.
func (r Requirement) WithFlags(flags ...string) Requirement {
	r.Flags = append([]string(nil), flags...)
	return r
}

// String renders the requirement using the native grammar.
func (r Requirement) String() string {
	if len(r.Flags) == 0 {
		return fmt.Sprintf("%s %s", r.Name, r.Set.String())
	}
	return fmt.Sprintf("%s%v %s", r.Name, r.Flags, r.Set.String())
}
