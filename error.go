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
	"fmt"
	"strings"
)

// ParseError reports a malformed version, version set, or requirement
// string. The parser is total and restartable per call: a ParseError never
// leaves package-level state behind.
type ParseError struct {
	Input   string
	Offense string
	Reason  string
}

func (e *ParseError) Error() string {
	if e.Offense != "" {
		return fmt.Sprintf("parse error in %q near %q: %s", e.Input, e.Offense, e.Reason)
	}
	return fmt.Sprintf("parse error in %q: %s", e.Input, e.Reason)
}

// SolverErrorKind distinguishes the two ways Solve can prove a root
// requirement set unsatisfiable or under-specified.
type SolverErrorKind int

const (
	// NoAllowedVersions means a learned clause at root proves
	// unsatisfiability for Package.
	NoAllowedVersions SolverErrorKind = iota
	// EmptyCandidateSet means the strategy returned no candidates for
	// Package and Null was disallowed for it.
	EmptyCandidateSet
)

// SolverError is raised only at the top of Solve; internal Unknown truth
// values are never errors, and backtracking is explicit state mutation,
// never exception-based control flow.
type SolverError struct {
	Kind                    SolverErrorKind
	Package                 string
	ConflictingRequirements []Requirement
	RootChain               []Requirement
}

func (e *SolverError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case EmptyCandidateSet:
		fmt.Fprintf(&b, "no candidate versions available for %q", e.Package)
	default:
		fmt.Fprintf(&b, "no version of %q satisfies all requirements", e.Package)
	}
	if len(e.ConflictingRequirements) > 0 {
		parts := make([]string, len(e.ConflictingRequirements))
		for i, r := range e.ConflictingRequirements {
			parts[i] = r.String()
		}
		fmt.Fprintf(&b, ": %s", strings.Join(parts, "; "))
	}
	if len(e.RootChain) > 0 {
		parts := make([]string, len(e.RootChain))
		for i, r := range e.RootChain {
			parts[i] = r.String()
		}
		fmt.Fprintf(&b, " (via root requirements: %s)", strings.Join(parts, ", "))
	}
	return b.String()
}
