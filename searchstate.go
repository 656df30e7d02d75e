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
	"sort"

	"github.com/kythera-dev/verpy/internal/trace"
)

// SearchState owns one solver invocation's exclusive state: the current
// assignments, the monotonically growing clause set, and the memoization
// needed to keep the clause set monotone across backtracks.
type SearchState struct {
	repo   Repository
	tracer trace.Trace
	root   Assignment

	assignments []Assignment
	clauses     []Clause

	// loadedDependencies suppresses re-adding Dependency clauses for a
	// (package, version) pair that is reassigned after a backtrack —
	// required for correctness, not just performance.
	loadedDependencies map[assignmentKey]bool

	// availableVersions memoizes Repository.GetVersions per package.
	availableVersions map[string][]Version

	// flags accumulates the extras seen across every requirement named
	// for a package, so a later GetDependencies call can pass them on.
	flags map[string][]string
}

// NewSearchState creates a SearchState over repo. The root assignment is
// seeded immediately, before any other operation.
func NewSearchState(repo Repository, tracer trace.Trace) *SearchState {
	root := NewRootAssignment()
	return &SearchState{
		repo:               repo,
		tracer:             tracer,
		root:               root,
		assignments:        []Assignment{root},
		clauses:            nil,
		loadedDependencies: make(map[assignmentKey]bool),
		availableVersions:  make(map[string][]Version),
		flags:              make(map[string][]string),
	}
}

// Assignments returns the live assignments in discovery order, root first.
func (s *SearchState) Assignments() []Assignment {
	return s.assignments
}

// Clauses returns every clause added so far, including learned
// incompatibilities. No clause is ever removed.
func (s *SearchState) Clauses() []Clause {
	return s.clauses
}

// AddRootDependencies seeds the search with the caller's root
// requirements, each becoming a Dependency clause "¬root ∨ req".
func (s *SearchState) AddRootDependencies(reqs []Requirement) {
	for _, r := range reqs {
		s.recordFlags(r)
		s.clauses = append(s.clauses, NewDependency(s.root, r))
	}
}

func (s *SearchState) recordFlags(r Requirement) {
	if len(r.Flags) == 0 {
		return
	}
	existing := s.flags[r.Name]
	seen := make(map[string]bool, len(existing))
	for _, f := range existing {
		seen[f] = true
	}
	for _, f := range r.Flags {
		if !seen[f] {
			existing = append(existing, f)
			seen[f] = true
		}
	}
	s.flags[r.Name] = existing
}

// liveAssignment returns the currently live assignment for name, if any.
func (s *SearchState) liveAssignment(name string) (Assignment, bool) {
	return findAssignment(s.assignments, name)
}

// AddAssignment appends a to the assignment list and, if a is a new
// non-null assignment, loads its requirements as Dependency clauses.
// Precondition: name has no live assignment (the caller — the solver
// loop — is responsible for having checked or backtracked first).
func (s *SearchState) AddAssignment(a Assignment) error {
	s.assignments = append(s.assignments, a)
	s.tracer.Assigned(a.Package, a.Version.String(), a.Forced)

	if a.Null {
		return nil
	}
	return s.ensureDependenciesLoaded(a)
}

// ensureDependenciesLoaded queries the Repository for a's requirements and
// appends one Dependency clause per requirement, unless this exact
// (package, version) pair was already loaded earlier in the search.
func (s *SearchState) ensureDependenciesLoaded(a Assignment) error {
	key := a.key()
	if s.loadedDependencies[key] {
		return nil
	}
	s.loadedDependencies[key] = true

	reqs, err := s.repo.GetDependencies(a.Package, a.Version, s.flags[a.Package])
	if err != nil {
		return &RepositoryError{Package: a.Package, Err: err}
	}
	for _, r := range reqs {
		s.recordFlags(r)
		s.clauses = append(s.clauses, NewDependency(a, r))
	}
	return nil
}

// LoadDependencies ensures a's requirements are present as Dependency
// clauses, without appending a to the assignment list. Used by the
// solver loop to probe a candidate before committing to it. A no-op for
// Null assignments.
func (s *SearchState) LoadDependencies(a Assignment) error {
	if a.Null {
		return nil
	}
	return s.ensureDependenciesLoaded(a)
}

// Trial returns a copy of the live assignments with any existing
// assignment for a.Package replaced by a. The live state is left
// untouched.
func (s *SearchState) Trial(a Assignment) []Assignment {
	out := make([]Assignment, 0, len(s.assignments)+1)
	for _, existing := range s.assignments {
		if existing.Package != a.Package {
			out = append(out, existing)
		}
	}
	return append(out, a)
}

// ViolatedClauseIndices returns the indices into Clauses() of every
// clause that mentions pkg and evaluates False under trial.
func (s *SearchState) ViolatedClauseIndices(pkg string, trial []Assignment) []int {
	var out []int
	for i, c := range s.clauses {
		if c.Mentions(pkg) && c.TruthValue(trial) == False {
			out = append(out, i)
		}
	}
	return out
}

// ClauseAt returns the clause at index i within Clauses().
func (s *SearchState) ClauseAt(i int) Clause {
	return s.clauses[i]
}

// AppendClause appends a learned clause and returns its index.
func (s *SearchState) AppendClause(c Clause) int {
	s.clauses = append(s.clauses, c)
	return len(s.clauses) - 1
}

// AvailableVersions returns the repository's versions for name, sorted
// ascending by Version.Compare and memoized per package.
func (s *SearchState) AvailableVersions(name string) ([]Version, error) {
	if cached, ok := s.availableVersions[name]; ok {
		return cached, nil
	}
	versions, err := s.repo.GetVersions(name)
	if err != nil {
		return nil, &RepositoryError{Package: name, Err: err}
	}
	sorted := append([]Version(nil), versions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	s.availableVersions[name] = sorted
	return sorted, nil
}

// Backtrack removes a and, recursively, every assignment that a's
// dependencies currently satisfy — implemented iteratively with an
// explicit worklist rather than recursion. The root assignment is never
// backtracked.
func (s *SearchState) Backtrack(a Assignment) {
	worklist := []Assignment{a}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if cur.IsRoot() {
			continue
		}
		if _, ok := s.liveAssignment(cur.Package); !ok {
			continue // already removed by an earlier pop
		}

		for _, c := range s.clauses {
			if c.Kind != ClauseDependency || c.Dependant.key() != cur.key() {
				continue
			}
			if dep, ok := s.liveAssignment(c.Requirement.Name); ok {
				worklist = append(worklist, dep)
			}
		}

		s.tracer.Backtrack(cur.Package)
		s.removeAssignment(cur)
	}
}

func (s *SearchState) removeAssignment(a Assignment) {
	out := s.assignments[:0]
	for _, existing := range s.assignments {
		if existing.Package == a.Package && existing.key() == a.key() {
			continue
		}
		out = append(out, existing)
	}
	s.assignments = out
}

// AssignmentDepth returns the minimum, over every live Dependency clause
// whose requirement names a's package and whose dependant is still live,
// of depth(dependant)+1. Root has depth 0. Cyclic dependency graphs are
// guarded against with a visited set.
func (s *SearchState) AssignmentDepth(a Assignment) int {
	return s.assignmentDepth(a, make(map[string]bool))
}

func (s *SearchState) assignmentDepth(a Assignment, visiting map[string]bool) int {
	if a.IsRoot() {
		return 0
	}
	if visiting[a.Package] {
		return 0
	}
	visiting[a.Package] = true
	defer delete(visiting, a.Package)

	best := -1
	for _, c := range s.clauses {
		if c.Kind != ClauseDependency || c.Requirement.Name != a.Package {
			continue
		}
		live, ok := s.liveAssignment(c.Dependant.Package)
		if !ok || live.key() != c.Dependant.key() {
			continue
		}
		d := s.assignmentDepth(live, visiting) + 1
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// Dependants returns the live assignments that have a Dependency clause
// requiring name, used by the nearest-wins strategy.
func (s *SearchState) Dependants(name string) []Assignment {
	var out []Assignment
	seen := make(map[assignmentKey]bool)
	for _, c := range s.clauses {
		if c.Kind != ClauseDependency || c.Requirement.Name != name {
			continue
		}
		live, ok := s.liveAssignment(c.Dependant.Package)
		if !ok || live.key() != c.Dependant.key() {
			continue
		}
		k := live.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, live)
	}
	return out
}

// RequirementFor returns the requirement a live dependant places on name,
// used by the nearest-wins strategy to pick a version within that bound.
func (s *SearchState) RequirementFor(dependant Assignment, name string) (Requirement, bool) {
	for _, c := range s.clauses {
		if c.Kind != ClauseDependency || c.Requirement.Name != name {
			continue
		}
		if c.Dependant.key() == dependant.key() {
			return c.Requirement, true
		}
	}
	return Requirement{}, false
}

// ClausesMentioning returns every clause whose terms include name.
func (s *SearchState) ClausesMentioning(name string) []Clause {
	var out []Clause
	for _, c := range s.clauses {
		if c.Mentions(name) {
			out = append(out, c)
		}
	}
	return out
}

// HasFailed reports whether some clause evaluates False against the
// current live assignments — meaning no further assignment can satisfy
// it, since a clause with no Unknown term and no True term is
// unconditionally violated. A freshly learned
// Incompatibility with every term already excluded is the usual trigger:
// it evaluates False the moment it is appended, with nothing left to
// assign that could change that.
func (s *SearchState) HasFailed() bool {
	for _, c := range s.clauses {
		if c.TruthValue(s.assignments) == False {
			return true
		}
	}
	return false
}

// FirstUnassignedPackage returns the first package referenced by any
// clause that has no live assignment yet, in clause-discovery order.
func (s *SearchState) FirstUnassignedPackage() (string, bool) {
	seen := make(map[string]bool)
	for _, c := range s.clauses {
		for _, t := range c.Terms {
			name := t.Requirement.Name
			if seen[name] || name == rootPackageName {
				continue
			}
			seen[name] = true
			if _, ok := s.liveAssignment(name); !ok {
				return name, true
			}
		}
	}
	return "", false
}

// IsSolutionComplete reports whether every clause currently evaluates
// True, i.e. there is nothing left for the solver loop to decide.
func (s *SearchState) IsSolutionComplete() bool {
	for _, c := range s.clauses {
		if c.TruthValue(s.assignments) != True {
			return false
		}
	}
	return true
}

// Solution builds the final package -> version mapping, excluding the
// root and excluding packages assigned Null.
func (s *SearchState) Solution() []Assignment {
	out := make([]Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if a.IsRoot() || a.Null {
			continue
		}
		out = append(out, a)
	}
	return out
}
