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

// buildSolverError finds the clause that currently evaluates False, then
// walks the learned-Incompatibility tree
// via each clause's Sources back to the root-level Dependency clauses
// that produced it, reporting the focus package, the conflicting
// requirements named by the failing clause, and the chain of root
// requirements that transitively caused the conflict.
func buildSolverError(s *SearchState) *SolverError {
	idx := failingClauseIndex(s)
	if idx < 0 {
		return &SolverError{Kind: NoAllowedVersions}
	}

	c := s.ClauseAt(idx)
	pkg := c.FocusPackage
	if pkg == "" && len(c.Terms) > 0 {
		pkg = c.Terms[0].Requirement.Name
	}

	return &SolverError{
		Kind:                    NoAllowedVersions,
		Package:                 pkg,
		ConflictingRequirements: conflictingRequirements(c),
		RootChain:               rootChain(s, idx, make(map[int]bool)),
	}
}

// failingClauseIndex returns the index of the first clause that
// evaluates False against the search's live assignments, or -1.
func failingClauseIndex(s *SearchState) int {
	assignments := s.Assignments()
	for i := 0; i < len(s.Clauses()); i++ {
		if s.ClauseAt(i).TruthValue(assignments) == False {
			return i
		}
	}
	return -1
}

// conflictingRequirements extracts the requirement named by every term
// of c, in term order.
func conflictingRequirements(c Clause) []Requirement {
	reqs := make([]Requirement, 0, len(c.Terms))
	for _, t := range c.Terms {
		reqs = append(reqs, t.Requirement)
	}
	return reqs
}

// rootChain walks backward through Sources from the clause at idx,
// collecting the Requirement of every root-level Dependency clause
// (Dependant.IsRoot()) it transitively descends from. visited guards
// against revisiting the same clause index through multiple paths.
func rootChain(s *SearchState, idx int, visited map[int]bool) []Requirement {
	if visited[idx] {
		return nil
	}
	visited[idx] = true

	c := s.ClauseAt(idx)
	switch c.Kind {
	case ClauseDependency:
		if c.Dependant.IsRoot() {
			return []Requirement{c.Requirement}
		}
		return nil
	case ClauseIncompatibility:
		seen := make(map[string]bool)
		var out []Requirement
		for _, src := range c.Sources {
			for _, r := range rootChain(s, src, visited) {
				k := r.Name + "\x00" + r.String()
				if !seen[k] {
					seen[k] = true
					out = append(out, r)
				}
			}
		}
		return out
	default:
		return nil
	}
}
