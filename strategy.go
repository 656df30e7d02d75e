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

// VersionSelectionStrategy orders the candidate assignments the solver
// loop tries for an unassigned package, after the loop has already
// prepended Null. Implementations may consult
// SearchState for context (dependants, depth) but must not mutate it.
type VersionSelectionStrategy interface {
	// Prioritized returns the non-Null candidates for name, most
	// preferred first.
	Prioritized(s *SearchState, name string) ([]Assignment, error)
}

// DefaultStrategy tries versions newest-first, the plain backtracking
// strategy a resolver falls back to when no override strategy applies.
type DefaultStrategy struct{}

// Prioritized implements VersionSelectionStrategy.
func (DefaultStrategy) Prioritized(s *SearchState, name string) ([]Assignment, error) {
	versions, err := s.AvailableVersions(name)
	if err != nil {
		return nil, err
	}
	out := make([]Assignment, len(versions))
	for i, v := range versions {
		out[len(versions)-1-i] = NewAssignment(name, v)
	}
	return out, nil
}

// NearestWinsStrategy implements Maven-style nearest-dependant-wins
// selection: among the live dependants that require
// name, the one with the smallest AssignmentDepth picks the version, and
// that candidate is returned first and marked Forced — the solver loop
// commits a Forced assignment without probing for violations, mirroring
// Maven's override of otherwise-conflicting transitive constraints. The
// remaining candidates follow in DefaultStrategy order as a fallback, so
// a Forced pick that still gets backtracked away doesn't strand the
// search. Root requirements count too: the root assignment is a live
// dependant at depth 0. Falls back entirely to DefaultStrategy when name
// has no live dependant.
type NearestWinsStrategy struct {
	fallback DefaultStrategy
}

// Prioritized implements VersionSelectionStrategy.
func (n NearestWinsStrategy) Prioritized(s *SearchState, name string) ([]Assignment, error) {
	rest, err := n.fallback.Prioritized(s, name)
	if err != nil {
		return nil, err
	}

	dependants := s.Dependants(name)
	if len(dependants) == 0 {
		return rest, nil
	}

	nearest := dependants[0]
	nearestDepth := s.AssignmentDepth(nearest)
	for _, d := range dependants[1:] {
		if depth := s.AssignmentDepth(d); depth < nearestDepth {
			nearest, nearestDepth = d, depth
		}
	}

	req, ok := s.RequirementFor(nearest, name)
	if !ok {
		return rest, nil
	}

	var forced *Assignment
	for i, a := range rest {
		if req.Set.Contains(a.Version) {
			a.Forced = true
			forced = &rest[i]
			rest[i] = a
			break
		}
	}
	if forced == nil {
		return rest, nil
	}

	out := make([]Assignment, 0, len(rest))
	out = append(out, *forced)
	for _, a := range rest {
		if a.key() != forced.key() {
			out = append(out, a)
		}
	}
	return out, nil
}
