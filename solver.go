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

	"github.com/iancoleman/orderedmap"

	"github.com/kythera-dev/verpy/internal/trace"
)

// Solve resolves rootReqs against repo and returns the chosen version per
// package as an insertion-ordered map (package name -> canonical version
// string), excluding the root and any package the search settled on Null
// for. The solver loop repeatedly picks the first unassigned
// package visible in the clause set, probes Strategy-prioritized
// candidates (Null always tried first) against the clauses that mention
// it, and either commits the first candidate that survives or learns an
// Incompatibility and backtracks to the deepest assignment the learned
// clause still mentions.
func Solve(rootReqs []Requirement, repo Repository, opts ...SolveOption) (*orderedmap.OrderedMap, error) {
	options := defaultSolverOptions()
	for _, opt := range opts {
		opt(&options)
	}
	tracer := trace.New(options.logger)

	state := NewSearchState(repo, tracer)
	state.AddRootDependencies(rootReqs)

	steps := 0
	for !state.IsSolutionComplete() {
		if options.maxSteps > 0 && steps >= options.maxSteps {
			return nil, fmt.Errorf("verpy: exceeded %d solver steps without converging", options.maxSteps)
		}
		steps++

		if state.HasFailed() {
			return nil, buildSolverError(state)
		}

		pkg, ok := state.FirstUnassignedPackage()
		if !ok {
			// Every referenced package is assigned yet some clause is
			// still not True; HasFailed will catch it on the next pass.
			continue
		}
		tracer.Step(steps, pkg)

		prioritized, err := options.strategy.Prioritized(state, pkg)
		if err != nil {
			return nil, err
		}
		candidates := make([]Assignment, 0, len(prioritized)+1)
		candidates = append(candidates, NewNullAssignment(pkg))
		candidates = append(candidates, prioritized...)

		var chosen *Assignment
		var violationIdx []int
		seenViolation := make(map[int]bool)

		for i := range candidates {
			a := candidates[i]
			tracer.Probing(pkg, a.String())
			if err := state.LoadDependencies(a); err != nil {
				return nil, err
			}
			if a.Forced {
				chosen = &a
				break
			}
			trial := state.Trial(a)
			v := state.ViolatedClauseIndices(pkg, trial)
			if len(v) == 0 {
				chosen = &a
				break
			}
			for _, idx := range v {
				if !seenViolation[idx] {
					seenViolation[idx] = true
					violationIdx = append(violationIdx, idx)
				}
			}
		}

		if chosen != nil {
			if err := state.AddAssignment(*chosen); err != nil {
				return nil, err
			}
			continue
		}

		violated := make([]Clause, len(violationIdx))
		for i, idx := range violationIdx {
			violated[i] = state.ClauseAt(idx)
		}
		learned := NewIncompatibility(pkg, violated, violationIdx)
		tracer.Learned(pkg, len(learned.Terms))
		state.AppendClause(learned)

		target, ok := deepestAssignmentIn(state, learned)
		if !ok {
			return nil, buildSolverError(state)
		}
		state.Backtrack(target)
	}

	tracer.Done(len(state.Assignments()))
	return buildSolution(state), nil
}

// deepestAssignmentIn returns the live assignment, among those whose
// package is mentioned by c's terms, with the greatest AssignmentDepth.
func deepestAssignmentIn(s *SearchState, c Clause) (Assignment, bool) {
	var best Assignment
	bestDepth := -1
	found := false
	seen := make(map[string]bool)
	for _, t := range c.Terms {
		name := t.Requirement.Name
		if seen[name] {
			continue
		}
		seen[name] = true
		a, ok := s.liveAssignment(name)
		if !ok {
			continue
		}
		depth := s.AssignmentDepth(a)
		if !found || depth > bestDepth {
			best, bestDepth, found = a, depth, true
		}
	}
	return best, found
}

// buildSolution converts the search's final assignments into the public
// result shape: an insertion-ordered map from package name to the
// chosen version's canonical string.
func buildSolution(s *SearchState) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, a := range s.Solution() {
		result.Set(a.Package, a.Version.String())
	}
	return result
}
