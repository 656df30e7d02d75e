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

// ClauseKind tags which Clause variant a value holds: a tagged sum type
// stands in for the class hierarchy a dynamic-dispatch language would use
// for plain clauses, Dependency, and Incompatibility.
type ClauseKind int

const (
	// ClausePlain is a bare disjunction of terms with no extra provenance.
	ClausePlain ClauseKind = iota
	// ClauseDependency carries the assignment and requirement it was built
	// from, for diagnostics.
	ClauseDependency
	// ClauseIncompatibility carries the indices of the clauses it was
	// learned from.
	ClauseIncompatibility
)

// Clause is a disjunction of Terms: true if any term is true, false if all
// terms are false, unknown otherwise. Dependency and Incompatibility are
// Clause values with Kind set and the matching provenance fields
// populated.
type Clause struct {
	Kind  ClauseKind
	Terms []Term

	// Dependant and Requirement are set when Kind == ClauseDependency.
	Dependant   Assignment
	Requirement Requirement

	// Sources holds indices into the owning SearchState.clauses slice that
	// this incompatibility was synthesized from. Set when
	// Kind == ClauseIncompatibility.
	Sources []int

	// FocusPackage is the package the incompatibility was learned for
	// (excluded from Terms by construction). Set when
	// Kind == ClauseIncompatibility.
	FocusPackage string
}

// NewDependency builds the clause "¬A ∨ R": choosing assignment a implies
// requirement r must hold.
func NewDependency(a Assignment, r Requirement) Clause {
	notA := NewNegativeTerm(NewRequirement(a.Package, Eq(a.Version)))
	if a.Null {
		notA = NewNegativeTerm(NewRequirement(a.Package, Any()))
	}
	return Clause{
		Kind:        ClauseDependency,
		Terms:       []Term{notA, NewTerm(r)},
		Dependant:   a,
		Requirement: r,
	}
}

// NewIncompatibility learns a clause from the union of terms in a set of
// violated clauses for one package, excluding terms that mention focus and
// merging remaining per-package terms by unioning their version sets.
func NewIncompatibility(focus string, violated []Clause, sources []int) Clause {
	type key struct {
		name     string
		positive bool
	}
	order := make([]key, 0)
	sets := make(map[key]VersionSet)

	for _, c := range violated {
		for _, t := range c.Terms {
			if t.Requirement.Name == focus {
				continue
			}
			k := key{name: t.Requirement.Name, positive: t.Positive}
			if existing, ok := sets[k]; ok {
				sets[k] = existing.Union(t.Requirement.Set)
			} else {
				sets[k] = t.Requirement.Set
				order = append(order, k)
			}
		}
	}

	terms := make([]Term, 0, len(order))
	for _, k := range order {
		terms = append(terms, Term{
			Requirement: NewRequirement(k.name, sets[k]),
			Positive:    k.positive,
		})
	}

	return Clause{
		Kind:         ClauseIncompatibility,
		Terms:        terms,
		Sources:      sources,
		FocusPackage: focus,
	}
}

// TruthValue evaluates the clause: True if any term is True, False if
// every term is False, Unknown otherwise (short-circuiting on the first
// True term).
func (c Clause) TruthValue(assignments []Assignment) Tribool {
	sawUnknown := false
	for _, t := range c.Terms {
		switch t.TruthValue(assignments) {
		case True:
			return True
		case Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return Unknown
	}
	return False
}

// Mentions reports whether any term of c refers to the named package.
func (c Clause) Mentions(name string) bool {
	for _, t := range c.Terms {
		if t.Requirement.Name == name {
			return true
		}
	}
	return false
}

// String renders the clause for diagnostics.
func (c Clause) String() string {
	switch c.Kind {
	case ClauseDependency:
		return fmt.Sprintf("%s depends on %s", c.Dependant, c.Requirement)
	default:
		parts := make([]string, len(c.Terms))
		for i, t := range c.Terms {
			parts[i] = t.String()
		}
		if len(parts) == 0 {
			return "(contradiction)"
		}
		return strings.Join(parts, " or ")
	}
}
