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

// Tribool is the three-valued truth result of evaluating a Term or Clause
// against a set of assignments: a package with no assignment yet is
// neither satisfied nor violated.
type Tribool int

const (
	// Unknown means no assignment exists yet for the relevant package(s).
	Unknown Tribool = iota
	// True means the term/clause is satisfied by the current assignments.
	True
	// False means the term/clause is violated by the current assignments.
	False
)

func (t Tribool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Term is a literal in clause logic: a Requirement with a polarity. A
// positive term asserts the package must be assigned a version inside the
// requirement's set; a negative term asserts it must not be.
type Term struct {
	Requirement Requirement
	Positive    bool
}

// NewTerm creates a positive term.
func NewTerm(req Requirement) Term {
	return Term{Requirement: req, Positive: true}
}

// NewNegativeTerm creates a negative term.
func NewNegativeTerm(req Requirement) Term {
	return Term{Requirement: req, Positive: false}
}

// Negate returns the logical negation of t.
func (t Term) Negate() Term {
	return Term{Requirement: t.Requirement, Positive: !t.Positive}
}

// String renders the term using the native grammar.
func (t Term) String() string {
	if t.Positive {
		return t.Requirement.String()
	}
	return fmt.Sprintf("not %s", t.Requirement.String())
}

// TruthValue evaluates the term against assignments: Unknown if no
// assignment exists for the term's package; otherwise the
// polarity-adjusted membership test, with the Null assignment counting as
// a positive-term violation / negative-term satisfaction. A positive term
// on a package whose assignment is Forced evaluates True whatever its
// version set, so a nearest-wins pick overrides the other requirements
// on that package; negative terms are evaluated normally.
func (t Term) TruthValue(assignments []Assignment) Tribool {
	a, ok := findAssignment(assignments, t.Requirement.Name)
	if !ok {
		return Unknown
	}
	if a.Forced && t.Positive {
		return True
	}
	if a.Null {
		if t.Positive {
			return False
		}
		return True
	}
	satisfied := t.Requirement.Set.Contains(a.Version)
	if t.Positive == satisfied {
		return True
	}
	return False
}

func findAssignment(assignments []Assignment, name string) (Assignment, bool) {
	for i := len(assignments) - 1; i >= 0; i-- {
		if assignments[i].Package == name {
			return assignments[i], true
		}
	}
	return Assignment{}, false
}
