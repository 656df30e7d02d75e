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

import "strings"

// ParseMavenRequirement parses "<name> <maven-set>" using the Maven-style
// Maven-style range grammar for the set half.
func ParseMavenRequirement(s string) (Requirement, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Requirement{}, &ParseError{Input: s, Reason: "empty requirement"}
	}
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return Requirement{}, &ParseError{Input: s, Reason: "missing maven version set"}
	}
	name := CanonicalPackageName(trimmed[:idx])
	set, err := ParseMavenVersionSet(strings.TrimSpace(trimmed[idx:]))
	if err != nil {
		return Requirement{}, err
	}
	return NewRequirement(name, set), nil
}

// ParseMavenVersionSet parses a comma-separated list of bare versions and
// `[lo,hi]`/`(lo,hi)`-style ranges, combined with or. An empty endpoint
// means unbounded on that side.
func ParseMavenVersionSet(s string) (VersionSet, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return VersionSet{}, &ParseError{Input: s, Reason: "empty maven version set"}
	}

	entries := splitMavenEntries(trimmed)
	sets := make([]VersionSet, 0, len(entries))
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			return VersionSet{}, &ParseError{Input: s, Reason: "empty entry in version list"}
		}
		set, err := parseMavenEntry(s, entry)
		if err != nil {
			return VersionSet{}, err
		}
		sets = append(sets, set)
	}
	return Or(sets...), nil
}

// splitMavenEntries splits s on top-level commas, treating commas nested
// inside a [...]/(...) range as part of that range rather than a
// separator between list entries.
func splitMavenEntries(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func parseMavenEntry(full, entry string) (VersionSet, error) {
	first, last := entry[0], entry[len(entry)-1]
	opens := first == '[' || first == '('
	closes := last == ']' || last == ')'
	if opens != closes {
		return VersionSet{}, &ParseError{Input: full, Offense: entry, Reason: "unbalanced range brackets"}
	}
	isRange := opens && closes
	if !isRange {
		v, err := ParseVersion(entry)
		if err != nil {
			return VersionSet{}, &ParseError{Input: full, Offense: entry, Reason: err.Error()}
		}
		return Eq(v), nil
	}

	inner := entry[1 : len(entry)-1]
	parts := splitMavenEntries(inner)
	switch len(parts) {
	case 1:
		v, err := ParseVersion(strings.TrimSpace(parts[0]))
		if err != nil {
			return VersionSet{}, &ParseError{Input: full, Offense: entry, Reason: err.Error()}
		}
		return Eq(v), nil
	case 2:
		lowerSet, err := mavenBound(full, strings.TrimSpace(parts[0]), first == '[', true)
		if err != nil {
			return VersionSet{}, err
		}
		upperSet, err := mavenBound(full, strings.TrimSpace(parts[1]), last == ']', false)
		if err != nil {
			return VersionSet{}, err
		}
		return And(lowerSet, upperSet), nil
	default:
		return VersionSet{}, &ParseError{Input: full, Offense: entry, Reason: "range must have exactly one or two endpoints"}
	}
}

// mavenBound builds the VersionSet for one side of a range. An empty
// endpoint text means unbounded on that side (Any()).
func mavenBound(full, text string, inclusive, lower bool) (VersionSet, error) {
	if text == "" {
		return Any(), nil
	}
	v, err := ParseVersion(text)
	if err != nil {
		return VersionSet{}, &ParseError{Input: full, Offense: text, Reason: err.Error()}
	}
	switch {
	case lower && inclusive:
		return Gteq(v), nil
	case lower && !inclusive:
		return Gt(v), nil
	case !lower && inclusive:
		return Lteq(v), nil
	default:
		return Lt(v), nil
	}
}
