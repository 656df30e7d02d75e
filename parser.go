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

// ParseRequirement parses the native grammar "<name>[<extras>]? <spec>?".
// A missing spec means Any().
func ParseRequirement(s string) (Requirement, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Requirement{}, &ParseError{Input: s, Reason: "empty requirement"}
	}

	name, flags, rest, err := splitRequirementHead(trimmed)
	if err != nil {
		return Requirement{}, err
	}

	rest = strings.TrimSpace(rest)
	set := Any()
	if rest != "" {
		set, err = ParseVersionSet(rest)
		if err != nil {
			return Requirement{}, err
		}
	}

	req := NewRequirement(name, set)
	if len(flags) > 0 {
		req = req.WithFlags(flags...)
	}
	return req, nil
}

func splitRequirementHead(s string) (name string, flags []string, rest string, err error) {
	i := 0
	for i < len(s) && !isNameBoundary(s[i]) {
		i++
	}
	name = CanonicalPackageName(s[:i])
	if name == "" {
		return "", nil, "", &ParseError{Input: s, Reason: "missing package name"}
	}

	if i < len(s) && s[i] == '[' {
		j := strings.IndexByte(s[i:], ']')
		if j < 0 {
			return "", nil, "", &ParseError{Input: s, Offense: s[i:], Reason: "unterminated extras list"}
		}
		inner := s[i+1 : i+j]
		for _, part := range strings.Split(inner, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				flags = append(flags, part)
			}
		}
		i += j + 1
	}

	return name, flags, s[i:], nil
}

func isNameBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '[', '=', '!', '>', '<', '(', '*':
		return true
	}
	return false
}

// parserState is a cursor over a requirement spec string for the native
// boolean-expression grammar: precedence `!` > `&`/`,`/`and` > `|`/`or`,
// parentheses allowed, a bare version means `==`.
type parserState struct {
	input string
	pos   int
}

// ParseVersionSet parses s as a native boolean version-set expression.
func ParseVersionSet(s string) (VersionSet, error) {
	p := &parserState{input: s}
	p.skipSpace()
	if p.pos >= len(p.input) {
		return VersionSet{}, &ParseError{Input: s, Reason: "empty version set"}
	}
	set, err := p.parseOr()
	if err != nil {
		return VersionSet{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return VersionSet{}, &ParseError{Input: s, Offense: p.input[p.pos:], Reason: "unexpected trailing input"}
	}
	return set, nil
}

func (p *parserState) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parserState) parseOr() (VersionSet, error) {
	left, err := p.parseAnd()
	if err != nil {
		return VersionSet{}, err
	}
	terms := []VersionSet{left}
	for {
		p.skipSpace()
		mark := p.pos
		if !p.consumeOr() {
			p.pos = mark
			break
		}
		right, err := p.parseAnd()
		if err != nil {
			return VersionSet{}, err
		}
		terms = append(terms, right)
	}
	return Or(terms...), nil
}

func (p *parserState) consumeOr() bool {
	if p.pos < len(p.input) && p.input[p.pos] == '|' {
		p.pos++
		return true
	}
	return p.consumeKeyword("or")
}

func (p *parserState) parseAnd() (VersionSet, error) {
	left, err := p.parseUnary()
	if err != nil {
		return VersionSet{}, err
	}
	terms := []VersionSet{left}
	for {
		p.skipSpace()
		mark := p.pos
		if !p.consumeAnd() {
			p.pos = mark
			break
		}
		right, err := p.parseUnary()
		if err != nil {
			return VersionSet{}, err
		}
		terms = append(terms, right)
	}
	return And(terms...), nil
}

func (p *parserState) consumeAnd() bool {
	if p.pos < len(p.input) && (p.input[p.pos] == '&' || p.input[p.pos] == ',') {
		p.pos++
		return true
	}
	return p.consumeKeyword("and")
}

func (p *parserState) consumeKeyword(kw string) bool {
	rest := p.input[p.pos:]
	if !strings.HasPrefix(strings.ToLower(rest), kw) {
		return false
	}
	after := p.pos + len(kw)
	if after < len(p.input) && isIdentByte(p.input[after]) {
		return false // e.g. "android" must not match the "and" keyword
	}
	p.pos = after
	return true
}

func (p *parserState) parseUnary() (VersionSet, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '!' {
		next := byte(0)
		if p.pos+1 < len(p.input) {
			next = p.input[p.pos+1]
		}
		if next == '=' || next == '*' {
			return p.parsePrimary()
		}
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return VersionSet{}, err
		}
		return Not(inner), nil
	}
	return p.parsePrimary()
}

func (p *parserState) parsePrimary() (VersionSet, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return VersionSet{}, &ParseError{Input: p.input, Reason: "unexpected end of input"}
	}
	switch p.input[p.pos] {
	case '(':
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return VersionSet{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return VersionSet{}, &ParseError{Input: p.input, Reason: "missing closing parenthesis"}
		}
		p.pos++
		return inner, nil
	case '!':
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == '*' {
			p.pos += 2
			return Empty(), nil
		}
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == '=' {
			return p.parseComparator()
		}
		return VersionSet{}, &ParseError{Input: p.input, Offense: p.input[p.pos:], Reason: "unexpected '!'"}
	case '*':
		p.pos++
		return Any(), nil
	default:
		return p.parseComparator()
	}
}

var comparatorOps = []string{"==", "!=", ">=", "<=", ">", "<"}

func (p *parserState) parseComparator() (VersionSet, error) {
	op := "=="
	for _, candidate := range comparatorOps {
		if strings.HasPrefix(p.input[p.pos:], candidate) {
			op = candidate
			p.pos += len(candidate)
			break
		}
	}
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && !isVersionBoundary(p.input[p.pos]) {
		p.pos++
	}
	text := p.input[start:p.pos]
	if text == "" {
		return VersionSet{}, &ParseError{Input: p.input, Offense: p.input[start:], Reason: "expected a version"}
	}
	v, err := ParseVersion(text)
	if err != nil {
		return VersionSet{}, &ParseError{Input: p.input, Offense: text, Reason: err.Error()}
	}
	switch op {
	case "==":
		return Eq(v), nil
	case "!=":
		return Neq(v), nil
	case ">":
		return Gt(v), nil
	case "<":
		return Lt(v), nil
	case ">=":
		return Gteq(v), nil
	case "<=":
		return Lteq(v), nil
	default:
		return VersionSet{}, &ParseError{Input: p.input, Reason: "unknown operator " + op}
	}
}

func isVersionBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '(', ')', '!', '&', '|', ',':
		return true
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
