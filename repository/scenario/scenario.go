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

// Package scenario loads YAML fixtures describing a root requirement set
// and a fully enumerated package repository, for use by the CLI and by
// table-driven solver tests.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kythera-dev/verpy"
	"github.com/kythera-dev/verpy/repository/memory"
)

// DefaultMaxFileSize bounds how large a scenario file LoadFile will read,
// to avoid building an unbounded repository from an untrusted path.
const DefaultMaxFileSize = 2 << 20 // 2 MiB

// Scenario is the raw, unparsed shape of a scenario YAML document:
//
//	root:
//	  - "foo >=1.0"
//	packages:
//	  foo:
//	    "1.0":
//	      - "bar ==1.0"
//	  bar:
//	    "1.0": []
type Scenario struct {
	Root     []string                       `yaml:"root"`
	Packages map[string]map[string][]string `yaml:"packages"`
}

// LoadFile reads and parses a scenario file, enforcing DefaultMaxFileSize.
func LoadFile(path string) (*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxFileSize {
		return nil, fmt.Errorf("scenario file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes parses scenario YAML already read into memory.
func LoadBytes(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: invalid YAML: %w", err)
	}
	return &s, nil
}

// Build parses every requirement string in the scenario and returns a
// ready-to-solve in-memory repository plus the root requirement set.
func (s *Scenario) Build() (*memory.Repository, []verpy.Requirement, error) {
	repo := memory.New()

	for name, versions := range s.Packages {
		for versionText, depTexts := range versions {
			version, err := verpy.ParseVersion(versionText)
			if err != nil {
				return nil, nil, fmt.Errorf("scenario: package %q version %q: %w", name, versionText, err)
			}
			reqs := make([]verpy.Requirement, 0, len(depTexts))
			for _, depText := range depTexts {
				req, err := verpy.ParseRequirement(depText)
				if err != nil {
					return nil, nil, fmt.Errorf("scenario: %s %s: dependency %q: %w", name, versionText, depText, err)
				}
				reqs = append(reqs, req)
			}
			repo.AddPackage(name, version, reqs)
		}
	}

	rootReqs := make([]verpy.Requirement, 0, len(s.Root))
	for _, text := range s.Root {
		req, err := verpy.ParseRequirement(text)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: root requirement %q: %w", text, err)
		}
		rootReqs = append(rootReqs, req)
	}

	return repo, rootReqs, nil
}
