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

// Package verpy is a version-constraint dependency resolver: given a set
// of root requirements and a Repository that can enumerate a package's
// available versions and the requirements attached to each version, Solve
// produces a consistent assignment of exactly one version per required
// package, or reports the conflict that makes one impossible.
//
// The package is organized around three small pieces that compose rather
// than a single monolithic solver: a Version/VersionSet algebra (see
// Version, VersionSet, ParseVersion, ParseVersionSet), a clause-driven
// search engine (SearchState, Clause, Term, Assignment), and a
// VersionSelectionStrategy that decides which candidate the search tries
// next for a given package (DefaultStrategy, NearestWinsStrategy).
//
// Repository adapters live under repository/ (repository/memory for
// fixtures and tests, repository/scenario for YAML-described graphs); the
// verpy package itself has no I/O.
package verpy
