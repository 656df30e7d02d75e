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

// Repository is the only collaborator the core depends on. Registry HTTP
// clients, in-memory test fixtures, and any other adapter implement this
// interface; the core treats it as read-only for the duration of a Solve
// call.
//
// Both methods are expected to be deterministic for the duration of one
// resolve: Solve memoizes their results per (package[, version]) and never
// calls GetDependencies twice for the same pair.
type Repository interface {
	// GetVersions returns every version known for name. Order is not
	// required — Solve re-orders candidates via the configured
	// VersionSelectionStrategy.
	GetVersions(name string) ([]Version, error)

	// GetDependencies returns the requirements attached to the specific
	// (name, version) pair. flags, if non-empty, select optional
	// requirement groups; adapters that do not model extras ignore it.
	GetDependencies(name string, version Version, flags []string) ([]Requirement, error)
}

// RepositoryError wraps an error surfaced from a Repository. The core
// neither retries nor inspects it.
type RepositoryError struct {
	Package string
	Err     error
}

func (e *RepositoryError) Error() string {
	return "repository: " + e.Package + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error { return e.Err }
