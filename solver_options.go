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

import "log/slog"

// solverOptions configures one Solve invocation.
type solverOptions struct {
	strategy  VersionSelectionStrategy
	logger    *slog.Logger
	maxSteps  int
}

// SolveOption is a functional option for configuring Solve.
type SolveOption func(*solverOptions)

const defaultMaxSteps = 100000

func defaultSolverOptions() solverOptions {
	return solverOptions{
		strategy: DefaultStrategy{},
		maxSteps: defaultMaxSteps,
	}
}

// WithStrategy selects the VersionSelectionStrategy used to choose
// candidates for each unassigned package. The default is DefaultStrategy
// (newest-first).
func WithStrategy(strategy VersionSelectionStrategy) SolveOption {
	return func(o *solverOptions) {
		o.strategy = strategy
	}
}

// WithLogger sets a structured logger for solver diagnostics. A nil
// logger (the default) disables all tracing.
func WithLogger(logger *slog.Logger) SolveOption {
	return func(o *solverOptions) {
		o.logger = logger
	}
}

// WithMaxSteps limits the number of solver loop iterations. Use 0 to
// disable the limit. The default is 100000, matching the size of
// pathological real-world dependency graphs this solver is expected to
// terminate on well before exhausting it.
func WithMaxSteps(steps int) SolveOption {
	return func(o *solverOptions) {
		if steps <= 0 {
			o.maxSteps = 0
		} else {
			o.maxSteps = steps
		}
	}
}
