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

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/kythera-dev/verpy"
	"github.com/kythera-dev/verpy/internal/clierr"
	"github.com/kythera-dev/verpy/repository/scenario"
)

var nearestWinsFlag bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <scenario.yaml>",
	Short: "Resolve a scenario's root requirements and print the chosen versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&nearestWinsFlag, "nearest-wins", false, "use the Maven-style nearest-dependant-wins strategy instead of newest-first")
}

func runResolve(cmd *cobra.Command, args []string) error {
	result, err := solveScenario(args[0])
	if err != nil {
		return err
	}

	printSolutionTable(cmd.OutOrStdout(), result)
	return nil
}

func solveScenario(path string) (*resolvedSolution, error) {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return nil, clierr.New(clierr.ExitParseError, fmt.Errorf("loading scenario: %w", err))
	}

	repo, rootReqs, err := s.Build()
	if err != nil {
		return nil, clierr.New(clierr.ExitParseError, err)
	}

	opts := []verpy.SolveOption{verpy.WithLogger(newLogger())}
	if nearestWinsFlag {
		opts = append(opts, verpy.WithStrategy(verpy.NearestWinsStrategy{}))
	}

	solved, err := verpy.Solve(rootReqs, repo, opts...)
	if err != nil {
		var solverErr *verpy.SolverError
		if errors.As(err, &solverErr) {
			return nil, clierr.New(clierr.ExitUnresolvable, solverErr)
		}
		return nil, clierr.New(clierr.ExitUnresolvable, err)
	}

	names := solved.Keys()
	sort.Strings(names)
	return &resolvedSolution{names: names, solved: solved}, nil
}

type resolvedSolution struct {
	names  []string
	solved interface {
		Get(string) (interface{}, bool)
	}
}

func printSolutionTable(w io.Writer, r *resolvedSolution) {
	nameWidth := len("PACKAGE")
	for _, name := range r.names {
		if width := runewidth.StringWidth(name); width > nameWidth {
			nameWidth = width
		}
	}
	fmt.Fprintf(w, "%-*s  VERSION\n", nameWidth, "PACKAGE")
	for _, name := range r.names {
		version, _ := r.solved.Get(name)
		fmt.Fprintf(w, "%-*s  %v\n", nameWidth, name, version)
	}
}
