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

	"github.com/spf13/cobra"

	"github.com/kythera-dev/verpy"
	"github.com/kythera-dev/verpy/internal/clierr"
)

var explainCmd = &cobra.Command{
	Use:   "explain <scenario.yaml>",
	Short: "Resolve a scenario and print why it failed, or confirm it succeeds",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	result, err := solveScenario(args[0])
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "resolvable: %d packages\n", len(result.names))
		printSolutionTable(cmd.OutOrStdout(), result)
		return nil
	}

	var exitErr *clierr.ExitError
	if errors.As(err, &exitErr) {
		var solverErr *verpy.SolverError
		if errors.As(exitErr.Err, &solverErr) {
			fmt.Fprintf(cmd.OutOrStdout(), "unresolvable: %s\n", solverErr.Error())
			return exitErr
		}
	}
	return err
}
