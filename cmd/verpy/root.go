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
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kythera-dev/verpy/internal/clierr"
)

var exitFunc = os.Exit
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "verpy",
	Short: "A version-constraint dependency resolver",
	Long:  "verpy resolves a set of root requirements against a package repository into a consistent set of versions, or reports the conflict that prevents one.",
}

func newLogger() *slog.Logger {
	if !verboseFlag {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the root command and exits with the code clierr.Code
// derives from whatever error it returned.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := clierr.Code(err)
		fmt.Fprintln(os.Stderr, "verpy:", err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing, returning the error
// instead of calling os.Exit. It clears the arguments again afterwards, so
// a later Execute reads os.Args.
func ExecuteTest(args []string) error {
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable solver step tracing on stderr")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}
