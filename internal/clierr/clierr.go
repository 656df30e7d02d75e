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

// Package clierr gives the verpy CLI typed, exit-code-bearing errors
// distinguishable from the bare errors cobra would otherwise print.
package clierr

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration against `verpy resolve`/`explain`.
const (
	// ExitSuccess indicates resolution completed and a solution was found.
	ExitSuccess = 0
	// ExitUnresolvable indicates Solve returned an error: usually a
	// SolverError (the input requirements have no consistent solution),
	// but also a repository error or an exceeded step limit.
	ExitUnresolvable = 1
	// ExitParseError indicates a requirement, version, or scenario file
	// could not be parsed.
	ExitParseError = 2
	// ExitUsageError indicates bad CLI flags/arguments, not a resolution
	// failure.
	ExitUsageError = 3
)

// ExitError pairs an error with the process exit code it should produce.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// New wraps err with code.
func New(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// Newf builds an ExitError from a formatted message, with no wrapped
// error.
func Newf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Code extracts the exit code from err: ExitSuccess for nil,
// the code carried by an *ExitError, or ExitUsageError otherwise.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsageError
}
