// Package trace provides structured solver diagnostics built on log/slog,
// in the register of ajxudir-goupdate's pkg/verbose but emitting slog
// records instead of hand-rolled [DEBUG]-prefixed lines.
//
// A nil *slog.Logger disables all output, matching the contract
// contriboss-pubgrub-go's SolverOptions.Logger uses.
package trace

import "log/slog"

// Trace wraps an optional *slog.Logger with named helpers for the solver's
// decision points. Every method is a no-op when the wrapped logger is nil.
type Trace struct {
	logger *slog.Logger
}

// New wraps logger. A nil logger yields a Trace whose methods do nothing.
func New(logger *slog.Logger) Trace {
	return Trace{logger: logger}
}

func (t Trace) enabled() bool { return t.logger != nil }

// Probing logs that the solver is about to test a candidate assignment
// against the clauses that mention its package.
func (t Trace) Probing(pkg, version string) {
	if t.enabled() {
		t.logger.Debug("probing candidate", "package", pkg, "version", version)
	}
}

// Assigned logs a committed assignment.
func (t Trace) Assigned(pkg, version string, forced bool) {
	if t.enabled() {
		t.logger.Debug("assigned", "package", pkg, "version", version, "forced", forced)
	}
}

// Learned logs a newly synthesized incompatibility.
func (t Trace) Learned(focus string, terms int) {
	if t.enabled() {
		t.logger.Debug("learned incompatibility", "focus", focus, "terms", terms)
	}
}

// Backtrack logs the assignment chosen as the backtrack target.
func (t Trace) Backtrack(pkg string) {
	if t.enabled() {
		t.logger.Debug("backtracking", "package", pkg)
	}
}

// Step logs the top of each solver loop iteration.
func (t Trace) Step(n int, pkg string) {
	if t.enabled() {
		t.logger.Debug("solver step", "step", n, "package", pkg)
	}
}

// Done logs a completed resolution.
func (t Trace) Done(assignments int) {
	if t.enabled() {
		t.logger.Debug("solution complete", "assignments", assignments)
	}
}
