// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShortcuts enables the zero/identity fast paths of the determinant
	// engine. The fast paths never change a result, only the amount of work.
	DefaultShortcuts = true

	// DefaultMaxOrder is the default order limit for Determinant/Expand.
	// 0 means "no limit".
	DefaultMaxOrder = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxOrderInvalid = "matrix: WithMaxOrder: limit must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	shortcuts bool // DefaultShortcuts
	maxOrder  int  // DefaultMaxOrder; 0 = unlimited
}

// ---------- Constructors (WithX) ----------

// WithShortcuts toggles the zero/identity fast paths.
// Implementation:
//   - Stage 1: return a setter that writes the flag into Options.
//
// Behavior highlights:
//   - Applied at every recursion level, not only at the top-level call.
//   - Disabling them forces the full cofactor expansion; the value is identical.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithShortcuts(enabled bool) Option {
	return func(o *Options) { o.shortcuts = enabled }
}

// WithMaxOrder caps the order accepted by Determinant/Expand.
// Implementation:
//   - Stage 1: validate n ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - n == 0 disables the limit.
//   - An input of order > n fails with ErrOrderLimit before any expansion work.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// AI-Hints:
//   - The expansion is O(n!); orders above ~10 are already slow. Set a limit
//     whenever the input comes from outside the program.
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// ---------- Resolution ----------

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		shortcuts: DefaultShortcuts,
		maxOrder:  DefaultMaxOrder,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(len(user)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}
