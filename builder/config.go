// SPDX-License-Identifier: MIT
// Package: lvmath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals are consulted.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • absent      = nil → the constructor's own fill policy (field zero or hard-coded zero)
//   • absentCell  = nil → same, for matrix builders
//   • logger      = zap.NewNop()

package builder

import (
	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// Generators are stored untyped and resolved against the builder's element
// type in resolveAbsent/resolveAbsentCell.
type builderConfig struct {
	absent     any // func(int) E
	absentCell any // func(row, col int) E
	logger     *zap.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveAbsent returns the configured vector generator, or fallback when
// none was set. A generator of a different element type is ErrOptionViolation.
func resolveAbsent[E any](method string, cfg builderConfig, fallback func(int) E) (func(int) E, error) {
	if cfg.absent == nil {
		return fallback, nil
	}
	fn, ok := cfg.absent.(func(int) E)
	if !ok {
		var zero E
		return nil, builderErrorf(method, "WithAbsent(%T) on builder of %T: %w", cfg.absent, zero, ErrOptionViolation)
	}

	return fn, nil
}

// resolveAbsentCell is resolveAbsent for matrix generators.
func resolveAbsentCell[E any](method string, cfg builderConfig, fallback func(row, col int) E) (func(row, col int) E, error) {
	if cfg.absentCell == nil {
		return fallback, nil
	}
	fn, ok := cfg.absentCell.(func(row, col int) E)
	if !ok {
		var zero E
		return nil, builderErrorf(method, "WithAbsentCell(%T) on builder of %T: %w", cfg.absentCell, zero, ErrOptionViolation)
	}

	return fn, nil
}
