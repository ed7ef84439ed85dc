// SPDX-License-Identifier: MIT
// Package: lvmath/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on nil inputs.
//     Builders themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"go.uber.org/zap"
)

// BuilderOption customizes a builder by mutating a builderConfig before the
// builder is created.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithAbsent overrides the generator that fills unset vector indices.
// fn receives the 1-based index and MUST be pure: repeated Builds rely on
// it returning equal values for equal indices.
// Applies to vector builders; matrix builders use WithAbsentCell.
// Panics on nil.
func WithAbsent[E any](fn func(index int) E) BuilderOption {
	if fn == nil {
		panic("builder: WithAbsent(nil)")
	}
	return func(c *builderConfig) {
		c.absent = fn
	}
}

// WithAbsentCell overrides the generator that fills unset matrix cells.
// fn receives 1-based (row, col) and MUST be pure. Panics on nil.
func WithAbsentCell[E any](fn func(row, col int) E) BuilderOption {
	if fn == nil {
		panic("builder: WithAbsentCell(nil)")
	}
	return func(c *builderConfig) {
		c.absentCell = fn
	}
}

// WithLogger attaches a logger; Build reports size and fill counts at Debug
// level. Panics on nil; the default is a no-op logger.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
