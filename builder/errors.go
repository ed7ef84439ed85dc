// SPDX-License-Identifier: MIT
// Package: lvmath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every validation sentinel wraps ErrInvalidArgument, so a single
//     errors.Is(err, ErrInvalidArgument) matches the whole class.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Builders MUST NOT panic at runtime; panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every builder validation error.
// Classification: programmer error; never retried, never partially applied.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrBadSize indicates a capacity, row count or column count below MinSize.
// Usage: if errors.Is(err, ErrBadSize) { /* report invalid size */ }.
var ErrBadSize = fmt.Errorf("%w: size below %d", ErrInvalidArgument, MinSize)

// ErrOutOfRange indicates an index outside 1..Size() (or a row/column outside
// its bounds) on Set, With or Get.
var ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

// ErrNilElement indicates an attempt to store a nil pointer, map, slice,
// func, channel or interface.
var ErrNilElement = fmt.Errorf("%w: nil element", ErrInvalidArgument)

// ErrNilGenerator indicates a nil absent-element generator or field.
var ErrNilGenerator = fmt.Errorf("%w: nil generator", ErrInvalidArgument)

// ErrOptionViolation indicates that an option resolved at construction time
// does not fit the builder, e.g. WithAbsent(func(int) int64) passed to a
// Gaussian builder. Option constructors themselves panic on nil instead.
var ErrOptionViolation = fmt.Errorf("%w: option does not apply", ErrInvalidArgument)

// builderErrorf prefixes a formatted message with the method context.
// The format may contain %w to keep sentinels matchable with errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
