// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce parameter
// contracts in builder constructors and accessors.
//
// Each function returns a formatted error via builderErrorf when its
// precondition is violated.
package builder

import "reflect"

// validateSize ensures that size is ≥ MinSize.
// Returns "<Method>: size must be ≥ 1, got <got>: ..." wrapping ErrBadSize.
// Complexity: O(1).
func validateSize(method string, got int) error {
	if got < MinSize {
		return builderErrorf(method, "size must be ≥ %d, got %d: %w", MinSize, got, ErrBadSize)
	}

	return nil
}

// validateIndex ensures FirstIndex ≤ index ≤ size.
// Complexity: O(1).
func validateIndex(method string, index, size int) error {
	if index < FirstIndex || index > size {
		return builderErrorf(method, "index %d not in %d..%d: %w", index, FirstIndex, size, ErrOutOfRange)
	}

	return nil
}

// validateElement rejects nil reference-kind elements.
// Complexity: O(1).
func validateElement[E any](method string, index int, e E) error {
	if isNil(e) {
		return builderErrorf(method, "index %d: %w", index, ErrNilElement)
	}

	return nil
}

// isNil reports whether e is a nil interface or a nil pointer, map, slice,
// func or channel. Value types are never nil.
func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
