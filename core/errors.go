// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by vector and matrix.
// Containers return these sentinels wrapped with call-site context
// (fmt.Errorf("Type.Method(...): %w", ErrX)); callers match via errors.Is.

package core

import "errors"

var (
	// ErrSizeMismatch is returned when a vector is given more initial values
	// than its fixed capacity under PolicyStrict.
	ErrSizeMismatch = errors.New("fixedgrid: size mismatch")

	// ErrShapeMismatch is returned when a matrix is given more rows than R,
	// or a row with more values than C, under PolicyStrict.
	ErrShapeMismatch = errors.New("fixedgrid: shape mismatch")

	// ErrIndexOutOfRange indicates that an index or coordinate is outside valid bounds.
	// Public accessors MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("fixedgrid: index out of range")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("fixedgrid: dimensions must be > 0")
)
