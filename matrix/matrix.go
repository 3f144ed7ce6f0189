// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Keep one flat buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Map supplied row i onto destination row i exactly once (no broadcast).
//
// Complexity quicksheet:
//   - New/Zero: O(R*C); At: O(1); Row: O(C); All: O(R*C) per pass.

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/katalvlaran/fixedgrid/core"
	"github.com/katalvlaran/fixedgrid/render"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a fixed-shape row-major grid.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Matrix[T core.Number] struct {
	r, c int
	data []T
}

// Compile-time assertions for render.Grid & fmt.Stringer conformance.
var (
	_ render.Grid[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer         = (*Matrix[float64])(nil)
)

// New creates a rows×cols matrix from values, one supplied row per destination row.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 && rows*cols fits in int; else ErrInvalidDimensions.
//   - Stage 2: check len(values) <= rows and every len(values[i]) <= cols;
//     under PolicyTruncate clamp instead of failing.
//   - Stage 3: allocate a zero-filled buffer and copy values[i] into row i from column 0.
//
// Behavior highlights:
//   - Rows beyond len(values), and columns beyond len(values[i]), are zero.
//   - On error no Matrix is returned; nothing partial is observable.
//   - values is copied; later edits to it do not reach the Matrix.
//
// Errors:
//   - core.ErrInvalidDimensions (rows<=0, cols<=0, or rows*cols overflows int).
//   - core.ErrShapeMismatch (too many rows, or row i longer than cols).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New[T core.Number](rows, cols int, values [][]T, opts ...core.Option) (*Matrix[T], error) {
	// rows*cols must fit in int, otherwise the buffer length wraps.
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, matrixErrorf(ctxNew, rows, cols, core.ErrInvalidDimensions)
	}
	o := core.Gather(opts...)

	if len(values) > rows {
		if !o.Truncate() {
			return nil, fmt.Errorf("Matrix.%s(%d,%d): %d rows: %w",
				ctxNew, rows, cols, len(values), core.ErrShapeMismatch)
		}
		values = values[:rows]
	}
	// Validate every row before allocating so failure leaves nothing behind.
	if !o.Truncate() {
		for i, src := range values {
			if len(src) > cols {
				return nil, fmt.Errorf("Matrix.%s(%d,%d): row %d has %d values: %w",
					ctxNew, rows, cols, i, len(src), core.ErrShapeMismatch)
			}
		}
	}

	data := make([]T, rows*cols)
	for i, src := range values {
		// copy stops at the shorter slice, which clamps under PolicyTruncate.
		copy(data[i*cols:(i+1)*cols], src)
	}

	return &Matrix[T]{r: rows, c: cols, data: data}, nil
}

// Zero creates a rows×cols matrix with every element at zero.
func Zero[T core.Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols, nil)
}

// Rows returns the number of rows R.
func (m *Matrix[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns C.
func (m *Matrix[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, core.ErrIndexOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns core.ErrIndexOutOfRange if either coordinate is outside the shape.
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if _, err := m.indexOf(ctxRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RowSeq yields the C elements of row i in column order.
// An out-of-range i yields nothing; use Row for a checked read.
func (m *Matrix[T]) RowSeq(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if i < 0 || i >= m.r {
			return
		}
		for _, x := range m.data[i*m.c : (i+1)*m.c] {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (row index, row sequence) pairs in row-major order.
func (m *Matrix[T]) All() iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for i := 0; i < m.r; i++ {
			if !yield(i, m.RowSeq(i)) {
				return
			}
		}
	}
}

// String implements fmt.Stringer: one space-terminated line per row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = render.Matrix[T](&sb, m)

	return sb.String()
}
