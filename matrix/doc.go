// Package matrix provides Matrix[T], a fixed-shape R×C grid of numeric values
// stored row-major.
//
// The matrix package provides:
//
//   - New / Zero constructors that validate the shape once and copy supplied
//     row i into destination row i; unsupplied rows and columns stay zero.
//   - Bounds-checked At(row, col), plus Row copies and lazy row iteration.
//   - String, which renders one space-separated line per row.
//
// Too many rows, or a row longer than C, yields core.ErrShapeMismatch unless
// core.PolicyTruncate is requested. A Matrix has no setters and is safe for
// concurrent readers.
//
// See the examples in this package for usage patterns.
package matrix
