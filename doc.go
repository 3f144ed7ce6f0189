// Package fixedgrid is a small home for fixed-size numeric containers:
// a capacity-checked vector and a shape-checked row-major matrix, both
// immutable once built.
//
// What is inside?
//
//	core/    — Number constraint, sentinel errors, construction policy options
//	vector/  — Vector[T]: exactly N elements, bounds-checked At, lazy All()
//	matrix/  — Matrix[T]: exactly R×C elements, row i ← supplied row i
//	render/  — space-separated textual dump, one line per row
//
// Why fixedgrid?
//
//   - Shape is validated once at construction; reads never go out of bounds.
//   - Oversized input is an error (ErrSizeMismatch / ErrShapeMismatch), not memory corruption.
//   - Unsupplied slots are the zero value of T, identically for both containers.
//   - No mutation after construction, so concurrent readers need no locks.
//
// Quick ASCII example (3×4 built from two rows):
//
//	1 1 2 0
//	2 2 2 0
//	0 0 0 0
//
// The cmd/fixeddemo binary replays these constructions on the terminal.
package fixedgrid
