// Package vector provides Vector[T], a fixed-capacity sequence of exactly N
// numeric values.
//
// What & Why:
//
//	The capacity N is fixed once by New/Zero and never changes. Values supplied
//	at construction fill indices 0..k in order; the rest hold the zero value
//	of T. Input longer than N is rejected with core.ErrSizeMismatch unless the
//	caller opts into core.PolicyTruncate. There is no setter, so a Vector can
//	be shared between goroutines without locking.
//
// Complexity:
//
//	New/Zero: O(N). Len, At: O(1). All: O(N) per full pass. String: O(N).
package vector
