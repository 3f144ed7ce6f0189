// Package core holds what the fixed-size containers share: the Number element
// constraint, the sentinel error set, and the construction policy options.
//
// Errors:
//
//	ErrSizeMismatch      - vector input longer than its capacity.
//	ErrShapeMismatch     - matrix input with too many rows or a row too long.
//	ErrIndexOutOfRange   - read outside [0,N) or [0,R)×[0,C).
//	ErrInvalidDimensions - capacity, rows or cols not positive.
//
// Configuration Options (Option):
//
//	– WithPolicy(PolicyStrict)
//	    Default. Oversized input fails; no container is returned.
//
//	– WithPolicy(PolicyTruncate)
//	    Oversized input is clamped to the container shape; extra values,
//	    rows and columns are dropped silently.
//
// Both vector.New and matrix.New resolve options through Gather, so a
// policy means the same thing for either container.
package core
