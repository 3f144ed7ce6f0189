package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/fixedgrid/core"
	"github.com/katalvlaran/fixedgrid/render"
)

// ---------- error context tags ----------

const (
	ctxNew = "New"
	ctxAt  = "At"
)

// vectorErrorf wraps a sentinel with the method tag and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector holds exactly n values of T.
// data is owned exclusively; no method hands out the backing slice.
type Vector[T core.Number] struct {
	data []T // len(data) == capacity, fixed at construction
}

var (
	_ render.Linear[int] = (*Vector[int])(nil)
	_ fmt.Stringer       = (*Vector[int])(nil)
)

// New builds a Vector of the given capacity from values.
// Stage 1 (Validate): size > 0; len(values) <= size unless truncating.
// Stage 2 (Prepare): allocate zero-filled storage.
// Stage 3 (Finalize): copy values into indices 0..len(values)-1.
//
// Errors:
//   - core.ErrInvalidDimensions when size <= 0.
//   - core.ErrSizeMismatch when len(values) > size under core.PolicyStrict.
//
// Complexity: O(size).
func New[T core.Number](size int, values []T, opts ...core.Option) (*Vector[T], error) {
	if size <= 0 {
		return nil, vectorErrorf(ctxNew, size, core.ErrInvalidDimensions)
	}
	o := core.Gather(opts...)
	if len(values) > size {
		if !o.Truncate() {
			return nil, fmt.Errorf("Vector.%s(%d): %d values: %w", ctxNew, size, len(values), core.ErrSizeMismatch)
		}
		values = values[:size]
	}

	// make() zero-fills the tail the caller did not supply.
	data := make([]T, size)
	copy(data, values)

	return &Vector[T]{data: data}, nil
}

// Zero builds a Vector of the given capacity with every element at zero.
func Zero[T core.Number](size int) (*Vector[T], error) {
	return New[T](size, nil)
}

// Of builds a Vector whose capacity equals len(values).
func Of[T core.Number](values ...T) (*Vector[T], error) {
	return New(len(values), values)
}

// Len returns the fixed capacity N.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
// Returns core.ErrIndexOutOfRange when i < 0 or i >= Len().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(ctxAt, i, core.ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// All yields the N elements in index order.
// The sequence is lazy, finite and can be ranged over any number of times.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Values returns a fresh copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as a single space-terminated line.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = render.Vector[T](&sb, v) // strings.Builder never fails

	return sb.String()
}
