// Package vector_test contains unit tests for Vector.
package vector_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/fixedgrid/core"
	"github.com/katalvlaran/fixedgrid/vector"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects non-positive capacities.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := vector.New[int](0, nil)
	require.ErrorIs(t, err, core.ErrInvalidDimensions)

	_, err = vector.Zero[float64](-3)
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

// TestZeroFill checks that a default-built vector holds N zeros.
func TestZeroFill(t *testing.T) {
	v, err := vector.Zero[float64](3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, []float64{0, 0, 0}, v.Values())
}

// TestPrefixThenZeros covers construction from fewer values than the capacity:
// iteration yields the supplied values in order, then zeros.
func TestPrefixThenZeros(t *testing.T) {
	for k := 0; k <= 5; k++ {
		in := make([]int, k)
		for i := range in {
			in[i] = i + 10
		}
		v, err := vector.New(5, in)
		require.NoError(t, err)

		var got []int
		for x := range v.All() {
			got = append(got, x)
		}
		require.Len(t, got, 5)
		for i := 0; i < 5; i++ {
			want := 0
			if i < k {
				want = i + 10
			}
			require.Equal(t, want, got[i], "k=%d i=%d", k, i)

			at, err := v.At(i)
			require.NoError(t, err)
			require.Equal(t, want, at)
		}
	}
}

// TestNewSizeMismatch ensures oversized input fails under the default policy.
func TestNewSizeMismatch(t *testing.T) {
	v, err := vector.New(3, []int{1, 2, 3, 4})
	require.ErrorIs(t, err, core.ErrSizeMismatch)
	require.Nil(t, v)
}

// TestNewTruncate ensures PolicyTruncate keeps the first N values.
func TestNewTruncate(t *testing.T) {
	v, err := vector.New(3, []int{1, 2, 3, 4}, core.WithPolicy(core.PolicyTruncate))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.Values())
}

// TestAtOutOfRange ensures At returns ErrIndexOutOfRange on invalid indices.
func TestAtOutOfRange(t *testing.T) {
	v, err := vector.Of(1, 2, 3, 4)
	require.NoError(t, err)

	_, err = v.At(-1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = v.At(4)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
	require.Contains(t, err.Error(), "Vector.At(4)")
}

// TestNoAliasing verifies the vector owns its storage.
func TestNoAliasing(t *testing.T) {
	in := []int{1, 2}
	v, err := vector.New(2, in)
	require.NoError(t, err)

	in[0] = 99
	out := v.Values()
	out[1] = 77

	require.Equal(t, []int{1, 2}, v.Values())
}

// TestAllRestartableAndStoppable checks that All can be ranged repeatedly and
// honours an early break.
func TestAllRestartableAndStoppable(t *testing.T) {
	v, err := vector.Of(4, 5, 6)
	require.NoError(t, err)

	sum := func() int {
		s := 0
		for x := range v.All() {
			s += x
		}
		return s
	}
	require.Equal(t, 15, sum())
	require.Equal(t, 15, sum())

	var first []int
	for x := range v.All() {
		first = append(first, x)
		break
	}
	require.Equal(t, []int{4}, first)
}

// TestString checks the space-terminated single-line rendering.
func TestString(t *testing.T) {
	v, err := vector.New(3, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "1 2 0 \n", v.String())

	f, err := vector.New(2, []float64{1.5, 2})
	require.NoError(t, err)
	require.Equal(t, "1.5 2 \n", f.String())
}

// TestConcurrentReads exercises readers from several goroutines; run with -race.
func TestConcurrentReads(t *testing.T) {
	v, err := vector.Of(1, 2, 3, 4, 5, 6, 7, 8)
	require.NoError(t, err)

	got := make([]int, v.Len())
	errs := make([]error, v.Len())
	var wg sync.WaitGroup
	for g := 0; g < v.Len(); g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			got[g], errs[g] = v.At(g)
			_ = v.String()
		}(g)
	}
	wg.Wait()

	for g := range got {
		require.NoError(t, errs[g])
		require.Equal(t, g+1, got[g])
	}
}
