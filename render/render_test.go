package render_test

import (
	"bytes"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedgrid/matrix"
	"github.com/katalvlaran/fixedgrid/render"
	"github.com/katalvlaran/fixedgrid/vector"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Line(&buf, slices.Values([]int{1, 2, 0})))
	require.Equal(t, "1 2 0 \n", buf.String())

	buf.Reset()
	require.NoError(t, render.Line(&buf, slices.Values([]float64{})))
	require.Equal(t, "\n", buf.String())
}

func TestVector_Golden(t *testing.T) {
	v, err := vector.New(3, []int{1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Vector[int](&buf, v))
	newGolden(t).Assert(t, "vector_partial", buf.Bytes())
}

func TestMatrix_Golden(t *testing.T) {
	cases := []struct {
		name string
		init [][]float64
	}{
		{"matrix_two_rows", [][]float64{{1, 1, 2}, {2, 2, 2}}},
		{"matrix_three_rows", [][]float64{{1, 1, 2}, {2, 2, 2}, {1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(3, 4, tc.init)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, render.Matrix[float64](&buf, m))
			newGolden(t).Assert(t, tc.name, buf.Bytes())
		})
	}
}

// fixedGrid is a minimal Grid used to check render depends only on the interface.
type fixedGrid [][]string

func (g fixedGrid) Rows() int                     { return len(g) }
func (g fixedGrid) RowSeq(i int) iter.Seq[string] { return slices.Values(g[i]) }

func TestMatrix_Interface(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Matrix[string](&buf, fixedGrid{{"a", "b"}, {"c"}}))
	require.Equal(t, "a b \nc \n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteErrorSurfaces(t *testing.T) {
	err := render.Line(failingWriter{}, slices.Values([]int{1}))
	require.ErrorIs(t, err, errWrite)

	m, err := matrix.Zero[int](2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, render.Matrix[int](failingWriter{}, m), errWrite)
}
