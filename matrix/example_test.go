package matrix_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fixedgrid/core"
	"github.com/katalvlaran/fixedgrid/matrix"
)

// ExampleNew builds a 3×4 matrix from two rows; the third row stays zero.
func ExampleNew() {
	m, _ := matrix.New(3, 4, [][]float64{{1, 1, 2}, {2, 2, 2}})
	for _, line := range strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n") {
		fmt.Println(strings.TrimSpace(line))
	}

	// Output:
	// 1 1 2 0
	// 2 2 2 0
	// 0 0 0 0
}

// ExampleNew_shapeMismatch shows a recoverable failure on too many rows.
func ExampleNew_shapeMismatch() {
	_, err := matrix.New(3, 4, [][]float64{{1, 1, 2}, {2, 2, 2}, {1}, {-1}})
	if errors.Is(err, core.ErrShapeMismatch) {
		fmt.Println("cannot initialize matrix")
	}

	// Output:
	// cannot initialize matrix
}
