// Package render produces the textual dump shared by the fixed-size containers.
//
// Format:
//
//	every element's %v text form followed by one space, then "\n" per row.
//
// A vector is a single row. A matrix emits rows 0..R-1 in order. The
// functions only read from their input.
package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

const (
	_fmtSep     = " "
	_fmtRowDone = "\n"
)

// Linear is anything that yields its elements in index order.
type Linear[T any] interface {
	All() iter.Seq[T]
}

// Grid is anything addressable as R rows of lazily produced elements.
type Grid[T any] interface {
	Rows() int
	RowSeq(i int) iter.Seq[T]
}

// Line writes one row: each element followed by a single space, then a newline.
// Complexity: O(n).
func Line[T any](w io.Writer, seq iter.Seq[T]) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, seq)

	return bw.Flush()
}

// Vector writes v as one line.
func Vector[T any](w io.Writer, v Linear[T]) error {
	return Line(w, v.All())
}

// Matrix writes m one line per row, rows in ascending order.
// Complexity: O(R*C).
func Matrix[T any](w io.Writer, m Grid[T]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		writeLine(bw, m.RowSeq(i))
	}

	return bw.Flush()
}

// writeLine buffers one row; bufio keeps the first write error for Flush.
func writeLine[T any](bw *bufio.Writer, seq iter.Seq[T]) {
	for x := range seq {
		fmt.Fprint(bw, x)
		bw.WriteString(_fmtSep)
	}
	bw.WriteString(_fmtRowDone)
}
