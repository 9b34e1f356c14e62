// SPDX-License-Identifier: MIT

package field

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtCellSep  = " | "
	_fmtRowClose = "\n"
)

// Display writes the field row by row: each row opens with "| " and every
// cell is printed with exactly one decimal digit followed by " | ".
//
//	| 10.0 | 8.0 | 5.0 |
//
// (each line keeps its trailing space). An empty field writes nothing.
func (f *Field[T]) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	f.writeTo(bw)

	return bw.Flush()
}

// String returns the Display rendering.
func (f *Field[T]) String() string {
	var b strings.Builder
	f.writeTo(&b)

	return b.String()
}

// writeTo renders every row into w; the writers used here buffer errors.
func (f *Field[T]) writeTo(w io.StringWriter) {
	var i, j, base int
	for i = 0; i < f.r; i++ {
		_, _ = w.WriteString(_fmtRowOpen)
		base = i * f.c
		for j = 0; j < f.c; j++ {
			_, _ = w.WriteString(strconv.FormatFloat(float64(f.data[base+j]), 'f', 1, 64))
			_, _ = w.WriteString(_fmtCellSep)
		}
		_, _ = w.WriteString(_fmtRowClose)
	}
}
