// SPDX-License-Identifier: MIT

// Package field: domain types (element constraint, region).
package field

import "fmt"

// Integer lists the signed and unsigned integer kinds accepted as elements.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float lists the floating-point kinds accepted as elements.
type Float interface {
	~float32 | ~float64
}

// Scalar is the element constraint of Field.
// Every Scalar converts to and from float64, which is all the gradient needs:
// differences and magnitudes are taken in float64, so T never divides.
type Scalar interface {
	Integer | Float
}

// Region is an inclusive, axis-aligned rectangle in field coordinates.
// Both ends are part of the region: {0,2,0,2} covers a 3×3 block.
type Region struct {
	RowStart, RowEnd int // inclusive row bounds
	ColStart, ColEnd int // inclusive column bounds
}

// NewRegion packs inclusive row and column bounds into a Region.
func NewRegion(rowStart, rowEnd, colStart, colEnd int) Region {
	return Region{RowStart: rowStart, RowEnd: rowEnd, ColStart: colStart, ColEnd: colEnd}
}

// FullRegion returns the region covering every cell of f.
// For an empty field the result is inverted and fails Validate.
func FullRegion[T Scalar](f *Field[T]) Region {
	return Region{RowStart: 0, RowEnd: f.r - 1, ColStart: 0, ColEnd: f.c - 1}
}

// Validate reports whether the region lies inside a rows×cols grid and is
// not inverted. It returns a wrapped ErrInvalidRegion otherwise.
// Complexity: O(1).
func (g Region) Validate(rows, cols int) error {
	if g.RowStart < 0 || g.RowEnd >= rows || g.ColStart < 0 || g.ColEnd >= cols ||
		g.RowStart > g.RowEnd || g.ColStart > g.ColEnd {
		return fmt.Errorf("%v in %dx%d: %w", g, rows, cols, ErrInvalidRegion)
	}

	return nil
}

// Cells returns the number of cells covered by a valid region.
func (g Region) Cells() int {
	return (g.RowEnd - g.RowStart + 1) * (g.ColEnd - g.ColStart + 1)
}

// String renders the region as "[r0,r1]x[c0,c1]".
func (g Region) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", g.RowStart, g.RowEnd, g.ColStart, g.ColEnd)
}
