// SPDX-License-Identifier: MIT

// Package field - region gradient.
//
// The gradient of a cell is the mean absolute difference between its value and
// the values of its in-bounds 4-connected neighbors (N, E, S, W). Corner cells
// have 2 neighbors, edge cells 3, interior cells 4. Neighbors are looked up in
// the whole field, so a cell on the border of a region still sees cells outside it.
//
// The region gradient is the mean of the per-cell gradients over the region.
// All accumulation happens in float64; only the final mean is converted to T
// (truncation toward zero for integer T).

package field

import "math"

// neighborOffsets lists the 4-connected (row, col) steps: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Gradient returns the mean local gradient over region g.
//
// Errors:
//   - ErrInvalidRegion (wrapped) when g is inverted or leaves the field,
//     including any region on an empty or released field.
//
// Complexity: O(g.Cells()), no allocations.
func (f *Field[T]) Gradient(g Region) (T, error) {
	mean, err := f.gradient(g)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(mean), nil
}

// GradientAverage is Gradient over the inclusive bounds
// [rowStart,rowEnd]×[colStart,colEnd] that returns T's zero value for an
// invalid region. Use Gradient to tell an invalid region from a flat one.
func (f *Field[T]) GradientAverage(rowStart, rowEnd, colStart, colEnd int) T {
	v, _ := f.Gradient(NewRegion(rowStart, rowEnd, colStart, colEnd))

	return v
}

// GradientFloat is Gradient without the final conversion to T.
func (f *Field[T]) GradientFloat(g Region) (float64, error) {
	return f.gradient(g)
}

// gradient validates g and accumulates the per-cell means in float64.
func (f *Field[T]) gradient(g Region) (float64, error) {
	if err := g.Validate(f.r, f.c); err != nil {
		return 0, fieldErrorf(ctxGrad, g.RowStart, g.ColStart, err)
	}

	var total float64
	var points int
	var i, j int
	for i = g.RowStart; i <= g.RowEnd; i++ {
		for j = g.ColStart; j <= g.ColEnd; j++ {
			if d, ok := f.cellGradient(i, j); ok {
				total += d
				points++
			}
		}
	}
	// A 1×1 field has no neighbors at all.
	if points == 0 {
		return 0, nil
	}

	return total / float64(points), nil
}

// cellGradient returns the mean absolute difference between (i,j) and its
// in-bounds neighbors, and false when the cell has none.
func (f *Field[T]) cellGradient(i, j int) (float64, bool) {
	center := float64(f.data[i*f.c+j])
	var sum float64
	var n int
	for _, d := range neighborOffsets {
		ni, nj := i+d[0], j+d[1]
		if ni < 0 || ni >= f.r || nj < 0 || nj >= f.c {
			continue
		}
		sum += math.Abs(float64(f.data[ni*f.c+nj]) - center)
		n++
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}
