// SPDX-License-Identifier: MIT

package field

// Resize replaces the storage with a fresh newRows×newCols buffer.
//
// Implementation:
//   - Stage 1: validate: released → ErrReleased; newRows<=0 || newCols<=0 →
//     ErrInvalidDimensions; rows*cols over the cap → ErrTooLarge. Any error
//     leaves the field untouched (shape, storage and every value).
//   - Stage 2: allocate the new buffer (zero-filled by make).
//   - Stage 3: copy the overlap [0,min(r,newRows)) × [0,min(c,newCols)) row by row.
//   - Stage 4: drop the old buffer and publish the new shape.
//
// Behavior highlights:
//   - Grown cells read as T's zero value; cells outside the new shape are discarded.
//   - Old and new buffers coexist only during Stage 3.
//   - Resizing to the current shape still reallocates (same contents).
//
// Complexity:
//   - Time O(newRows*newCols), Space O(newRows*newCols) extra during the copy.
func (f *Field[T]) Resize(newRows, newCols int) error {
	if f.released {
		return fieldErrorf(ctxResize, newRows, newCols, ErrReleased)
	}
	if newRows <= 0 || newCols <= 0 {
		return fieldErrorf(ctxResize, newRows, newCols, ErrInvalidDimensions)
	}
	if err := f.checkCells(newRows, newCols); err != nil {
		return fieldErrorf(ctxResize, newRows, newCols, err)
	}

	buf := make([]T, newRows*newCols)

	keepRows := min(f.r, newRows)
	keepCols := min(f.c, newCols)
	var i int
	for i = 0; i < keepRows; i++ {
		copy(buf[i*newCols:i*newCols+keepCols], f.data[i*f.c:i*f.c+keepCols])
	}

	oldRows, oldCols := f.r, f.c
	f.data = buf
	f.r, f.c = newRows, newCols
	f.logger().Debug("field: resized",
		"from", [2]int{oldRows, oldCols},
		"to", [2]int{newRows, newCols},
		"kept", [2]int{keepRows, keepCols})

	return nil
}
