// Package field provides Field, a generic, resizable two-dimensional grid of
// scalar values with bounded mutation and a region gradient statistic.
//
// The field package provides:
//
//   - Field[T]: row-major storage with the explicit index formula i*cols + j.
//   - Bounded writes (SetValue / Set) that never panic on bad coordinates.
//   - Resize: allocate-copy-release; the overlapping top-left block survives,
//     grown cells are zero, shrunk cells are dropped.
//   - Gradient / GradientAverage: mean over a rectangular region of each
//     cell's mean absolute difference to its 4-connected neighbors.
//   - Display: fixed one-decimal textual rendering.
//
// Empty fields (rows==0 or cols==0) are legal values: they hold no storage,
// reject every write and report a zero gradient.
//
// Quick example:
//
//	f := field.New[float32](3, 3)
//	f.SetValue(1, 1, 9)
//	g, err := f.Gradient(field.FullRegion(f))
package field
