// SPDX-License-Identifier: MIT

package field_test

import (
	"testing"

	"github.com/katalvlaran/fieldgrid/field"
	"github.com/stretchr/testify/require"
)

// seedGradient is the mean over the 3×3 seed of the per-cell 4-neighbor
// mean absolute differences: (2+2+2 + 8/3+9/4+5/3 + 7/2+10/3+5/2) / 9.
const seedGradient = 263.0 / 108.0

func TestGradient_Seed(t *testing.T) {
	f := seed(t)

	g, err := f.Gradient(field.FullRegion(f))
	require.NoError(t, err)
	require.InDelta(t, seedGradient, float64(g), 1e-6)
	require.Equal(t, g, f.GradientAverage(0, 2, 0, 2))

	exact, err := f.GradientFloat(field.NewRegion(0, 2, 0, 2))
	require.NoError(t, err)
	require.InDelta(t, seedGradient, exact, 1e-12)
}

func TestGradient_SingleCells(t *testing.T) {
	f := seed(t)
	cases := []struct {
		name string
		i, j int
		want float64
	}{
		{"CornerTopLeft", 0, 0, 2},      // |12-10|, |8-10|
		{"EdgeTop", 0, 1, 2},            // 1+2+3 over 3
		{"Interior", 1, 1, 9.0 / 4.0},   // 1+2+3+3 over 4
		{"EdgeLeft", 1, 0, 8.0 / 3.0},   // 2+3+3 over 3
		{"CornerBottom", 2, 2, 5.0 / 2}, // 1+4 over 2
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.GradientFloat(field.NewRegion(tc.i, tc.i, tc.j, tc.j))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestGradient_SeesOutsideRegion verifies neighbors come from the whole field.
func TestGradient_SeesOutsideRegion(t *testing.T) {
	f := field.New[float64](3, 3)
	require.True(t, f.SetValue(0, 1, 8))

	// The center cell differs only from (0,1), which lies outside the region.
	got, err := f.GradientFloat(field.NewRegion(1, 1, 1, 1))
	require.NoError(t, err)
	require.InDelta(t, 2.0, got, 1e-12)
}

func TestGradient_Uniform(t *testing.T) {
	f := field.New[float32](4, 5)
	f.Do(func(i, j int, _ float32) bool {
		require.True(t, f.SetValue(i, j, 3.25))
		return true
	})
	for _, g := range []field.Region{
		field.FullRegion(f),
		field.NewRegion(1, 2, 1, 3),
		field.NewRegion(3, 3, 4, 4),
	} {
		v, err := f.Gradient(g)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestGradient_InvalidRegion(t *testing.T) {
	f := seed(t)
	cases := []struct {
		name string
		g    field.Region
	}{
		{"NegativeRow", field.NewRegion(-1, 2, 0, 2)},
		{"RowEndPast", field.NewRegion(0, 3, 0, 2)},
		{"NegativeCol", field.NewRegion(0, 2, -1, 2)},
		{"ColEndPast", field.NewRegion(0, 2, 0, 3)},
		{"InvertedRows", field.NewRegion(2, 1, 0, 2)},
		{"InvertedCols", field.NewRegion(0, 2, 2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := f.Gradient(tc.g)
			require.ErrorIs(t, err, field.ErrInvalidRegion)
			require.Zero(t, v)
			require.Zero(t, f.GradientAverage(tc.g.RowStart, tc.g.RowEnd, tc.g.ColStart, tc.g.ColEnd))
		})
	}
}

func TestGradient_EmptyAndSingleCell(t *testing.T) {
	empty := field.New[float64](0, 0)
	_, err := empty.Gradient(field.FullRegion(empty))
	require.ErrorIs(t, err, field.ErrInvalidRegion)

	// A 1×1 field is a valid region with no neighbors: zero, no error.
	one := field.New[float64](1, 1)
	require.True(t, one.SetValue(0, 0, 7))
	v, err := one.Gradient(field.FullRegion(one))
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestGradient_IntegerTruncates checks narrowing to an integer element type.
func TestGradient_IntegerTruncates(t *testing.T) {
	f := field.New[int](3, 3)
	vals := []int{10, 8, 5, 12, 9, 6, 15, 11, 7}
	for k, v := range vals {
		require.True(t, f.SetValue(k/3, k%3, v))
	}
	require.Equal(t, 2, f.GradientAverage(0, 2, 0, 2))

	exact, err := f.GradientFloat(field.FullRegion(f))
	require.NoError(t, err)
	require.InDelta(t, seedGradient, exact, 1e-12)
}

// TestGradient_UnsignedNoWrap ensures differences are taken in float64.
func TestGradient_UnsignedNoWrap(t *testing.T) {
	f := field.New[uint8](1, 2)
	require.True(t, f.SetValue(0, 0, 250))
	require.True(t, f.SetValue(0, 1, 10))
	require.Equal(t, uint8(240), f.GradientAverage(0, 0, 0, 1))
}
