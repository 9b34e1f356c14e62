package driver

import (
	"fmt"

	"github.com/katalvlaran/fieldgrid/field"
)

// Seed dimensions and row-major values of the initial float32 field.
const (
	SeedRows = 3
	SeedCols = 3
)

var seedValues = [SeedRows * SeedCols]float32{
	10.0, 8.0, 5.0,
	12.0, 9.0, 6.0,
	15.0, 11.0, 7.0,
}

// Kind selects the field operation a Step performs.
type Kind int

const (
	// KindGradient computes the mean gradient over Step.Region.
	KindGradient Kind = iota
	// KindResize resizes the field to Step.Rows×Step.Cols.
	KindResize
)

// Step is one named operation of a script.
type Step struct {
	Name   string
	Kind   Kind
	Region field.Region // KindGradient
	Rows   int          // KindResize
	Cols   int          // KindResize
}

// GradientStep returns a step computing the gradient over g.
func GradientStep(g field.Region) Step {
	return Step{Name: "gradient " + g.String(), Kind: KindGradient, Region: g}
}

// ResizeStep returns a step resizing the field to rows×cols.
func ResizeStep(rows, cols int) Step {
	return Step{Name: fmt.Sprintf("resize %dx%d", rows, cols), Kind: KindResize, Rows: rows, Cols: cols}
}

// DefaultScript is the reference sequence: full-grid gradient, grow to 4×4,
// shrink to 2×2.
func DefaultScript() []Step {
	return []Step{
		GradientStep(field.NewRegion(0, 2, 0, 2)),
		ResizeStep(4, 4),
		ResizeStep(2, 2),
	}
}
