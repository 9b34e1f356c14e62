package heatmap

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/fieldgrid/field"
)

// MaxPixels bounds the output image area.
const MaxPixels = 1 << 26

var (
	// ErrEmptyField is returned for a field without cells.
	ErrEmptyField = errors.New("heatmap: field has no cells")
	// ErrBadScale is returned when scale < 1 or the output would exceed MaxPixels.
	ErrBadScale = errors.New("heatmap: invalid scale")
)

// Render returns the heatmap of f with every cell drawn as a scale×scale block.
func Render[T field.Scalar](f *field.Field[T], scale int) (*image.Gray, error) {
	if f.IsEmpty() {
		return nil, ErrEmptyField
	}
	rows, cols := f.Shape()
	if scale < 1 || cols > MaxPixels/scale || rows > MaxPixels/scale ||
		cols*scale > MaxPixels/(rows*scale) {
		return nil, fmt.Errorf("heatmap: scale %d for %dx%d: %w", scale, rows, cols, ErrBadScale)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	f.Do(func(_, _ int, v T) bool {
		x := float64(v)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		return true
	})

	src := image.NewGray(image.Rect(0, 0, cols, rows))
	span := hi - lo
	f.Do(func(i, j int, v T) bool {
		if span > 0 {
			src.Pix[i*src.Stride+j] = uint8(math.Round((float64(v) - lo) / span * 255))
		}
		return true
	})
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, cols*scale, rows*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}

// WritePNG renders f and encodes the result as PNG into w.
func WritePNG[T field.Scalar](w io.Writer, f *field.Field[T], scale int) error {
	img, err := Render(f, scale)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
