// Package heatmap renders a field.Field as a grayscale raster.
//
// Each cell becomes a scale×scale block whose intensity is the cell value
// normalized over the field's [min, max]: min is black, max is white. A flat
// field renders black. Cell (i, j) maps to pixel block x=j, y=i, so the
// image reads like Field.Display.
//
// The raster is built at one pixel per cell and upscaled with
// golang.org/x/image/draw nearest-neighbour sampling, which keeps cell
// borders sharp.
package heatmap
