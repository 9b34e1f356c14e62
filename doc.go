// Package fieldgrid is a small library for generic two-dimensional numeric
// fields: bounded cell writes, allocate-copy-release resizing and a local
// gradient statistic over rectangular regions.
//
// Under the hood, everything is organized under a few subpackages:
//
//	field/           — Field[T], Region, sentinel errors, options, logging
//	heatmap/         — grayscale PNG rendering of a field
//	internal/driver/ — the scripted, localized demonstration run
//	cmd/fieldsim/    — command-line entry point for the demonstration
//
// Quick ASCII example (4-connected neighbors of the center cell X):
//
//	    . N .
//	    W X E
//	    . S .
//
//	go get github.com/katalvlaran/fieldgrid/field
package fieldgrid
