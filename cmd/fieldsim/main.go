// Command fieldsim runs the scripted 2D field demonstration: a 3×3 float
// field, a full-grid gradient, a resize to 4×4 and a resize to 2×2.
//
// Usage:
//
//	fieldsim [-lang es|en] [-log-level warn] [-show-steps] [-heatmap out.png] [-heatmap-scale 32]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/fieldgrid/field"
	"github.com/katalvlaran/fieldgrid/internal/driver"
)

func main() {
	cfg := driver.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	field.SetLogger(logger)

	r, err := driver.New(*cfg, os.Stdout, logger)
	if err != nil {
		logger.Error("fieldsim: setup failed", "err", err)
		os.Exit(2)
	}
	if err := r.Run(driver.DefaultScript()); err != nil {
		logger.Error("fieldsim: run failed", "err", err)
		os.Exit(1)
	}
}
