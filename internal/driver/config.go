package driver

import (
	"flag"
	"fmt"
	"log/slog"
)

// Config holds the command-line parameters of the scripted run.
type Config struct {
	Lang         string // narration language: "es" or "en"
	LogLevel     string // slog level name for diagnostics on stderr
	HeatmapPath  string // PNG written after the script; empty disables it
	HeatmapScale int    // pixels per cell edge in the heatmap
	ShowSteps    bool   // display the grid after every step
}

// NewConfig returns a Config that reproduces the reference transcript.
func NewConfig() *Config {
	return &Config{Lang: "es", LogLevel: "warn", HeatmapScale: 32}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Lang, "lang", c.Lang, "narration language (es, en)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "diagnostic log level (debug, info, warn, error)")
	fs.StringVar(&c.HeatmapPath, "heatmap", c.HeatmapPath, "write a PNG heatmap of the final grid to this path")
	fs.IntVar(&c.HeatmapScale, "heatmap-scale", c.HeatmapScale, "heatmap pixels per cell")
	fs.BoolVar(&c.ShowSteps, "show-steps", c.ShowSteps, "display the grid after each step")
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("driver: log level %q: %w", c.LogLevel, err)
	}

	return l, nil
}
