// Package driver runs a fixed script of field operations and narrates it.
//
// The narration is the only console output of the program; the field itself
// never prints. The default configuration reproduces the reference Spanish
// transcript byte for byte.
package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/message"

	"github.com/katalvlaran/fieldgrid/field"
	"github.com/katalvlaran/fieldgrid/heatmap"
)

// elementType names the element type in the narration.
const elementType = "FLOAT"

// Runner executes scripts against a locally owned float32 field.
type Runner struct {
	cfg  Config
	out  io.Writer
	p    *message.Printer
	log  *slog.Logger
	werr error // first narration write error
}

// New returns a Runner narrating to out. A nil logger uses the field package logger.
func New(cfg Config, out io.Writer, logger *slog.Logger) (*Runner, error) {
	p, err := newPrinter(cfg.Lang)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = field.Logger()
	}

	return &Runner{cfg: cfg, out: out, p: p, log: logger}, nil
}

// Run seeds the field, executes script in order, releases the field and
// closes the session. The release notification is always printed before the
// closing line, also when the run fails.
func (r *Runner) Run(script []Step) error {
	err := r.session(script)
	r.say(msgClosed)
	if err != nil {
		return err
	}

	return r.werr
}

// session owns the field for the whole run; the deferred Release covers every exit.
func (r *Runner) session(script []Step) error {
	r.say(msgTitle)
	r.blank()
	r.say(msgInit, elementType)
	r.say(msgCreate, elementType, SeedRows, SeedCols)

	f := field.New[float32](SeedRows, SeedCols,
		field.WithReleaseHook(func() { r.say(msgReleased) }),
		field.WithLogger(r.log))
	defer func() { _ = f.Release() }()

	r.say(msgSeed)
	for k, v := range seedValues {
		if !f.SetValue(k/SeedCols, k%SeedCols, v) {
			r.log.Warn("driver: seed value dropped", "row", k/SeedCols, "col", k%SeedCols)
		}
	}
	r.show(f, 0)

	for k, st := range script {
		r.log.Debug("driver: step", "index", k+1, "name", st.Name)
		if err := r.step(f, st); err != nil {
			return fmt.Errorf("driver: step %d (%s): %w", k+1, st.Name, err)
		}
		if r.cfg.ShowSteps {
			r.show(f, k+1)
		}
	}

	if r.cfg.HeatmapPath != "" {
		if err := r.writeHeatmap(f); err != nil {
			return err
		}
	}

	r.blank()
	r.say(msgOptExit)

	return nil
}

// step narrates and applies one operation. Invalid regions and refused
// resizes are narrated, not returned.
func (r *Runner) step(f *field.Field[float32], st Step) error {
	r.blank()
	switch st.Kind {
	case KindGradient:
		g := st.Region
		r.say(msgOptGradient)
		r.say(msgAskRow, g.RowStart)
		r.say(msgAskCols, g.ColStart, g.ColEnd)

		v, err := f.Gradient(g)
		r.blank()
		r.say(msgComputing, g.String())
		if err != nil {
			r.log.Info("driver: gradient skipped", "err", err)
			r.say(msgGradientInvalid, g.String())
			return nil
		}
		r.say(msgGradient, strconv.FormatFloat(float64(v), 'f', 5, 32))

	case KindResize:
		if st.Rows < f.Rows() || st.Cols < f.Cols() {
			r.say(msgOptShrink)
		} else {
			r.say(msgOptResize)
		}
		r.say(msgResizing, st.Rows, st.Cols)
		if err := f.Resize(st.Rows, st.Cols); err != nil {
			r.log.Info("driver: resize skipped", "err", err)
			r.say(msgResizeRefused, st.Rows, st.Cols)
			return nil
		}
		r.say(msgCopied)

	default:
		return fmt.Errorf("unknown step kind %d", st.Kind)
	}

	return nil
}

// show prints the grid header and the field's Display rendering.
func (r *Runner) show(f *field.Field[float32], step int) {
	r.say(msgGridHeader, step)
	if r.werr == nil {
		r.werr = f.Display(r.out)
	}
}

func (r *Runner) writeHeatmap(f *field.Field[float32]) error {
	out, err := os.Create(r.cfg.HeatmapPath)
	if err != nil {
		return fmt.Errorf("driver: heatmap: %w", err)
	}
	if err = heatmap.WritePNG(out, f, r.cfg.HeatmapScale); err != nil {
		_ = out.Close()
		return fmt.Errorf("driver: heatmap: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("driver: heatmap: %w", err)
	}
	r.blank()
	r.say(msgHeatmap, r.cfg.HeatmapPath)

	return nil
}

// say prints one localized line. Output stops at the first write error.
func (r *Runner) say(key string, args ...any) {
	if r.werr != nil {
		return
	}
	if _, err := r.p.Fprintf(r.out, key, args...); err != nil {
		r.werr = err
		return
	}
	r.blank()
}

func (r *Runner) blank() {
	if r.werr != nil {
		return
	}
	_, r.werr = io.WriteString(r.out, "\n")
}
