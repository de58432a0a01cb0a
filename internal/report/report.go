// Package report tabulates curve responses for terminal output.
//
// Each evaluator is sampled at evenly spaced inputs across its domain and
// printed next to the floating-point curve it approximates, so truncation
// drift in the fixed-point arithmetic is visible at a glance.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/chewxy/math32"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/curve"
	"github.com/gogpu/curve/internal/profile"
)

// DefaultSteps is the number of intervals sampled when Options.Steps is zero.
const DefaultSteps = 16

// ErrSteps is returned for a negative step count.
var ErrSteps = errors.New("report: steps must not be negative")

// Options controls how a report is rendered.
type Options struct {
	// Steps is the number of intervals between the first and last sample.
	Steps int

	// Color enables ANSI styling when the writer supports it.
	Color bool

	// Lang selects digit grouping. The zero tag formats like English.
	Lang language.Tag
}

// Row is one sampled point of a curve.
type Row struct {
	In    int64
	Out   int64
	Ideal float32
}

// Drift returns how far the fixed-point output lies from the rounded ideal.
func (r Row) Drift() int64 {
	return r.Out - int64(math32.Round(r.Ideal))
}

// Sample evaluates ev at steps+1 evenly spaced inputs. Signed curves are
// sampled symmetrically around zero so that zero is always a sample point
// for an even step count.
func Sample(ev profile.Evaluator, steps int) ([]Row, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrSteps, steps)
	}
	if steps == 0 {
		steps = DefaultSteps
	}

	lo, hi := ev.Domain()
	if lo < 0 {
		lo = -hi
	}

	rows := make([]Row, 0, steps+1)
	for i := 0; i <= steps; i++ {
		in := lo + (hi-lo)*int64(i)/int64(steps)
		rows = append(rows, Row{In: in, Out: ev.Get(in), Ideal: Ideal(ev, in)})
	}
	return rows, nil
}

// Write renders one table per evaluator to w.
func Write(w io.Writer, evs []profile.Evaluator, opts Options) error {
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	st := newStyles(r)

	lang := opts.Lang
	if lang == language.Und {
		lang = language.English
	}
	p := message.NewPrinter(lang)

	var b strings.Builder
	for i, ev := range evs {
		rows, err := Sample(ev, opts.Steps)
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.title.Render(fmt.Sprintf("%s (%s, saturation %d)", ev.Name(), ev, ev.Saturation())))
		b.WriteString("\n")
		b.WriteString(render(p, st, ev, rows))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	curve.Logger().Debug("report written", "curves", len(evs), "steps", opts.Steps)
	return nil
}

func render(p *message.Printer, st styles, ev profile.Evaluator, rows []Row) string {
	_, hi := ev.Domain()
	tolerance := hi / 100

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("input", "output", "ideal", "drift")

	for _, row := range rows {
		t.Row(
			p.Sprintf("%d", row.In),
			p.Sprintf("%d", row.Out),
			p.Sprintf("%.1f", row.Ideal),
			signed(p, row.Drift()),
		)
	}

	// Row 0 is the header; data rows start at 1.
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == 0:
			return st.header
		case col == 3:
			d := rows[row-1].Drift()
			if d < -tolerance || d > tolerance {
				return st.drift
			}
		}
		return st.cell
	}).String()
}

func signed(p *message.Printer, v int64) string {
	if v > 0 {
		return "+" + p.Sprintf("%d", v)
	}
	return p.Sprintf("%d", v)
}
