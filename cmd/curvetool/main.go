// Command curvetool prints or plots response curves.
//
// Curves come either from a TOML profile or from flags describing a single
// curve:
//
//	curvetool -kind power2 -bits 8 -sat 255
//	curvetool -profile curves.toml -mode plot -o curves.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/gogpu/curve"
	"github.com/gogpu/curve/internal/plot"
	"github.com/gogpu/curve/internal/profile"
	"github.com/gogpu/curve/internal/report"
)

var errTerminal = errors.New("refusing to write PNG to a terminal, use -o")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("curvetool: %v", err)
	}
}

type config struct {
	profile string
	name    string
	kind    string
	bits    int
	sat     uint
	signed  bool
	chained bool
	mode    string
	steps   int
	output  string
	width   int
	height  int
	lang    string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("curvetool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.profile, "profile", "", "TOML profile `file`")
	fs.StringVar(&c.name, "curve", "", "only use the named profile curve")
	fs.StringVar(&c.kind, "kind", "power2", "transfer function: linear, power2, power3, root2")
	fs.IntVar(&c.bits, "bits", 8, "domain width: 8, 16 or 32")
	fs.UintVar(&c.sat, "sat", uint(curve.DefaultSaturation), "saturation 0-255")
	fs.BoolVar(&c.signed, "signed", false, "use the signed adapter")
	fs.BoolVar(&c.chained, "chained", false, "apply the transfer function twice")
	fs.StringVar(&c.mode, "mode", "table", "output mode: table or plot")
	fs.IntVar(&c.steps, "steps", report.DefaultSteps, "table sample intervals")
	fs.StringVar(&c.output, "o", "", "plot output `file` (default stdout)")
	fs.IntVar(&c.width, "width", plot.DefaultWidth, "plot width")
	fs.IntVar(&c.height, "height", plot.DefaultHeight, "plot height")
	fs.StringVar(&c.lang, "lang", "en", "number formatting language")
	fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if c.verbose {
		curve.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer curve.SetLogger(nil)
	}

	evs, err := evaluators(c)
	if err != nil {
		return err
	}

	switch c.mode {
	case "table":
		lang, err := language.Parse(c.lang)
		if err != nil {
			return fmt.Errorf("lang %q: %w", c.lang, err)
		}
		return report.Write(stdout, evs, report.Options{
			Steps: c.steps,
			Color: isTerminal(stdout),
			Lang:  lang,
		})
	case "plot":
		return writePlot(c, evs, stdout)
	default:
		return fmt.Errorf("unknown mode %q", c.mode)
	}
}

// evaluators builds the curves named by the profile, or the single curve
// described by flags when no profile is given.
func evaluators(c config) ([]profile.Evaluator, error) {
	if c.profile == "" {
		k, err := curve.ParseKind(c.kind)
		if err != nil {
			return nil, err
		}
		if c.sat > uint(curve.MaxSaturation) {
			return nil, fmt.Errorf("saturation %d out of range 0-255", c.sat)
		}
		sat := uint8(c.sat)
		ev, err := profile.Entry{
			Name:       k.String(),
			Kind:       k,
			Bits:       c.bits,
			Signed:     c.signed,
			Chained:    c.chained,
			Saturation: &sat,
		}.Build()
		if err != nil {
			return nil, err
		}
		return []profile.Evaluator{ev}, nil
	}

	f, err := profile.Load(c.profile)
	if err != nil {
		return nil, err
	}
	if c.name != "" {
		e, ok := f.Lookup(c.name)
		if !ok {
			return nil, fmt.Errorf("%s: no curve named %q", c.profile, c.name)
		}
		ev, err := e.Build()
		if err != nil {
			return nil, err
		}
		return []profile.Evaluator{ev}, nil
	}
	return f.BuildAll()
}

func writePlot(c config, evs []profile.Evaluator, stdout io.Writer) error {
	opts := plot.Options{Width: c.width, Height: c.height}
	if c.output == "" || c.output == "-" {
		if isTerminal(stdout) {
			return errTerminal
		}
		return plot.WritePNG(stdout, evs, opts)
	}

	f, err := os.Create(c.output)
	if err != nil {
		return err
	}
	if err := plot.WritePNG(f, evs, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	curve.Logger().Info("plot saved", "path", c.output, "width", c.width, "height", c.height)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
