// Package profile loads named response curves from TOML files.
//
// A profile file lists curves as an array of tables:
//
//	[[curve]]
//	name = "throttle"
//	kind = "power2"
//	bits = 8
//	saturation = 200
//
//	[[curve]]
//	name = "roll"
//	kind = "power3"
//	bits = 16
//	signed = true
//	lower = -30000
//	upper = 30000
//
// Each entry builds into an Evaluator, which hides the domain width behind
// int64 so callers can tabulate or plot curves of any width the same way.
package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/curve"
)

var (
	// ErrBits is returned for a width other than 8, 16 or 32.
	ErrBits = errors.New("profile: bits must be 8, 16 or 32")

	// ErrLimits is returned for limits outside the curve's domain.
	ErrLimits = errors.New("profile: limits outside domain")

	// ErrName is returned for a missing or duplicate curve name.
	ErrName = errors.New("profile: missing or duplicate name")

	// ErrUnknownKind is returned for an unrecognized kind.
	ErrUnknownKind = curve.ErrUnknownKind
)

// File is a decoded profile file.
type File struct {
	Curves []Entry `toml:"curve"`
}

// Entry describes one curve.
type Entry struct {
	Name       string     `toml:"name"`
	Kind       curve.Kind `toml:"kind"`
	Bits       int        `toml:"bits"`
	Signed     bool       `toml:"signed"`
	Chained    bool       `toml:"chained"`
	Saturation *uint8     `toml:"saturation"`
	Lower      *int64     `toml:"lower"`
	Upper      *int64     `toml:"upper"`
}

// Parse decodes and validates a profile.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("profile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads, decodes and validates the profile at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	curve.Logger().Debug("profile loaded", "path", path, "curves", len(f.Curves))
	return f, nil
}

// Validate checks every entry and returns all problems joined.
func (f *File) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(f.Curves))
	for i, e := range f.Curves {
		if e.Name == "" || seen[e.Name] {
			errs = append(errs, fmt.Errorf("curve %d %q: %w", i, e.Name, ErrName))
		}
		seen[e.Name] = true
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("curve %d %q: %w", i, e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the entry named name.
func (f *File) Lookup(name string) (Entry, bool) {
	for _, e := range f.Curves {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Validate checks the entry on its own.
func (e Entry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(e.Kind))
	}
	if e.Bits != 8 && e.Bits != 16 && e.Bits != 32 {
		return fmt.Errorf("%w: got %d", ErrBits, e.Bits)
	}

	lo, hi := e.domain()
	for _, v := range []*int64{e.Lower, e.Upper} {
		if v != nil && (*v < lo || *v > hi) {
			return fmt.Errorf("%w: %d not in [%d, %d]", ErrLimits, *v, lo, hi)
		}
	}
	return nil
}

// domain returns the natural range of the entry's domain type.
func (e Entry) domain() (lo, hi int64) {
	if e.Signed {
		hi = 1<<(e.Bits-1) - 1
		return -hi - 1, hi
	}
	return 0, 1<<e.Bits - 1
}
