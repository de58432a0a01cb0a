package profile

import (
	"fmt"

	"github.com/gogpu/curve"
)

// Evaluator is a curve of any width seen through int64.
type Evaluator interface {
	// Name returns the profile name of the curve.
	Name() string

	// Kind returns the transfer function family.
	Kind() curve.Kind

	// Get evaluates the curve. in must lie within Domain.
	Get(in int64) int64

	// Domain returns the natural input range of the curve.
	Domain() (lo, hi int64)

	// Saturation returns the curve strength.
	Saturation() uint8

	// Chained reports whether the transfer function is applied twice.
	Chained() bool

	// String describes the curve.
	String() string
}

// Build constructs the curve described by the entry.
func (e Entry) Build() (Evaluator, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("curve %q: %w", e.Name, err)
	}

	opts := []curve.Option{}
	if e.Saturation != nil {
		opts = append(opts, curve.WithSaturation(*e.Saturation))
	}

	base := evaluator{name: e.Name, kind: e.Kind, chained: e.Chained}
	base.lo, base.hi = e.domain()

	switch e.Bits {
	case 8:
		u := newUnsigned[uint8](e, opts)
		if e.Signed {
			s := curve.NewS8(u, limitOpt[int8](e)...)
			return signedEval[int8, uint8]{base, s}, nil
		}
		return unsignedEval[uint8]{base, u}, nil
	case 16:
		u := newUnsigned[uint16](e, opts)
		if e.Signed {
			s := curve.NewS16(u, limitOpt[int16](e)...)
			return signedEval[int16, uint16]{base, s}, nil
		}
		return unsignedEval[uint16]{base, u}, nil
	default:
		u := newUnsigned[uint32](e, opts)
		if e.Signed {
			s := curve.NewS32(u, limitOpt[int32](e)...)
			return signedEval[int32, uint32]{base, s}, nil
		}
		return unsignedEval[uint32]{base, u}, nil
	}
}

// BuildAll builds every curve in the file, in order.
func (f *File) BuildAll() ([]Evaluator, error) {
	evs := make([]Evaluator, 0, len(f.Curves))
	for _, e := range f.Curves {
		ev, err := e.Build()
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}

// newUnsigned builds the unsigned curve. Limits belong to the unsigned curve
// only when the entry is not signed.
func newUnsigned[U curve.Unsigned](e Entry, opts []curve.Option) *curve.Curve[U] {
	if !e.Signed {
		opts = append(opts, limitOpt[U](e)...)
	}
	if e.Chained {
		return curve.NewChained[U](e.Kind, opts...)
	}
	return curve.New[U](e.Kind, opts...)
}

// limitOpt returns a WithLimits option for the entry's limits, filling a
// missing bound with the domain edge.
func limitOpt[T curve.Unsigned | curve.Signed](e Entry) []curve.Option {
	if e.Lower == nil && e.Upper == nil {
		return nil
	}
	lo, hi := e.domain()
	if e.Lower != nil {
		lo = *e.Lower
	}
	if e.Upper != nil {
		hi = *e.Upper
	}
	return []curve.Option{curve.WithLimits(T(lo), T(hi))}
}

type evaluator struct {
	name    string
	kind    curve.Kind
	chained bool
	lo, hi  int64
}

func (e evaluator) Name() string           { return e.name }
func (e evaluator) Kind() curve.Kind       { return e.kind }
func (e evaluator) Chained() bool          { return e.chained }
func (e evaluator) Domain() (lo, hi int64) { return e.lo, e.hi }

type unsignedEval[U curve.Unsigned] struct {
	evaluator
	c *curve.Curve[U]
}

func (u unsignedEval[U]) Get(in int64) int64 { return int64(u.c.Get(U(in))) }
func (u unsignedEval[U]) String() string     { return u.c.String() }
func (u unsignedEval[U]) Saturation() uint8  { return u.c.Saturation() }

type signedEval[S curve.Signed, U curve.Unsigned] struct {
	evaluator
	c *curve.SignedCurve[S, U]
}

func (s signedEval[S, U]) Get(in int64) int64 { return int64(s.c.Get(S(in))) }
func (s signedEval[S, U]) String() string     { return s.c.String() }
func (s signedEval[S, U]) Saturation() uint8  { return s.c.Saturation() }
