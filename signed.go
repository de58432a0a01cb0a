package curve

import "unsafe"

// SignedCurve serves a signed domain with an unsigned curve of the same
// width by odd-symmetric folding:
//
//	v > 0:  u = 2v+1, out =   unsigned.Get(u) / 2
//	v < 0:  u = -2v,  out = -(unsigned.Get(u) / 2)
//	v = 0:  out = 0
//
// The odd encoding keeps the positive half strictly above the zero crossing,
// the even encoding mirrors it, so Get(-v) == -Get(v) up to the truncation of
// the final halving. The signed limits are applied after unfolding.
type SignedCurve[S Signed, U Unsigned] struct {
	unsigned *Curve[U]
	lower    S
	upper    S
}

// NewS8 wraps an 8-bit curve for int8 readings.
//
// Example:
//
//	stick := curve.NewS8(curve.New[uint8](curve.Power2))
//	out := stick.Get(-64)
func NewS8(c *Curve[uint8], opts ...Option) *SignedCurve[int8, uint8] {
	return newSigned[int8](c, opts)
}

// NewS16 wraps a 16-bit curve for int16 readings.
func NewS16(c *Curve[uint16], opts ...Option) *SignedCurve[int16, uint16] {
	return newSigned[int16](c, opts)
}

// NewS32 wraps a 32-bit curve for int32 readings.
func NewS32(c *Curve[uint32], opts ...Option) *SignedCurve[int32, uint32] {
	return newSigned[int32](c, opts)
}

// newSigned builds the adapter. S and U must have the same width. Only
// WithLimits and WithSaturation are meaningful in opts; saturation is
// forwarded to the unsigned curve when given.
func newSigned[S Signed, U Unsigned](c *Curve[U], opts []Option) *SignedCurve[S, U] {
	if c == nil {
		panic("curve: nil unsigned curve")
	}

	sc := &SignedCurve[S, U]{
		unsigned: c,
		lower:    minSigned[S](),
		upper:    maxSigned[S](),
	}

	if len(opts) > 0 {
		o := options{saturation: c.Saturation()}
		for _, opt := range opts {
			if opt != nil {
				opt(&o)
			}
		}
		c.SetSaturation(o.saturation)
		if o.hasLimits {
			sc.SetLimit(S(o.lower), S(o.upper))
		}
	}
	return sc
}

// Get maps a signed reading through the folded unsigned curve.
func (sc *SignedCurve[S, U]) Get(input S) S {
	var out S
	switch {
	case input > 0:
		u := sc.fold(2*int64(input) + 1)
		out = S(sc.unsigned.Get(u) / 2)
	case input < 0:
		u := sc.fold(-2 * int64(input))
		out = -S(sc.unsigned.Get(u) / 2)
	}
	return Clamp(out, sc.lower, sc.upper)
}

// fold converts a non-negative folded value to U. The most negative input
// folds to max+1, which is bounded to max.
func (sc *SignedCurve[S, U]) fold(v int64) U {
	return U(min(v, int64(maxOf[U]())))
}

// SetSaturation sets the saturation of the wrapped unsigned curve.
func (sc *SignedCurve[S, U]) SetSaturation(s uint8) {
	sc.unsigned.SetSaturation(s)
}

// Saturation returns the saturation of the wrapped unsigned curve.
func (sc *SignedCurve[S, U]) Saturation() uint8 {
	return sc.unsigned.Saturation()
}

// SetLimit bounds subsequent outputs to [lower, upper]. An inverted range
// is swapped.
func (sc *SignedCurve[S, U]) SetLimit(lower, upper S) {
	if lower > upper {
		Logger().Debug("inverted limits swapped",
			"curve", "signed "+sc.unsigned.String(),
			"lower", int64(upper),
			"upper", int64(lower))
		lower, upper = upper, lower
	}
	sc.lower = lower
	sc.upper = upper
}

// Limits returns the current output bounds.
func (sc *SignedCurve[S, U]) Limits() (lower, upper S) {
	return sc.lower, sc.upper
}

// Config returns the adapter's configuration: the wrapped curve's
// saturation and the signed limits.
func (sc *SignedCurve[S, U]) Config() Config[S] {
	return Config[S]{
		Saturation: sc.unsigned.Saturation(),
		Lower:      sc.lower,
		Upper:      sc.upper,
	}
}

// Unsigned returns the wrapped unsigned curve.
func (sc *SignedCurve[S, U]) Unsigned() *Curve[U] {
	return sc.unsigned
}

// String describes the curve, e.g. "signed power2/u8".
func (sc *SignedCurve[S, U]) String() string {
	return "signed " + sc.unsigned.String()
}

// maxSigned returns the largest value of S.
func maxSigned[S Signed]() S {
	return S(^uint64(0) >> (65 - 8*unsafe.Sizeof(S(0))))
}

// minSigned returns the smallest value of S.
func minSigned[S Signed]() S {
	return -maxSigned[S]() - 1
}
