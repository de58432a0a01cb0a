package curve

import "fmt"

// Config is the tunable state of a curve.
type Config[T Unsigned | Signed] struct {
	// Saturation blends the transfer function with the input:
	// 0 is linear passthrough, MaxSaturation is the full curve.
	Saturation uint8

	// Lower and Upper bound every output. Lower <= Upper.
	Lower, Upper T
}

// Curve is a response curve over an unsigned domain: a transfer function
// followed by a saturation blend and a clamp.
//
// The transfer function is fixed at construction. Saturation and limits may
// change between calls to Get. Curve is not safe for concurrent mutation.
type Curve[T Unsigned] struct {
	transfer Transfer[T]
	kind     Kind
	chained  bool
	custom   bool
	cfg      Config[T]
}

// New creates a curve of kind k over the domain T.
//
// Example:
//
//	c := curve.New[uint8](curve.Power2)
//	c := curve.New[uint16](curve.Root2, curve.WithSaturation(200))
//
// New panics if k is not a defined Kind.
func New[T Unsigned](k Kind, opts ...Option) *Curve[T] {
	fn, err := TransferFor[T](k)
	if err != nil {
		panic(err)
	}
	return newCurve(fn, k, false, false, opts)
}

// NewFunc creates a curve around a custom transfer function. fn should keep
// the endpoint guarantees of the built-in functions (0 -> 0, max -> max) and
// be non-decreasing; the curve does not check.
func NewFunc[T Unsigned](fn Transfer[T], opts ...Option) *Curve[T] {
	if fn == nil {
		panic("curve: nil transfer function")
	}
	return newCurve(fn, Linear, false, true, opts)
}

func newCurve[T Unsigned](fn Transfer[T], k Kind, chained, custom bool, opts []Option) *Curve[T] {
	o := applyOptions(opts)

	c := &Curve[T]{
		transfer: fn,
		kind:     k,
		chained:  chained,
		custom:   custom,
		cfg: Config[T]{
			Saturation: o.saturation,
			Lower:      0,
			Upper:      maxOf[T](),
		},
	}
	if o.hasLimits {
		c.SetLimit(T(o.lower), T(o.upper))
	}

	Logger().Debug("curve created",
		"curve", c.String(),
		"saturation", c.cfg.Saturation,
		"lower", uint64(c.cfg.Lower),
		"upper", uint64(c.cfg.Upper))
	return c
}

// Get maps input through the transfer function, blends the result with input
// by the current saturation and clamps it to the current limits.
func (c *Curve[T]) Get(input T) T {
	v := Saturate(c.transfer(input), input, c.cfg.Saturation)
	return Clamp(v, c.cfg.Lower, c.cfg.Upper)
}

// Process applies only the transfer function.
func (c *Curve[T]) Process(input T) T {
	return c.transfer(input)
}

// Transfer returns the curve's transfer function.
func (c *Curve[T]) Transfer() Transfer[T] {
	return c.transfer
}

// SetSaturation sets the curve strength: 0 is linear passthrough,
// MaxSaturation applies the full transfer function.
func (c *Curve[T]) SetSaturation(s uint8) {
	c.cfg.Saturation = s
}

// Saturation returns the current saturation.
func (c *Curve[T]) Saturation() uint8 {
	return c.cfg.Saturation
}

// SetLimit bounds subsequent outputs to [lower, upper]. An inverted range
// is swapped.
func (c *Curve[T]) SetLimit(lower, upper T) {
	if lower > upper {
		Logger().Debug("inverted limits swapped",
			"curve", c.String(),
			"lower", uint64(upper),
			"upper", uint64(lower))
		lower, upper = upper, lower
	}
	c.cfg.Lower = lower
	c.cfg.Upper = upper
}

// Limits returns the current output bounds.
func (c *Curve[T]) Limits() (lower, upper T) {
	return c.cfg.Lower, c.cfg.Upper
}

// Config returns a copy of the curve's configuration.
func (c *Curve[T]) Config() Config[T] {
	return c.cfg
}

// Kind returns the transfer function family. Curves created with NewFunc
// report Linear; see Custom.
func (c *Curve[T]) Kind() Kind {
	return c.kind
}

// Chained reports whether the transfer function is applied twice.
func (c *Curve[T]) Chained() bool {
	return c.chained
}

// Custom reports whether the curve was created with NewFunc.
func (c *Curve[T]) Custom() bool {
	return c.custom
}

// String describes the curve, e.g. "power2/u16" or "chained root2/u8".
func (c *Curve[T]) String() string {
	name := c.kind.String()
	if c.custom {
		name = "custom"
	}
	if c.chained {
		name = "chained " + name
	}
	return fmt.Sprintf("%s/u%d", name, widthOf[T]())
}

// widthOf returns the bit width of T.
func widthOf[T Unsigned]() int {
	switch uint64(maxOf[T]()) {
	case 0xFF:
		return 8
	case 0xFFFF:
		return 16
	default:
		return 32
	}
}
