package curve

// Option configures a curve during creation.
//
// Example:
//
//	// Full-strength quadratic limited to the upper three quarters.
//	c := curve.New[uint8](curve.Power2,
//	    curve.WithSaturation(curve.MaxSaturation),
//	    curve.WithLimits(uint8(64), uint8(255)))
type Option func(*options)

// options holds optional configuration for curve creation.
type options struct {
	saturation uint8

	// limits are kept as int64 so one Option type serves every width and
	// signedness; New converts them to the curve's domain.
	hasLimits    bool
	lower, upper int64
}

// defaultOptions returns the default curve options.
func defaultOptions() options {
	return options{
		saturation: DefaultSaturation,
	}
}

// applyOptions returns the defaults with opts applied in order.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSaturation sets the initial saturation. 0 disables the curve (linear
// passthrough), MaxSaturation applies it fully.
func WithSaturation(s uint8) Option {
	return func(o *options) {
		o.saturation = s
	}
}

// WithLimits sets the initial output limits. The values must be of the
// curve's domain type; an inverted range is swapped as by SetLimit.
//
// Example:
//
//	c := curve.New[uint16](curve.Root2, curve.WithLimits(uint16(1000), uint16(60000)))
func WithLimits[T Unsigned | Signed](lower, upper T) Option {
	return func(o *options) {
		o.hasLimits = true
		o.lower = int64(lower)
		o.upper = int64(upper)
	}
}
