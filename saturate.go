package curve

import "cmp"

// Unsigned is the set of unsigned domains a curve can operate on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Signed is the set of signed domains served by SignedCurve.
type Signed interface {
	~int8 | ~int16 | ~int32
}

const (
	// MaxSaturation applies the full transfer function.
	MaxSaturation uint8 = 255

	// DefaultSaturation is the saturation of a newly constructed curve,
	// roughly half strength.
	DefaultSaturation uint8 = 127
)

// Clamp bounds v to [lower, upper]. lower must not exceed upper.
func Clamp[T cmp.Ordered](v, lower, upper T) T {
	return min(max(v, lower), upper)
}

// Saturate blends processed with input according to saturation:
//
//	input + saturation*(processed-input)/255
//
// Saturation 0 returns input, MaxSaturation returns processed. The blend is
// computed in int64 so the difference may go negative for any width; the
// quotient truncates toward zero, which keeps the result between input and
// processed.
func Saturate[T Unsigned](processed, input T, saturation uint8) T {
	d := int64(processed) - int64(input)
	return T(int64(input) + int64(saturation)*d/int64(MaxSaturation))
}

// maxOf returns the largest value of T.
func maxOf[T Unsigned]() T {
	return ^T(0)
}
