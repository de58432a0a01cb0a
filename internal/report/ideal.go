package report

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/curve"
	"github.com/gogpu/curve/internal/profile"
)

// Ideal returns the real-valued response that ev approximates at in: the
// shape function on the normalized input, blended by saturation and scaled
// back to the domain. Limits are not applied.
func Ideal(ev profile.Evaluator, in int64) float32 {
	_, hi := ev.Domain()
	if hi == 0 {
		return 0
	}

	sign := float32(1)
	if in < 0 {
		sign, in = -1, -in
	}
	x := min(float32(in)/float32(hi), 1)

	y := shape(ev.Kind(), x)
	if ev.Chained() {
		y = shape(ev.Kind(), y)
	}

	s := float32(ev.Saturation()) / float32(curve.MaxSaturation)
	return sign * (x + s*(y-x)) * float32(hi)
}

func shape(k curve.Kind, x float32) float32 {
	switch k {
	case curve.Power2:
		return x * x
	case curve.Power3:
		return x * x * x
	case curve.Root2:
		return math32.Sqrt(x)
	default:
		return x
	}
}
