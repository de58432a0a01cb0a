package curve

import "github.com/gogpu/curve/internal/isqrt"

// Root curves are the inverse of Power2: they approximate sqrt(x * max).
// Scaling the input by max first keeps the root in the same W-bit range as
// the input; a plain sqrt(x) would top out at 2^(W/2).
//
// Every root function short-circuits 0, which has no leading one bit to
// seed Newton-Raphson from.

// newtonSteps is the fixed Newton-Raphson iteration count for radicands up
// to 32 bits.
const newtonSteps = 3

// newtonSteps64 is the iteration count for the 64-bit radicands of Root2U32.
const newtonSteps64 = 4

// RootStrategy identifies how Root2 computes its square root.
type RootStrategy uint8

const (
	// BitSearch builds the root bit by bit, W iterations.
	BitSearch RootStrategy = iota

	// Newton seeds from the leading-zero count and runs a fixed number of
	// Newton-Raphson steps.
	Newton
)

// String returns the strategy name.
func (s RootStrategy) String() string {
	switch s {
	case BitSearch:
		return "BitSearch"
	case Newton:
		return "Newton"
	default:
		return "Unknown"
	}
}

// DefaultRootStrategy reports the strategy Root2U8, Root2U16 and Root2U32 use
// in this build.
func DefaultRootStrategy() RootStrategy {
	if fastLeadingZeros {
		return Newton
	}
	return BitSearch
}

// Root2U8 approximates sqrt(x * 255) using the build's default strategy.
func Root2U8(x uint8) uint8 {
	if fastLeadingZeros {
		return Root2U8Newton(x)
	}
	return Root2U8BitSearch(x)
}

// Root2U16 approximates sqrt(x * 65535) using the build's default strategy.
func Root2U16(x uint16) uint16 {
	if fastLeadingZeros {
		return Root2U16Newton(x)
	}
	return Root2U16BitSearch(x)
}

// Root2U32 approximates sqrt(x * (2³²-1)) using the build's default strategy.
func Root2U32(x uint32) uint32 {
	if fastLeadingZeros {
		return Root2U32Newton(x)
	}
	return Root2U32BitSearch(x)
}

// Root2U8BitSearch is Root2U8 computed by bit search. The result is the
// exact floor of sqrt(x * 255).
func Root2U8BitSearch(x uint8) uint8 {
	if x == 0 {
		return 0
	}
	return uint8(isqrt.BitSearch32(uint32(x)*0xFF, 8))
}

// Root2U16BitSearch is Root2U16 computed by bit search.
func Root2U16BitSearch(x uint16) uint16 {
	if x == 0 {
		return 0
	}
	return uint16(isqrt.BitSearch32(uint32(x)*0xFFFF, 16))
}

// Root2U32BitSearch is Root2U32 computed by bit search over a 64-bit
// radicand.
func Root2U32BitSearch(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(isqrt.BitSearch64(uint64(x)*0xFFFFFFFF, 32))
}

// Root2U8Newton is Root2U8 computed by Newton-Raphson. It is within +1 of
// Root2U8BitSearch for every input and never exceeds 255.
func Root2U8Newton(x uint8) uint8 {
	if x == 0 {
		return 0
	}
	return uint8(min(isqrt.Newton32(uint32(x)*0xFF, newtonSteps), 0xFF))
}

// Root2U16Newton is Root2U16 computed by Newton-Raphson.
func Root2U16Newton(x uint16) uint16 {
	if x == 0 {
		return 0
	}
	return uint16(min(isqrt.Newton32(uint32(x)*0xFFFF, newtonSteps), 0xFFFF))
}

// Root2U32Newton is Root2U32 computed by Newton-Raphson.
func Root2U32Newton(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(min(isqrt.Newton64(uint64(x)*0xFFFFFFFF, newtonSteps64), 0xFFFFFFFF))
}
