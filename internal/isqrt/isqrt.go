// Package isqrt provides integer square roots for the root curves.
//
// Two strategies are implemented for each radicand width:
//
//   - BitSearch builds the root one bit at a time from the most significant
//     bit down, keeping a bit only if the square of the tentative root does
//     not exceed the radicand. It needs no hardware assist and always returns
//     the exact floor square root.
//   - Newton seeds a guess from the bit length of the radicand and refines it
//     with a fixed number of Newton-Raphson steps. The bit length comes from
//     math/bits, which the compiler lowers to a single leading-zero-count
//     instruction on most architectures.
//
// Neither function loops on a data-dependent condition: the iteration counts
// are fixed by the caller.
package isqrt

import "math/bits"

// BitSearch32 returns floor(sqrt(s)) restricted to the lowest n bits of the
// result. n must be in [1, 16]; the result fits in n bits, so n = 16 covers
// every uint32 radicand.
func BitSearch32(s uint32, n uint) uint32 {
	var res uint32
	for add := uint32(1) << (n - 1); add != 0; add >>= 1 {
		t := res | add
		if t*t <= s {
			res = t
		}
	}
	return res
}

// BitSearch64 is BitSearch32 for 64-bit radicands. n must be in [1, 32].
func BitSearch64(s uint64, n uint) uint64 {
	var res uint64
	for add := uint64(1) << (n - 1); add != 0; add >>= 1 {
		t := res | add
		if t*t <= s {
			res = t
		}
	}
	return res
}

// Newton32 approximates sqrt(s) with iters Newton-Raphson steps starting from
// 1 << (bitlen(s)/2). The seed is within a factor of sqrt(2) of the root, so
// three steps land within +1 of the floor root for any uint32 radicand.
//
// Newton32(0) is 0.
func Newton32(s uint32, iters int) uint32 {
	if s == 0 {
		return 0
	}

	g := uint32(1) << (bits.Len32(s) / 2)
	for range iters {
		g = (g + s/g) >> 1
	}
	return g
}

// Newton64 is Newton32 for 64-bit radicands. A 64-bit radicand needs four
// steps to reach the same +1 bound.
//
// Newton64(0) is 0.
func Newton64(s uint64, iters int) uint64 {
	if s == 0 {
		return 0
	}

	g := uint64(1) << (bits.Len64(s) / 2)
	for range iters {
		g = (g + s/g) >> 1
	}
	return g
}
