package curve

// Power curves approximate max * (x/max)^n. The product is formed in a
// widened intermediate and scaled back with a shift by the width instead of
// a division by max; the bias terms make the shifted result reach max
// exactly at x = max.

// LinearU8 returns x unchanged.
func LinearU8(x uint8) uint8 { return x }

// LinearU16 returns x unchanged.
func LinearU16(x uint16) uint16 { return x }

// LinearU32 returns x unchanged.
func LinearU32(x uint32) uint32 { return x }

// Power2U8 approximates x² / 255.
//
// Formula: (x*x + x) >> 8
//
// The +x term is x*(x+1), which equals 255*256 at x = 255, so the top of the
// range maps to 255 exactly instead of 254.
func Power2U8(x uint8) uint8 {
	w := uint16(x)
	return uint8((w*w + w) >> 8)
}

// Power2U16 approximates x² / 65535 with (x*x + x) >> 16.
func Power2U16(x uint16) uint16 {
	w := uint32(x)
	return uint16((w*w + w) >> 16)
}

// Power2U32 approximates x² / (2³²-1) with (x*x + x) >> 32.
func Power2U32(x uint32) uint32 {
	w := uint64(x)
	return uint32((w*w + w) >> 32)
}

// Power3U8 approximates x³ / 255².
//
// Formula: (x*x*(x+3)) >> 16
//
// The +3 bias lifts 255*255*258 just above 255 << 16.
func Power3U8(x uint8) uint8 {
	w := uint32(x)
	return uint8((w * w * (w + 3)) >> 16)
}

// Power3U16 approximates x³ / 65535².
//
// The cube does not fit in 32 bits, so the square is shifted down first:
//
//	p = (x*x) >> 16
//	(p*x + p + x + 1) >> 16
//
// The correction p + x + 1 compensates the truncated square: at x = 65535 the
// sum is exactly 65535 << 16, and since every term is non-decreasing in x the
// result is monotonic.
func Power3U16(x uint16) uint16 {
	w := uint32(x)
	p := (w * w) >> 16
	return uint16((p*w + p + w + 1) >> 16)
}

// Power3U32 is Power3U16 at twice the width.
func Power3U32(x uint32) uint32 {
	w := uint64(x)
	p := (w * w) >> 32
	return uint32((p*w + p + w + 1) >> 32)
}
