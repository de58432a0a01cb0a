package curve

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestPower2U8(t *testing.T) {
	tests := []struct {
		x, want uint8
	}{
		{0, 0},
		{1, 0},
		{15, 0},
		{16, 1},
		{128, 64},
		{200, 157},
		{255, 255},
	}

	for _, tt := range tests {
		if got := Power2U8(tt.x); got != tt.want {
			t.Errorf("Power2U8(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPower3U8(t *testing.T) {
	tests := []struct {
		x, want uint8
	}{
		{0, 0},
		{1, 0},
		{64, 4},
		{128, 32},
		{200, 123},
		{255, 255},
	}

	for _, tt := range tests {
		if got := Power3U8(tt.x); got != tt.want {
			t.Errorf("Power3U8(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPower16(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint16) uint16
		x    uint16
		want uint16
	}{
		{"Power2U16", Power2U16, 0, 0},
		{"Power2U16", Power2U16, 255, 0},
		{"Power2U16", Power2U16, 256, 1},
		{"Power2U16", Power2U16, 32768, 16384},
		{"Power2U16", Power2U16, 65535, 65535},
		{"Power3U16", Power3U16, 0, 0},
		{"Power3U16", Power3U16, 1, 0},
		{"Power3U16", Power3U16, 32768, 8192},
		{"Power3U16", Power3U16, 65535, 65535},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.x); got != tt.want {
			t.Errorf("%s(%d) = %d, want %d", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestPower32(t *testing.T) {
	tests := []struct {
		name string
		fn   func(uint32) uint32
		x    uint32
		want uint32
	}{
		{"Power2U32", Power2U32, 0, 0},
		{"Power2U32", Power2U32, 1, 0},
		{"Power2U32", Power2U32, 1 << 31, 1 << 30},
		{"Power2U32", Power2U32, 0xFFFFFFFF, 0xFFFFFFFF},
		{"Power3U32", Power3U32, 0, 0},
		{"Power3U32", Power3U32, 1, 0},
		{"Power3U32", Power3U32, 1 << 31, 1 << 29},
		{"Power3U32", Power3U32, 0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.x); got != tt.want {
			t.Errorf("%s(%d) = %d, want %d", tt.name, tt.x, got, tt.want)
		}
	}
}

// transfers8 lists every 8-bit transfer function, including both root
// strategies.
var transfers8 = []struct {
	name string
	fn   func(uint8) uint8
}{
	{"LinearU8", LinearU8},
	{"Power2U8", Power2U8},
	{"Power3U8", Power3U8},
	{"Root2U8", Root2U8},
	{"Root2U8BitSearch", Root2U8BitSearch},
	{"Root2U8Newton", Root2U8Newton},
}

var transfers16 = []struct {
	name string
	fn   func(uint16) uint16
}{
	{"LinearU16", LinearU16},
	{"Power2U16", Power2U16},
	{"Power3U16", Power3U16},
	{"Root2U16", Root2U16},
	{"Root2U16BitSearch", Root2U16BitSearch},
	{"Root2U16Newton", Root2U16Newton},
}

var transfers32 = []struct {
	name string
	fn   func(uint32) uint32
}{
	{"LinearU32", LinearU32},
	{"Power2U32", Power2U32},
	{"Power3U32", Power3U32},
	{"Root2U32", Root2U32},
	{"Root2U32BitSearch", Root2U32BitSearch},
	{"Root2U32Newton", Root2U32Newton},
}

func TestTransferEndpoints(t *testing.T) {
	for _, tt := range transfers8 {
		if got := tt.fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", tt.name, got)
		}
		if got := tt.fn(0xFF); got != 0xFF {
			t.Errorf("%s(255) = %d, want 255", tt.name, got)
		}
	}
	for _, tt := range transfers16 {
		if got := tt.fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", tt.name, got)
		}
		if got := tt.fn(0xFFFF); got != 0xFFFF {
			t.Errorf("%s(65535) = %d, want 65535", tt.name, got)
		}
	}
	for _, tt := range transfers32 {
		if got := tt.fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", tt.name, got)
		}
		if got := tt.fn(0xFFFFFFFF); got != 0xFFFFFFFF {
			t.Errorf("%s(max) = %d, want max", tt.name, got)
		}
	}
}

// TestTransferMonotonic checks a <= b implies F(a) <= F(b), exhaustively for
// 8 and 16 bits.
func TestTransferMonotonic(t *testing.T) {
	for _, tt := range transfers8 {
		prev := tt.fn(0)
		for x := 1; x <= 0xFF; x++ {
			got := tt.fn(uint8(x))
			if got < prev {
				t.Errorf("%s(%d) = %d < %s(%d) = %d", tt.name, x, got, tt.name, x-1, prev)
				break
			}
			prev = got
		}
	}
	for _, tt := range transfers16 {
		prev := tt.fn(0)
		for x := 1; x <= 0xFFFF; x++ {
			got := tt.fn(uint16(x))
			if got < prev {
				t.Errorf("%s(%d) = %d < %s(%d) = %d", tt.name, x, got, tt.name, x-1, prev)
				break
			}
			prev = got
		}
	}
}

// TestTransferMonotonic32 checks monotonicity over sorted random samples.
func TestTransferMonotonic32(t *testing.T) {
	r := rand.New(rand.NewPCG(32, 32))
	xs := make([]uint32, 0, 20002)
	xs = append(xs, 0, 0xFFFFFFFF)
	for range 20000 {
		xs = append(xs, r.Uint32())
	}
	slices.Sort(xs)

	for _, tt := range transfers32 {
		prev := tt.fn(xs[0])
		for _, x := range xs[1:] {
			got := tt.fn(x)
			if got < prev {
				t.Errorf("%s(%d) = %d decreased from %d", tt.name, x, got, prev)
				break
			}
			prev = got
		}
	}
}

func BenchmarkPower2U16(b *testing.B) {
	b.ReportAllocs()
	var sink uint16
	for b.Loop() {
		sink += Power2U16(sink + 12345)
	}
	_ = sink
}

func BenchmarkPower3U16(b *testing.B) {
	b.ReportAllocs()
	var sink uint16
	for b.Loop() {
		sink += Power3U16(sink + 12345)
	}
	_ = sink
}
