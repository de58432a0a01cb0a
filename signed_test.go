package curve

import "testing"

func TestSignedZero(t *testing.T) {
	for _, k := range []Kind{Linear, Power2, Power3, Root2} {
		s := NewS8(New[uint8](k))
		if got := s.Get(0); got != 0 {
			t.Errorf("signed %v: Get(0) = %d, want 0", k, got)
		}
	}
}

func TestSignedScenario64(t *testing.T) {
	tests := []struct {
		saturation uint8
		pos, neg   int8
	}{
		{MaxSaturation, 32, -32},
		{DefaultSaturation, 49, -48},
		{0, 64, -64},
	}

	for _, tt := range tests {
		s := NewS8(New[uint8](Power2, WithSaturation(tt.saturation)))
		pos, neg := s.Get(64), s.Get(-64)
		if pos != tt.pos || neg != tt.neg {
			t.Errorf("saturation %d: Get(64), Get(-64) = %d, %d; want %d, %d",
				tt.saturation, pos, neg, tt.pos, tt.neg)
		}
		if d := int(pos) + int(neg); d < -1 || d > 1 {
			t.Errorf("saturation %d: Get(64) + Get(-64) = %d, want within ±1", tt.saturation, d)
		}
	}
}

// TestSignedOddSymmetry checks Get(-v) == -Get(v) within the truncation of
// the halving. Power2 curves stay within ±1; steeper curves may step by 2.
func TestSignedOddSymmetry(t *testing.T) {
	saturations := []uint8{0, 64, DefaultSaturation, 200, MaxSaturation}

	tests := []struct {
		kind    Kind
		chained bool
		bound   int
	}{
		{Linear, false, 0},
		{Power2, false, 1},
		{Power3, false, 2},
		{Root2, false, 2},
		{Power2, true, 2},
	}

	for _, tt := range tests {
		for _, sat := range saturations {
			var u *Curve[uint8]
			if tt.chained {
				u = NewChained[uint8](tt.kind, WithSaturation(sat))
			} else {
				u = New[uint8](tt.kind, WithSaturation(sat))
			}
			s := NewS8(u)
			for v := 1; v <= 127; v++ {
				d := int(s.Get(int8(v))) + int(s.Get(int8(-v)))
				if d < -tt.bound || d > tt.bound {
					t.Fatalf("%v saturation %d: Get(%d) + Get(%d) = %d, want within ±%d",
						u, sat, v, -v, d, tt.bound)
				}
			}
		}
	}

	for _, k := range []Kind{Power2, Power3} {
		for _, sat := range saturations {
			s := NewS16(New[uint16](k, WithSaturation(sat)))
			bound := 1
			if k == Power3 {
				bound = 2
			}
			for v := 1; v <= 32767; v++ {
				d := int(s.Get(int16(v))) + int(s.Get(int16(-v)))
				if d < -bound || d > bound {
					t.Fatalf("%v/u16 saturation %d: Get(%d) + Get(%d) = %d, want within ±%d",
						k, sat, v, -v, d, bound)
				}
			}
		}
	}
}

func TestSignedExtremes(t *testing.T) {
	s8 := NewS8(New[uint8](Power2, WithSaturation(MaxSaturation)))
	if got := s8.Get(127); got != 127 {
		t.Errorf("S8 Get(127) = %d, want 127", got)
	}
	// The type minimum folds to the unsigned maximum instead of wrapping.
	if got := s8.Get(-128); got != -127 {
		t.Errorf("S8 Get(-128) = %d, want -127", got)
	}

	s16 := NewS16(New[uint16](Root2, WithSaturation(MaxSaturation)))
	if got := s16.Get(32767); got != 32767 {
		t.Errorf("S16 Get(32767) = %d, want 32767", got)
	}
	if got := s16.Get(-32768); got != -32767 {
		t.Errorf("S16 Get(-32768) = %d, want -32767", got)
	}

	s32 := NewS32(New[uint32](Power3, WithSaturation(MaxSaturation)))
	if got := s32.Get(2147483647); got != 2147483647 {
		t.Errorf("S32 Get(max) = %d, want max", got)
	}
	if got := s32.Get(-2147483648); got != -2147483647 {
		t.Errorf("S32 Get(min) = %d, want -max", got)
	}
}

func TestSignedLimits(t *testing.T) {
	s := NewS8(New[uint8](Linear))
	if lower, upper := s.Limits(); lower != -128 || upper != 127 {
		t.Errorf("default Limits() = [%d, %d], want [-128, 127]", lower, upper)
	}

	s.SetLimit(50, -40)
	if lower, upper := s.Limits(); lower != -40 || upper != 50 {
		t.Errorf("inverted SetLimit: Limits() = [%d, %d], want [-40, 50]", lower, upper)
	}
	if got := s.Get(100); got != 50 {
		t.Errorf("Get(100) = %d, want 50", got)
	}
	if got := s.Get(-100); got != -40 {
		t.Errorf("Get(-100) = %d, want -40", got)
	}
	if got := s.Get(10); got != 10 {
		t.Errorf("Get(10) = %d, want 10", got)
	}

	// Zero stays inside the configured range.
	s.SetLimit(5, 50)
	if got := s.Get(0); got != 5 {
		t.Errorf("Get(0) with limits [5, 50] = %d, want 5", got)
	}
}

func TestSignedOptions(t *testing.T) {
	u := New[uint16](Power2)
	s := NewS16(u, WithSaturation(MaxSaturation), WithLimits(int16(-1000), int16(1000)))
	if got := u.Saturation(); got != MaxSaturation {
		t.Errorf("inner Saturation() = %d, want 255", got)
	}

	cfg := s.Config()
	if cfg.Saturation != MaxSaturation || cfg.Lower != -1000 || cfg.Upper != 1000 {
		t.Errorf("Config() = %+v, want {255 -1000 1000}", cfg)
	}
	if got := s.Get(32767); got != 1000 {
		t.Errorf("Get(32767) = %d, want 1000", got)
	}

	s.SetSaturation(0)
	if got := s.Saturation(); got != 0 {
		t.Errorf("Saturation() = %d, want 0", got)
	}
	if s.Unsigned() != u {
		t.Error("Unsigned() did not return the wrapped curve")
	}
	if got := s.String(); got != "signed power2/u16" {
		t.Errorf("String() = %q, want \"signed power2/u16\"", got)
	}
}

func TestSignedKeepsInnerSaturationWithoutOptions(t *testing.T) {
	u := New[uint8](Power3, WithSaturation(42))
	NewS8(u)
	if got := u.Saturation(); got != 42 {
		t.Errorf("inner Saturation() = %d, want 42", got)
	}
}

func BenchmarkSignedGet(b *testing.B) {
	s := NewS16(New[uint16](Power2))
	b.ReportAllocs()
	var sink int16
	for b.Loop() {
		sink += s.Get(sink ^ -12345)
	}
	_ = sink
}
