package core

import "testing"

func TestGammaTableEndpoints(t *testing.T) {
	if got := GammaLookup(0); got != 0 {
		t.Errorf("Expected level 0 to map to 0, got %d", got)
	}
	if got := GammaLookup(255); got != CompareMax {
		t.Errorf("Expected level 255 to map to %d, got %d", CompareMax, got)
	}
}

func TestGammaTableMonotonic(t *testing.T) {
	for i := 0; i < 255; i++ {
		lo := GammaLookup(uint8(i))
		hi := GammaLookup(uint8(i + 1))
		if lo > hi {
			t.Fatalf("Table not monotonic at %d: %d > %d", i, lo, hi)
		}
	}
}

// The reference data doubles every 16 entries from index 127 upward,
// tracking the exponential shape of perceived brightness.
func TestGammaTableDoubling(t *testing.T) {
	for k := 0; k < 8; k++ {
		level := uint8(127 + 16*k)
		want := uint16(256 << k)
		if got := GammaLookup(level); got != want {
			t.Errorf("Expected level %d to map to %d, got %d", level, want, got)
		}
	}
}

func TestGammaLookupSpotValues(t *testing.T) {
	// Hand-picked entries from the published reference table.
	cases := []struct {
		level uint8
		want  uint16
	}{
		{0, 0},
		{1, 1},
		{64, 17},
		{112, 134},
		{127, 256},
		{128, 267},
		{175, 2048},
		{191, 4096},
		{254, 62757},
		{255, 65535},
	}
	for _, c := range cases {
		if got := GammaLookup(c.level); got != c.want {
			t.Errorf("GammaLookup(%d): expected %d, got %d", c.level, c.want, got)
		}
	}
}
