package lumatone

import "testing"

func TestParseRGBColorAndHexStringRoundTrip(t *testing.T) {
	c, err := ParseRGBColor("1a2b3c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0x1a || c.G != 0x2b || c.B != 0x3c {
		t.Fatalf("got %+v", c)
	}
	if got := c.HexString(); got != "1a2b3c" {
		t.Fatalf("HexString() = %q, want %q", got, "1a2b3c")
	}
}

func TestParseRGBColorRejectsWrongLength(t *testing.T) {
	if _, err := ParseRGBColor("fff"); err == nil {
		t.Fatalf("expected error for a 3-digit color")
	}
}

func TestParseRGBColorRejectsNonHex(t *testing.T) {
	if _, err := ParseRGBColor("zzzzzz"); err == nil {
		t.Fatalf("expected error for non-hex digits")
	}
}

func TestNibblesAndRgbColorFromNibblesRoundTrip(t *testing.T) {
	c := RGBColor{R: 0xa5, G: 0x3c, B: 0xf0}
	got := rgbColorFromNibbles(c.Nibbles())
	if got != c {
		t.Fatalf("got %+v, want %+v", got, c)
	}
}

func TestRgbColorFromNibblesMasksStrayHighBits(t *testing.T) {
	// A corrupted high bit in any nibble byte must not leak into the
	// adjacent channel.
	n := [6]uint8{0xf0 | 0xa, 0xf0 | 0x5, 0, 0, 0, 0}
	got := rgbColorFromNibbles(n)
	if got.R != 0xa5 {
		t.Fatalf("R = 0x%x, want 0xa5", got.R)
	}
}
