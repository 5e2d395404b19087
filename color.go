package lumatone

import (
	"fmt"
	"strconv"
)

// RGBColor is a 24-bit color: three independent 8-bit channels. Its
// textual form is six lower-case hex digits with no prefix; its wire
// form is six 4-bit nibbles, high nibble before low nibble per channel.
type RGBColor struct {
	R, G, B uint8
}

// ParseRGBColor parses a 6-character lower- or upper-case hex string
// (no "#" prefix) such as "ff0000" into a color.
func ParseRGBColor(hex string) (RGBColor, error) {
	if len(hex) != 6 {
		return RGBColor{}, newErrf(KindMessagePayloadInvalid, "color %q is not 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBColor{}, wrapErr(KindMessagePayloadInvalid, fmt.Sprintf("color %q", hex), err)
	}
	return RGBColor{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// HexString renders c as six lower-case hex digits, zero-padded, no
// prefix -- the textual form used by preset files.
func (c RGBColor) HexString() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGBColor) String() string {
	return c.HexString()
}

// Nibbles returns the six wire nibbles: R-hi, R-lo, G-hi, G-lo, B-hi,
// B-lo, each in 0..=0xf.
func (c RGBColor) Nibbles() [6]uint8 {
	return [6]uint8{
		c.R >> 4, c.R & 0xf,
		c.G >> 4, c.G & 0xf,
		c.B >> 4, c.B & 0xf,
	}
}

// rgbColorFromNibbles reassembles a color from six wire nibbles, masking
// each to 4 bits so a corrupt high bit never panics.
func rgbColorFromNibbles(n [6]uint8) RGBColor {
	return RGBColor{
		R: (n[0]&0xf)<<4 | (n[1] & 0xf),
		G: (n[2]&0xf)<<4 | (n[3] & 0xf),
		B: (n[4]&0xf)<<4 | (n[5] & 0xf),
	}
}
