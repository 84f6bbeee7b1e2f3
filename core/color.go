package core

import "errors"

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid hex color")

// RGBColor combines the three 8-bit components of an RGB color into a
// single value type. It should be used throughout the firmware whenever
// a color is passed around. It carries no identity beyond its contents.
type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Hex renders the color as six uppercase hex digits (RRGGBB).
func (c RGBColor) Hex() string {
	buf := []byte{
		hexDigits[c.Red>>4], hexDigits[c.Red&0xF],
		hexDigits[c.Green>>4], hexDigits[c.Green&0xF],
		hexDigits[c.Blue>>4], hexDigits[c.Blue&0xF],
	}
	return string(buf)
}

// ParseRGBColor parses a six-digit hex color string (RRGGBB, case
// insensitive, no leading '#').
func ParseRGBColor(s string) (RGBColor, error) {
	if len(s) != 6 {
		return RGBColor{}, ErrInvalidColor
	}
	var nib [6]uint8
	for i := 0; i < 6; i++ {
		v, ok := hexNibble(s[i])
		if !ok {
			return RGBColor{}, ErrInvalidColor
		}
		nib[i] = v
	}
	return RGBColor{
		Red:   nib[0]<<4 | nib[1],
		Green: nib[2]<<4 | nib[3],
		Blue:  nib[4]<<4 | nib[5],
	}, nil
}
