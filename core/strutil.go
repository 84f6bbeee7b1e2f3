package core

import "errors"

const hexDigits = "0123456789ABCDEF"

// ErrInvalidNumber is returned when a console argument is not a decimal
// number in range.
var ErrInvalidNumber = errors.New("invalid number")

// utoa converts an unsigned integer to a string without using the fmt
// package. This is a lightweight alternative for embedded systems.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// hexNibble decodes a single hex digit, accepting both cases.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseUint8 parses a decimal 0..255 value.
func parseUint8(s string) (uint8, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, ErrInvalidNumber
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidNumber
		}
		n = n*10 + int(c-'0')
	}
	if n > 255 {
		return 0, ErrInvalidNumber
	}
	return uint8(n), nil
}
