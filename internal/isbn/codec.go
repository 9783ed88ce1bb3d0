package isbn

import "strings"

// Length is the number of digits in every identifier code.
const Length = 13

// Digits is a parsed identifier code, most significant digit first.
type Digits [Length]uint8

// Parse converts a 13-character decimal string into its digit sequence.
// No normalization is applied: hyphens and whitespace are rejected.
func Parse(s string) (Digits, error) {
	var d Digits
	if len(s) != Length {
		return d, malformed("code must be exactly %d digits, got %d characters", Length, len(s))
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return d, malformed("code contains non-digit %q at position %d", c, i+1)
		}
		d[i] = c - '0'
	}
	return d, nil
}

// String formats the digits back into their 13-character form.
func (d Digits) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, v := range d {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// Value returns the code read as a base-10 integer.
func (d Digits) Value() int64 {
	var n int64
	for _, v := range d {
		n = n*10 + int64(v)
	}
	return n
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi parses a string already known to be digits. Segments are at most 13
// digits so the result always fits.
func atoi(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n
}
