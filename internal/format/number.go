package format

import (
	"fmt"
	"strings"
)

// TruncateProduct shortens a long decimal rendering to its first and last
// keep characters with the number of elided characters in between. Inputs of
// at most 2*keep characters are returned unchanged.
func TruncateProduct(s string, keep int) string {
	if keep <= 0 || len(s) <= 2*keep {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits elided)", s[:keep], s[len(s)-keep:], len(s)-2*keep)
}

// GroupDigits inserts sep every three digits of the integer part of a decimal
// rendering such as "-1234567.891". The sign and fraction are preserved.
func GroupDigits(s string, sep byte) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 1)
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(sep)
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// CountDigits returns the number of decimal digits in a rendering,
// ignoring the sign and the decimal point.
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
