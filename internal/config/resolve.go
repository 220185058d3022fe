package config

import (
	"math"
	"strings"
	"unicode"
)

// ResolveNonNegativeInt parses the leading base-10 integer of raw and returns it
// when it is non-negative. Leading white space and a single sign are accepted and
// anything after the digits is ignored, so "15xyz" resolves to 15. Empty input,
// input without digits, negative values and values that overflow int all
// resolve to def.
func ResolveNonNegativeInt(raw string, def int) int {
	n, _ := resolveOverride(raw, def)
	return n
}

// resolveOverride is ResolveNonNegativeInt that also reports whether raw was
// accepted in place of def.
func resolveOverride(raw string, def int) (int, bool) {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 0 {
		return def, false
	}
	return n, true
}

// isBlank reports whether raw holds nothing but leading white space.
func isBlank(raw string) bool {
	return strings.TrimLeftFunc(raw, isLeadingSpace) == ""
}

// parseLeadingInt reports ok=false when raw has no digit prefix or the prefix
// does not fit in an int.
func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, isLeadingSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}

func isLeadingSpace(r rune) bool {
	// U+0085 is not white space to JavaScript's parseInt; U+FEFF is.
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
