package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizePassword canonicalizes a password for comparison: NFKC plus
// removal of all whitespace. Guards against formatting mismatches only,
// it is not a hashing primitive.
func NormalizePassword(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKC.String(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizePhone canonicalizes a Lebanese phone number. All non-digit
// characters are stripped and a leading country prefix "961" is dropped.
// Returns "" when fewer than 8 digits remain, which signals invalid input.
func NormalizePhone(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	local := digits.String()
	local = strings.TrimPrefix(local, "961")
	if len(local) < 8 {
		return ""
	}
	return "+961" + local
}

// Truncate caps s at max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// NormalizeCategory maps a raw category value to one of the two canonical
// menu categories. Anything that is not exactly "sweets" falls back to
// "daily-platters"; missing values default rather than fail.
func NormalizeCategory(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == "sweets" {
		return "sweets"
	}
	return "daily-platters"
}
