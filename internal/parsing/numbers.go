// Package parsing extracts numbers from free-form tag values.
package parsing

import (
	"regexp"
	"strconv"
)

var (
	// Optional leading whitespace, optional sign, then digits. Anything after
	// the digits is ignored.
	leadingIntPattern = regexp.MustCompile(`^[\t\n\v\f\r ]*([+-]?\d+)`)

	yearPattern = regexp.MustCompile(`\d{4}`)
)

// LeadingInt returns the integer at the start of text, or 0 when text does
// not start with one. Values outside the int range saturate.
//
// Examples: "7/12" → 7, " -3" → -3, "+4th" → 4, "track 2" → 0.
func LeadingInt(text string) int {
	m := leadingIntPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	// On overflow Atoi still returns the saturated value with the right sign.
	n, _ := strconv.Atoi(m[1])
	return n
}

// ByteInRange returns n as a byte when 0 <= n <= 255, and 0 otherwise.
func ByteInRange(n int) byte {
	if n < 0 || n > 255 {
		return 0
	}
	return byte(n)
}

// FirstYear returns the first run of four digits in text, or "".
//
// Examples: "1999-05-01" → "1999", "May 2003" → "2003", "99" → "".
func FirstYear(text string) string {
	return yearPattern.FindString(text)
}
