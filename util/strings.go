package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StripSpace removes every whitespace rune from s, not only the leading and
// trailing ones.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RuneLen returns the number of code points in s once whitespace is removed.
func RuneLen(s string) int {
	return utf8.RuneCountInString(StripSpace(s))
}
