package strutils

import (
	"strings"
	"unicode"
)

// TrimWS removes leading and trailing whitespace, including the padding
// characters version resources are known to pack around string values.
func TrimWS(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == 0
	})
}

// Capitalize returns the string with only the first character uppercased.
// e.g. "hello world" → "Hello world"
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
