// File: trim.go
// Title: Repeated Prefix and Suffix Removal
// Description: Strips every leading or trailing repetition of a literal
//              substring, plus the integer check used by callers that treat
//              the remaining text as a number.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"
)

// RemoveSubStrFromStart removes substrToRemove from the start of src for as
// long as src starts with it. An empty substrToRemove leaves src unchanged.
//
//	RemoveSubStrFromStart("--flag", "-") // "flag"
func RemoveSubStrFromStart(src, substrToRemove string) string {
	if substrToRemove == "" {
		return src
	}
	for strings.HasPrefix(src, substrToRemove) {
		src = src[len(substrToRemove):]
	}
	return src
}

// RemoveSubStrFromEnd removes substrToRemove from the end of src for as long
// as src ends with it. An empty substrToRemove leaves src unchanged.
func RemoveSubStrFromEnd(src, substrToRemove string) string {
	if substrToRemove == "" {
		return src
	}
	for strings.HasSuffix(src, substrToRemove) {
		src = src[:len(src)-len(substrToRemove)]
	}
	return src
}

// IsNumeric reports whether value parses as a base-10 signed int.
// Whitespace, decimal points, exponents and digit separators are rejected,
// as are values outside the int range.
func IsNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}
