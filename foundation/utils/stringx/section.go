// File: section.go
// Title: Index-Bounded String Sections
// Description: Implements extraction and deletion of string sections addressed
//              by inclusive index pairs. Out-of-range indices are clamped to the
//              string bounds; empty or inverted ranges are defined no-ops.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of GetStrSect and DeleteSubStrByIndex
// - 2026-10-18 v0.1.1: Exclusive bounds at the int limits no longer wrap

package stringx

// Idx returns a pointer to i for use as an optional section bound.
func Idx(i int) *int {
	return &i
}

// clampRange clamps the inclusive range [lo, hi] into [0, length-1].
// ok is false when nothing is left of the range after clamping.
func clampRange(length, lo, hi int) (int, int, bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > length-1 {
		hi = length - 1
	}
	if length <= 0 || lo > hi {
		return lo, hi, false
	}
	return lo, hi, true
}

// GetStrSect returns the section of input between indexSubMin and indexSubMax.
// A nil bound is unbounded in that direction: the section then starts at the
// first or ends at the last byte of input. When inclusive is false the bounds
// mark the bytes just outside the section and are themselves excluded.
//
// Bounds beyond the string are clamped. An empty input or a range that is
// empty after clamping yields "".
func GetStrSect(input string, indexSubMin, indexSubMax *int, inclusive bool) string {
	if len(input) == 0 {
		return ""
	}

	lo := 0
	if indexSubMin != nil {
		lo = *indexSubMin
	}
	hi := len(input) - 1
	if indexSubMax != nil {
		hi = *indexSubMax
	}

	// A bound already outside the string leaves nothing once shifted
	// inward; checking first keeps the shift from overflowing.
	if lo >= len(input) || hi < 0 {
		return ""
	}
	if !inclusive {
		lo++
		hi--
	}

	lo, hi, ok := clampRange(len(input), lo, hi)
	if !ok {
		return ""
	}
	return input[lo : hi+1]
}

// DeleteSubStrByIndex returns src with the inclusive range
// [indexDeleteStart, indexDeleteEnd] removed.
//
// src is returned unchanged when it is empty or when indexDeleteStart is not
// strictly below indexDeleteEnd. A single-byte range (start == end) is
// therefore never deleted. Indices past either end of src are clamped.
func DeleteSubStrByIndex(src string, indexDeleteStart, indexDeleteEnd int) string {
	if len(src) == 0 || indexDeleteStart >= indexDeleteEnd {
		return src
	}
	return removeRange(src, indexDeleteStart, indexDeleteEnd)
}

// removeRange removes the clamped inclusive range [start, end] from src.
func removeRange(src string, start, end int) string {
	start, end, ok := clampRange(len(src), start, end)
	if !ok {
		return src
	}
	return src[:start] + src[end+1:]
}
