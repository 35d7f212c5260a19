// File: section_test.go
// Title: Unit Tests for Index-Bounded String Sections
// Description: Tests section extraction and deletion including clamping of
//              out-of-range bounds and the empty-range no-op cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import (
	"math"
	"testing"
)

func TestGetStrSect(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		min       *int
		max       *int
		inclusive bool
		expected  string
	}{
		{"empty input", "", nil, nil, true, ""},
		{"empty input with bounds", "", Idx(0), Idx(3), false, ""},
		{"unbounded inclusive", "hello", nil, nil, true, "hello"},
		{"unbounded exclusive", "hello", nil, nil, false, "ell"},
		{"inclusive range", "hello", Idx(1), Idx(3), true, "ell"},
		{"exclusive range", "hello", Idx(1), Idx(3), false, "l"},
		{"min only", "hello", Idx(2), nil, true, "llo"},
		{"max only", "hello", nil, Idx(1), true, "he"},
		{"negative min clamped", "hello", Idx(-10), Idx(1), true, "he"},
		{"max past end clamped", "hello", Idx(3), Idx(99), true, "lo"},
		{"both out of range", "hello", Idx(-5), Idx(50), true, "hello"},
		{"single byte", "hello", Idx(4), Idx(4), true, "o"},
		{"inverted range", "hello", Idx(3), Idx(1), true, ""},
		{"adjacent exclusive bounds", "hello", Idx(1), Idx(2), false, ""},
		{"min past end", "hello", Idx(7), nil, true, ""},
		{"max before start", "hello", nil, Idx(-1), true, ""},
		{"exclusive sentinels", "abc", Idx(-1), Idx(3), false, "abc"},
		{"single char exclusive", "x", nil, nil, false, ""},
		{"max int min exclusive", "abc", Idx(math.MaxInt), nil, false, ""},
		{"min int max exclusive", "abc", nil, Idx(math.MinInt), false, ""},
		{"max int min inclusive", "abc", Idx(math.MaxInt), nil, true, ""},
		{"min int min exclusive", "abc", Idx(math.MinInt), nil, false, "ab"},
		{"max int max exclusive", "abc", nil, Idx(math.MaxInt), false, "bc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetStrSect(tt.input, tt.min, tt.max, tt.inclusive)
			if result != tt.expected {
				t.Errorf("GetStrSect(%q, %v, %v, %v) = %q; want %q",
					tt.input, deref(tt.min), deref(tt.max), tt.inclusive, result, tt.expected)
			}
		})
	}
}

func TestGetStrSectIdentity(t *testing.T) {
	inputs := []string{"a", "hello", "hello world", "  padded  ", "日本語"}
	for _, input := range inputs {
		if got := GetStrSect(input, nil, nil, true); got != input {
			t.Errorf("GetStrSect(%q, nil, nil, true) = %q; want input unchanged", input, got)
		}
	}
}

func TestDeleteSubStrByIndex(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		start    int
		end      int
		expected string
	}{
		{"empty source", "", 0, 3, ""},
		{"middle range", "hello", 1, 3, "ho"},
		{"whole string", "hello", 0, 4, ""},
		{"prefix", "hello", 0, 1, "llo"},
		{"suffix", "hello", 3, 4, "hel"},
		{"start equals end is a no-op", "hello", 2, 2, "hello"},
		{"start after end is a no-op", "hello", 3, 1, "hello"},
		{"negative start clamped", "hello", -3, 1, "llo"},
		{"end past length clamped", "hello", 2, 40, "he"},
		{"both clamped", "hello", -1, 10, ""},
		{"range entirely after end", "hello", 7, 9, "hello"},
		{"range entirely before start", "hello", -9, -2, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeleteSubStrByIndex(tt.src, tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("DeleteSubStrByIndex(%q, %d, %d) = %q; want %q",
					tt.src, tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestRemoveRange(t *testing.T) {
	// Unlike DeleteSubStrByIndex, single-byte ranges are removed.
	if got := removeRange("a[b]c", 2, 2); got != "a[]c" {
		t.Errorf("removeRange single byte = %q; want %q", got, "a[]c")
	}
	if got := removeRange("abc", 5, 8); got != "abc" {
		t.Errorf("removeRange out of bounds = %q; want %q", got, "abc")
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name           string
		length, lo, hi int
		wantLo, wantHi int
		wantOK         bool
	}{
		{"inside", 5, 1, 3, 1, 3, true},
		{"clamped both", 5, -2, 9, 0, 4, true},
		{"inverted", 5, 3, 2, 3, 2, false},
		{"zero length", 0, 0, 0, 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := clampRange(tt.length, tt.lo, tt.hi)
			if lo != tt.wantLo || hi != tt.wantHi || ok != tt.wantOK {
				t.Errorf("clampRange(%d, %d, %d) = (%d, %d, %v); want (%d, %d, %v)",
					tt.length, tt.lo, tt.hi, lo, hi, ok, tt.wantLo, tt.wantHi, tt.wantOK)
			}
		})
	}
}

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
