// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides index-bounded section extraction and
//              deletion, repeated prefix/suffix removal, integer checks and
//              delimiter-based extraction for the toolbox.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial package documentation

// Package stringx provides small string-manipulation helpers.
//
// Overview
//
// All helpers address strings by byte index, the unit returned by
// strings.Index and accepted by Go slice expressions. Index pairs are
// inclusive on both ends. None of the helpers fail: out-of-range indices are
// clamped to the string bounds, missing delimiters behave like positions just
// outside the string, and empty or inverted ranges produce "" or leave the
// source untouched.
//
// Go strings are immutable, so helpers that conceptually edit their source
// return the edited string instead.
//
// Sections
//
//	stringx.GetStrSect("hello", stringx.Idx(1), stringx.Idx(3), true)  // "ell"
//	stringx.GetStrSect("hello", stringx.Idx(1), stringx.Idx(3), false) // "l"
//	stringx.GetStrSect("hello", nil, nil, true)                         // "hello"
//	stringx.DeleteSubStrByIndex("hello", 1, 3)                          // "ho"
//
// DeleteSubStrByIndex requires start < end; a range with start == end is
// left in place.
//
// Prefixes and suffixes
//
//	stringx.RemoveSubStrFromStart("--verbose", "-") // "verbose"
//	stringx.RemoveSubStrFromEnd("aaabbb", "b")      // "aaa"
//
// Extraction
//
// ExtractBtwnStrings returns the text between the first head and the first
// tail occurrence and the source with any requested regions removed:
//
//	extracted, rest := stringx.ExtractBtwnStrings("a[b]c", "[", "]",
//	    stringx.ExtractOptions{DeleteExtracted: true})
//	// extracted == "b", rest == "a[]c"
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
package stringx
