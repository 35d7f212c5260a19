// File: extract.go
// Title: Delimiter-Based Extraction
// Description: Extracts the text between a head and a tail delimiter and
//              optionally deletes the surrounding regions from the source.
//              Every region is located in the original source and the union
//              of the requested regions is removed.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of ExtractBtwnStrings
// - 2026-10-18 v0.1.1: Deletion regions are resolved against the original source

package stringx

import "strings"

// headAbsent marks a missing head delimiter. It lies before the string and
// below -1, the position just before index 0.
const headAbsent = -2

// ExtractOptions selects the regions ExtractBtwnStrings deletes from the
// source after extracting.
type ExtractOptions struct {
	DeleteExtracted  bool // text between head and tail
	DeleteBeforeHead bool // everything before the head delimiter
	DeleteHead       bool // the head delimiter itself
	DeleteTail       bool // the tail delimiter itself
	DeleteAfterTail  bool // everything after the tail delimiter
}

// span is the inclusive position of a delimiter match within the source.
type span struct {
	start, end int
	found      bool
}

// locate returns the span of the first occurrence of delim in src. An empty
// or missing delimiter yields an unfound span positioned at absent.
func locate(src, delim string, absent int) span {
	if delim != "" {
		if i := strings.Index(src, delim); i >= 0 {
			return span{start: i, end: i + len(delim) - 1, found: true}
		}
	}
	return span{start: absent, end: absent}
}

// ExtractBtwnStrings returns the text of src strictly between the first
// occurrence of head and the first occurrence of tail, together with src after
// the deletions requested by opts.
//
// An empty or missing head means the extraction starts at the beginning of
// src; an empty or missing tail means it runs to the end. If the tail occurs
// before or overlapping the head the extracted text is "".
//
// Each deletion applies only when its region exists, and every region is
// located in the original src. When the tail precedes or overlaps the head
// the regions may overlap; a byte covered by any requested region is
// removed exactly once. The extracted text is never affected by the
// deletions.
//
//	ExtractBtwnStrings("a[b]c", "[", "]", ExtractOptions{})                      // "b", "a[b]c"
//	ExtractBtwnStrings("a[b]c", "[", "]", ExtractOptions{DeleteExtracted: true}) // "b", "a[]c"
func ExtractBtwnStrings(src, head, tail string, opts ExtractOptions) (extracted, remaining string) {
	if len(src) == 0 {
		return "", ""
	}

	h := locate(src, head, headAbsent)
	t := locate(src, tail, len(src))

	extracted = GetStrSect(src, Idx(h.end), Idx(t.start), false)

	drop := make([]bool, len(src))
	mark := func(start, end int) {
		start, end, ok := clampRange(len(src), start, end)
		if !ok {
			return
		}
		for i := start; i <= end; i++ {
			drop[i] = true
		}
	}

	if opts.DeleteAfterTail && t.found {
		mark(t.end+1, len(src)-1)
	}
	if opts.DeleteTail && t.found {
		mark(t.start, t.end)
	}
	if opts.DeleteExtracted && extracted != "" {
		start := max(h.end+1, 0)
		mark(start, start+len(extracted)-1)
	}
	if opts.DeleteHead && h.found {
		mark(h.start, h.end)
	}
	if opts.DeleteBeforeHead && h.found {
		mark(0, h.start-1)
	}

	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		if !drop[i] {
			b.WriteByte(src[i])
		}
	}
	remaining = b.String()

	return extracted, remaining
}
