// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rotate

import (
	"unsafe"

	"github.com/grailbio/rotate/seq"
)

const (
	// DefaultBufferBytes is the scratch-buffer byte budget used when
	// Tuning.BufferLen is zero.  It is sized to sit comfortably inside a
	// typical L1/L2 data cache, and is deliberately not a multiple of the
	// cache line or page size so that buffer-sized strides do not land on
	// pathological alignments.
	DefaultBufferBytes = 24547

	// DefaultSmallLen is the sequence length below which the dispatcher
	// prefers three-reversal over cycle-following.
	DefaultSmallLen = 30

	// DefaultMinCycles is the smallest cycle count (gcd of the two span
	// lengths) for which cycle-following is still attempted.  Below it most
	// of the work happens in a handful of very long cycles whose scattered
	// access pattern loses to the linear sweeps of three-reversal.
	DefaultMinCycles = 44
)

// Tuning carries the dispatch cutoffs of Indexed rotation.  The defaults
// are empirical values measured on common x86 parts; the best settings
// depend on cache topology, so callers with unusual hardware or element
// sizes may want to measure and override.  The zero value selects all
// defaults.
type Tuning struct {
	// BufferLen is the scratch-buffer capacity in elements.  Zero derives a
	// capacity from DefaultBufferBytes and the element size; a negative
	// value disables buffering altogether, forcing the strictly in-place
	// strategies.
	BufferLen int
	// SmallLen overrides DefaultSmallLen when positive.
	SmallLen int
	// MinCycles overrides DefaultMinCycles when positive.
	MinCycles int
}

func (tu Tuning) bufferLen(elemSize uintptr) int {
	switch {
	case tu.BufferLen > 0:
		return tu.BufferLen
	case tu.BufferLen < 0:
		return 0
	}
	if elemSize == 0 {
		// Zero-sized elements: any capacity works, rotation moves nothing.
		return DefaultBufferBytes
	}
	return int(DefaultBufferBytes / elemSize)
}

func (tu Tuning) smallLen() int {
	if tu.SmallLen > 0 {
		return tu.SmallLen
	}
	return DefaultSmallLen
}

func (tu Tuning) minCycles() int {
	if tu.MinCycles > 0 {
		return tu.MinCycles
	}
	return DefaultMinCycles
}

// Indexed rotates [first, last) around middle on an indexed sequence,
// picking a strategy with the default Tuning.
func Indexed[P comparable, E any](s seq.Indexed[P, E], first, middle, last P) {
	IndexedTuned(s, first, middle, last, Tuning{})
}

// IndexedTuned is Indexed with explicit Tuning.
//
// Strategy choice: equal halves swap pairwise; short sequences and
// cycle-poor decompositions use three-reversal; a span that fits the
// scratch buffer rotates in one buffered linear pass; everything else runs
// buffered (or, with buffering disabled, strictly in-place) cycle-following.
// Any scratch buffer lives only for the duration of the call.
func IndexedTuned[P comparable, E any](s seq.Indexed[P, E], first, middle, last P, tu Tuning) {
	if first == middle || middle == last {
		return
	}
	f := s.Distance(first, middle)
	b := s.Distance(middle, last)
	if f == b {
		swapRanges(s, first, middle, f)
		return
	}
	if f+b < tu.smallLen() {
		Bidirectional[P, E](s, first, middle, last)
		return
	}
	var zero E
	bufLen := tu.bufferLen(unsafe.Sizeof(zero))
	if bufLen > 0 && (f <= bufLen || b <= bufLen) {
		CyclesBuffered(s, first, middle, last, make([]E, min(f, b)))
		return
	}
	if g := gcd(f, b); g < tu.minCycles() {
		Bidirectional[P, E](s, first, middle, last)
		return
	} else if bufLen > 0 {
		CyclesBuffered(s, first, middle, last, make([]E, min(g, bufLen)))
		return
	}
	Cycles(s, first, middle, last)
}

// Slice left-rotates data in place so that data[pivot] becomes data[0],
// preserving the relative order of data[:pivot] and data[pivot:].  pivot
// must be in [0, len(data)]; both extremes are no-ops.  This is the
// convenience entry point for the common contiguous case.
func Slice[E any](data []E, pivot int) {
	SliceTuned(data, pivot, Tuning{})
}

// SliceTuned is Slice with explicit Tuning.
func SliceTuned[E any](data []E, pivot int, tu Tuning) {
	IndexedTuned[int, E](seq.Slice[E](data), 0, pivot, len(data), tu)
}
