// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rotate_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/rotate"
	"github.com/grailbio/rotate/seq"
	"github.com/grailbio/testutil/expect"
)

// rotated is the reference model: a left-rotation of src around p is the
// sequence whose i-th element is src[(i+p) % len(src)].
func rotated[E any](src []E, p int) []E {
	if len(src) == 0 {
		return nil
	}
	out := make([]E, len(src))
	for i := range out {
		out[i] = src[(i+p)%len(src)]
	}
	return out
}

func iota1(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func listValues(l *seq.List[int]) []int {
	return seq.Values[*seq.Node[int], int](l, l.Begin(), l.End())
}

func TestForwardList(t *testing.T) {
	// A forward-only (singly-linked) sequence must come out exactly as the
	// equivalent array rotation.
	l := seq.ListOf(iota1(7)...)
	mid := seq.Step[*seq.Node[int], int](l, l.Begin(), 2)
	rotate.Forward[*seq.Node[int], int](l, l.Begin(), mid, l.End())
	expect.EQ(t, listValues(l), rotated(iota1(7), 2))
	expect.EQ(t, listValues(l), []int{3, 4, 5, 6, 7, 1, 2})
}

func TestForwardListNoop(t *testing.T) {
	l := seq.ListOf(iota1(4)...)
	rotate.Forward[*seq.Node[int], int](l, l.Begin(), l.Begin(), l.End())
	expect.EQ(t, listValues(l), iota1(4))
	rotate.Forward[*seq.Node[int], int](l, l.Begin(), l.End(), l.End())
	expect.EQ(t, listValues(l), iota1(4))

	empty := seq.ListOf[int]()
	rotate.Forward[*seq.Node[int], int](empty, empty.Begin(), empty.Begin(), empty.End())
	expect.EQ(t, empty.Len(), 0)
}

func TestForwardExhaustive(t *testing.T) {
	// Every (length, pivot) pair up to a small bound, on slices, for both
	// the juggling and the counted variant.
	for n := 0; n <= 32; n++ {
		for p := 0; p <= n; p++ {
			src := iota1(n)

			got := append([]int(nil), src...)
			rotate.Forward[int, int](seq.Slice[int](got), 0, p, n)
			expect.EQ(t, got, rotated(src, p), "Forward n=%d p=%d", n, p)

			got = append([]int(nil), src...)
			rotate.ForwardCounted[int, int](seq.Slice[int](got), 0, p, n)
			expect.EQ(t, got, rotated(src, p), "ForwardCounted n=%d p=%d", n, p)
		}
	}
}

func TestForwardCountedList(t *testing.T) {
	// The counted variant must agree with the juggling variant on a
	// sequence that genuinely lacks indexing.
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(50)
		p := 0
		if n > 0 {
			p = rng.Intn(n + 1)
		}
		vals := make([]int, n)
		for i := range vals {
			vals[i] = rng.Int()
		}
		l := seq.ListOf(vals...)
		mid := seq.Step[*seq.Node[int], int](l, l.Begin(), p)
		rotate.ForwardCounted[*seq.Node[int], int](l, l.Begin(), mid, l.End())
		expect.EQ(t, listValues(l), rotated(vals, p), "n=%d p=%d", n, p)
	}
}

func TestForwardSubrange(t *testing.T) {
	// Rotating an interior window must leave the rest of the sequence
	// alone.
	got := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rotate.Forward[int, int](seq.Slice[int](got), 2, 4, 6)
	expect.EQ(t, got, []int{0, 1, 4, 5, 2, 3, 6, 7})
}
