// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

// Node is one cell of a singly-linked List.  The zero Node is a detached
// single-element list.
type Node[E any] struct {
	Value E
	next  *Node[E]
}

// List is a singly-linked sequence exposing only the Forward tier: cursors
// are node pointers, nil is the past-the-end position, and there is no way
// to step backward or jump.  It exists mostly to exercise forward-only
// algorithms; it is not a general-purpose container.
type List[E any] struct {
	head *Node[E]
	tail *Node[E]
}

// ListOf builds a List holding the given values in order.
func ListOf[E any](values ...E) *List[E] {
	l := &List[E]{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append adds a value at the end of the list.
func (l *List[E]) Append(v E) {
	n := &Node[E]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
}

// Begin returns the first position (nil when the list is empty).
func (l *List[E]) Begin() *Node[E] { return l.head }

// End returns the past-the-end position.
func (l *List[E]) End() *Node[E] { return nil }

// Len counts the nodes, in O(n).
func (l *List[E]) Len() int { return Count[*Node[E], E](l, l.head, nil) }

// Next implements Forward.
func (l *List[E]) Next(p *Node[E]) *Node[E] { return p.next }

// Get implements Forward.
func (l *List[E]) Get(p *Node[E]) E { return p.Value }

// Set implements Forward.
func (l *List[E]) Set(p *Node[E], v E) { p.Value = v }

// Swap implements Forward.  It exchanges element values, not links, so
// positions held by the caller keep their meaning.
func (l *List[E]) Swap(p, q *Node[E]) { p.Value, q.Value = q.Value, p.Value }
