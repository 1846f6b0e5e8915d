// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

// Iterator is a position in a List: an element, or End, one past the
// last element. Iterators are plain values and may be compared with ==.
//
// An Iterator stays valid while other elements are inserted or erased
// and follows its list through Swap and Move. It becomes invalid once
// the element it refers to is erased, or once the UTree holding the
// list is Reset or overwritten by Assign or Move. The zero Iterator is
// invalid.
type Iterator struct {
	list *list
	node *node
}

// Valid returns whether the iterator still refers to a position of a
// list held by some UTree.
func (it Iterator) Valid() bool {
	return it.node != nil && it.list != nil &&
		it.node.owner == it.list && !it.list.dropped
}

// IsEnd returns whether the iterator is the End position of its list.
func (it Iterator) IsEnd() bool {
	return it.list != nil && it.node == &it.list.root
}

// Value returns the element at the iterator, or nil at End or when the
// iterator is invalid.
func (it Iterator) Value() *UTree {
	if !it.Valid() || it.IsEnd() {
		return nil
	}
	return &it.node.value
}

// Next returns the following position. Next of End is End.
func (it Iterator) Next() Iterator {
	if !it.Valid() || it.IsEnd() {
		return it
	}
	return Iterator{list: it.list, node: it.node.next}
}

// Prev returns the preceding position. Prev of End is the last element
// and Prev of the first element is End.
func (it Iterator) Prev() Iterator {
	if !it.Valid() {
		return it
	}
	return Iterator{list: it.list, node: it.node.prev}
}

// Advance moves the iterator n positions, backwards if n is negative.
func (it Iterator) Advance(n int) Iterator {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Seq is a read-only view of the elements in [First, Last), the form
// in which a Visitor receives a List.
type Seq struct {
	First, Last Iterator
}

// Len returns the number of elements in the view.
func (s Seq) Len() int {
	n := 0
	s.Each(func(*UTree) bool {
		n++
		return true
	})
	return n
}

// Each calls fn with every element of the view in order until fn
// returns false.
func (s Seq) Each(fn func(*UTree) bool) {
	for it := s.First; it != s.Last && it.Valid() && !it.IsEnd(); it = it.Next() {
		if !fn(&it.node.value) {
			return
		}
	}
}
