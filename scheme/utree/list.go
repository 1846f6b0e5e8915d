// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"jsouthworth.net/go/immutable/vector"
)

// list is a circular doubly-linked list with a sentinel. root.next is
// the first element and root.prev the last; an empty list points root
// at itself.
type list struct {
	root node
	len  int
	// dropped is set once the holding UTree lets go of the list.
	dropped bool
}

type node struct {
	prev, next *node
	// owner is nil once the node has been erased.
	owner *list
	value UTree
}

func newList() *list {
	l := new(list)
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.owner = l
	return l
}

func (t *UTree) release() {
	if t.kind == List && t.list != nil {
		t.list.dropped = true
	}
}

func (l *list) first() *node { return l.root.next }

func (l *list) last() *node { return l.root.prev }

func (l *list) insertBefore(at, n *node) *node {
	n.owner = l
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.len++
	return n
}

func (l *list) remove(n *node) *node {
	next := n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next, n.owner = nil, nil, nil
	l.len--
	return next
}

func (l *list) pushBack(v UTree) *node {
	return l.insertBefore(&l.root, &node{value: v})
}

func (l *list) pushFront(v UTree) *node {
	return l.insertBefore(l.first(), &node{value: v})
}

func (l *list) copy() *list {
	out := newList()
	for n := l.first(); n != &l.root; n = n.next {
		out.pushBack(n.value.copyRep())
	}
	return out
}

// at walks to the i'th element from whichever end is nearer.
func (l *list) at(i int) *node {
	if i < l.len/2 {
		n := l.first()
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.last()
	for i = l.len - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

func (t *UTree) asList(method string) (*list, error) {
	if t.Kind() != List {
		return nil, errKindMismatch(method, t.Kind(), List)
	}
	return t.list, nil
}

// Size returns the number of elements of a List.
func (t *UTree) Size() (int, error) {
	l, err := t.asList("Size")
	if err != nil {
		return 0, err
	}
	return l.len, nil
}

// Front returns the first element of a List. The element is owned by
// the list and may be modified in place.
func (t *UTree) Front() (*UTree, error) {
	l, err := t.asList("Front")
	if err != nil {
		return nil, err
	}
	if l.len == 0 {
		return nil, errEmpty("Front")
	}
	return &l.first().value, nil
}

// Back returns the last element of a List. The element is owned by the
// list and may be modified in place.
func (t *UTree) Back() (*UTree, error) {
	l, err := t.asList("Back")
	if err != nil {
		return nil, err
	}
	if l.len == 0 {
		return nil, errEmpty("Back")
	}
	return &l.last().value, nil
}

// PushBack appends a copy of v to a List.
func (t *UTree) PushBack(v *UTree) error {
	l, err := t.asList("PushBack")
	if err != nil {
		return err
	}
	l.pushBack(v.copyRep())
	return nil
}

// PushFront prepends a copy of v to a List.
func (t *UTree) PushFront(v *UTree) error {
	l, err := t.asList("PushFront")
	if err != nil {
		return err
	}
	l.pushFront(v.copyRep())
	return nil
}

// PopBack removes the last element of a List.
func (t *UTree) PopBack() error {
	l, err := t.asList("PopBack")
	if err != nil {
		return err
	}
	if l.len == 0 {
		return errEmpty("PopBack")
	}
	l.remove(l.last())
	return nil
}

// PopFront removes the first element of a List.
func (t *UTree) PopFront() error {
	l, err := t.asList("PopFront")
	if err != nil {
		return err
	}
	if l.len == 0 {
		return errEmpty("PopFront")
	}
	l.remove(l.first())
	return nil
}

// Begin returns an iterator at the first element of a List, or at End
// if the list is empty.
func (t *UTree) Begin() (Iterator, error) {
	l, err := t.asList("Begin")
	if err != nil {
		return Iterator{}, err
	}
	return Iterator{list: l, node: l.first()}, nil
}

// End returns the position one past the last element of a List.
func (t *UTree) End() (Iterator, error) {
	l, err := t.asList("End")
	if err != nil {
		return Iterator{}, err
	}
	return Iterator{list: l, node: &l.root}, nil
}

func (l *list) checkPosition(method string, pos Iterator) error {
	if pos.list != l || !pos.Valid() {
		return errOutOfRange(method, "position is not in this list")
	}
	return nil
}

// Insert inserts a copy of v immediately before pos, which may be End,
// and returns the position of the new element.
func (t *UTree) Insert(pos Iterator, v *UTree) (Iterator, error) {
	l, err := t.asList("Insert")
	if err != nil {
		return Iterator{}, err
	}
	if err := l.checkPosition("Insert", pos); err != nil {
		return Iterator{}, err
	}
	n := l.insertBefore(pos.node, &node{value: v.copyRep()})
	return Iterator{list: l, node: n}, nil
}

// InsertRange inserts copies of the elements in [first, last) before
// pos, preserving their order, and returns the position of the first
// inserted element. The range may belong to any list, including this
// one; it is copied before the list is modified. If the range is empty
// pos is returned.
func (t *UTree) InsertRange(pos, first, last Iterator) (Iterator, error) {
	l, err := t.asList("InsertRange")
	if err != nil {
		return Iterator{}, err
	}
	if err := l.checkPosition("InsertRange", pos); err != nil {
		return Iterator{}, err
	}
	staged, err := stageRange(first, last)
	if err != nil {
		return Iterator{}, err
	}
	out := pos
	staged.Range(func(i int, v *UTree) {
		n := l.insertBefore(pos.node, &node{value: *v})
		if i == 0 {
			out = Iterator{list: l, node: n}
		}
	})
	return out, nil
}

// stageRange copies [first, last) into a transient vector of *UTree.
func stageRange(first, last Iterator) (*vector.TVector, error) {
	if !first.Valid() || !last.Valid() || first.list != last.list {
		return nil, errInvalid("InsertRange",
			"first and last are not positions of the same list")
	}
	staged := vector.Empty().AsTransient()
	for n := first.node; n != last.node; n = n.next {
		if n == &first.list.root {
			return nil, errInvalid("InsertRange",
				"last is not reachable from first")
		}
		rep := n.value.copyRep()
		staged = staged.Append(&rep)
	}
	return staged, nil
}

// Erase removes the element at pos and returns the position that
// followed it. Erasing End is an error and leaves the list untouched.
func (t *UTree) Erase(pos Iterator) (Iterator, error) {
	l, err := t.asList("Erase")
	if err != nil {
		return Iterator{}, err
	}
	if err := l.checkPosition("Erase", pos); err != nil {
		return Iterator{}, err
	}
	if pos.IsEnd() {
		return Iterator{}, errOutOfRange("Erase", "cannot erase end")
	}
	next := l.remove(pos.node)
	return Iterator{list: l, node: next}, nil
}

// Index returns the element at index i of a List. The walk starts from
// the nearer end of the list.
func (t *UTree) Index(i int) (*UTree, error) {
	l, err := t.asList("Index")
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= l.len {
		return nil, errOutOfRange("Index", "index %d of %d", i, l.len)
	}
	return &l.at(i).value, nil
}

// Range iterates over the elements of a List. Range takes one of the
// following functions; if it returns a bool, false stops the loop.
//
//     func(int, *UTree) iterates over indices and elements.
//     func(int, *UTree) bool
//     func(*UTree) iterates over the elements only.
//     func(*UTree) bool
//
// The elements may be modified in place but the list itself must not
// be modified during the loop.
func (t *UTree) Range(fn interface{}) error {
	l, err := t.asList("Range")
	if err != nil {
		return err
	}
	var do func(int, *UTree) bool
	switch f := fn.(type) {
	case func(int, *UTree):
		do = func(i int, v *UTree) bool {
			f(i, v)
			return true
		}
	case func(int, *UTree) bool:
		do = f
	case func(*UTree):
		do = func(_ int, v *UTree) bool {
			f(v)
			return true
		}
	case func(*UTree) bool:
		do = func(_ int, v *UTree) bool {
			return f(v)
		}
	default:
		return errInvalid("Range", "invalid range function %T", fn)
	}
	i := 0
	for n := l.first(); n != &l.root; n = n.next {
		if !do(i, &n.value) {
			break
		}
		i++
	}
	return nil
}
