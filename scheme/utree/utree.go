// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"math"
	"strings"
)

// UTree is a universal tree value. The zero UTree is Nothing.
//
// Bool, Int and Double payloads are stored inline in a single word.
// Text and List payloads are owned through a pointer so the footprint of
// a UTree is the same for every kind and independent of the length of
// the text or list it holds.
type UTree struct {
	// UTrees are not comparable with ==, use Equal.
	_ [0]func()

	kind Kind
	word uint64
	text *text
	list *list
}

type text struct {
	s string
}

// New returns a UTree holding Nothing.
func New() *UTree {
	return &UTree{}
}

// BoolValue returns a UTree holding b.
func BoolValue(b bool) *UTree {
	t := &UTree{kind: Bool}
	if b {
		t.word = 1
	}
	return t
}

// IntValue returns a UTree holding i.
func IntValue(i int64) *UTree {
	return &UTree{kind: Int, word: uint64(i)}
}

// DoubleValue returns a UTree holding f.
func DoubleValue(f float64) *UTree {
	return &UTree{kind: Double, word: math.Float64bits(f)}
}

// TextValue returns a UTree holding its own copy of s.
func TextValue(s string) *UTree {
	return &UTree{kind: Text, text: &text{s: strings.Clone(s)}}
}

// TextBytes returns a UTree holding a copy of b as text.
func TextBytes(b []byte) *UTree {
	return &UTree{kind: Text, text: &text{s: string(b)}}
}

// TextRange returns a UTree holding a copy of b[first:last] as text.
// The range must satisfy 0 <= first <= last <= len(b).
func TextRange(b []byte, first, last int) (*UTree, error) {
	if first < 0 || last > len(b) || first > last {
		return nil, errInvalid("TextRange",
			"range [%d,%d) of %d bytes", first, last, len(b))
	}
	return TextBytes(b[first:last]), nil
}

// ListValue returns a List holding copies of elems in order. Without
// arguments it returns an empty List, which is distinct from Nothing.
func ListValue(elems ...*UTree) *UTree {
	t := &UTree{kind: List, list: newList()}
	for _, e := range elems {
		t.list.pushBack(e.copyRep())
	}
	return t
}

// Kind returns the active kind. A nil *UTree is Nothing.
func (t *UTree) Kind() Kind {
	if t == nil {
		return Nothing
	}
	return t.kind
}

// IsNothing returns whether t holds Nothing.
func (t *UTree) IsNothing() bool {
	return t.Kind() == Nothing
}

// Copy returns an independent deep copy of t.
func (t *UTree) Copy() *UTree {
	rep := t.copyRep()
	return &rep
}

// Assign replaces the payload of t with a deep copy of src and returns
// t. Assigning t to itself, or assigning a value nested inside t, is
// safe.
func (t *UTree) Assign(src *UTree) *UTree {
	if t == src {
		return t
	}
	rep := src.copyRep()
	t.release()
	*t = rep
	return t
}

// Move transfers the storage of src into t without copying it and
// leaves src holding Nothing. It returns t.
func (t *UTree) Move(src *UTree) *UTree {
	if t == src {
		return t
	}
	var rep UTree
	if src != nil {
		rep = *src
		*src = UTree{}
	}
	t.release()
	*t = rep
	return t
}

// Reset releases the payload of t, leaving it Nothing.
func (t *UTree) Reset() {
	t.release()
	*t = UTree{}
}

// Swap exchanges the contents of t and other in constant time. Neither
// value may be nested inside the other.
func (t *UTree) Swap(other *UTree) {
	*t, *other = *other, *t
}

func (t *UTree) copyRep() UTree {
	if t == nil {
		return UTree{}
	}
	out := UTree{kind: t.kind, word: t.word}
	switch t.kind {
	case Text:
		out.text = &text{s: strings.Clone(t.text.s)}
	case List:
		out.list = t.list.copy()
	}
	return out
}

func (t *UTree) boolean() bool {
	return t.word != 0
}

func (t *UTree) integer() int64 {
	return int64(t.word)
}

func (t *UTree) double() float64 {
	return math.Float64frombits(t.word)
}

func (t *UTree) str() string {
	return t.text.s
}
