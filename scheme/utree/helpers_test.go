// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import "testing"

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}

func mustSize(t *testing.T, v *UTree) int {
	t.Helper()
	sz, err := v.Size()
	if err != nil {
		t.Fatal(err)
	}
	return sz
}

func mustBegin(t *testing.T, v *UTree) Iterator {
	t.Helper()
	it, err := v.Begin()
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func mustEnd(t *testing.T, v *UTree) Iterator {
	t.Helper()
	it, err := v.End()
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func mustPushBack(t *testing.T, v *UTree, elems ...*UTree) {
	t.Helper()
	for _, elem := range elems {
		if err := v.PushBack(elem); err != nil {
			t.Fatal(err)
		}
	}
}

// ints builds a List of Int values.
func ints(is ...int64) *UTree {
	out := ListValue()
	for _, i := range is {
		out.PushBack(IntValue(i))
	}
	return out
}

// mixedValues returns one or more values of every kind, nested lists
// included, in ascending order.
func mixedValues() []*UTree {
	return []*UTree{
		New(),
		BoolValue(false),
		BoolValue(true),
		DoubleValue(-1.5),
		DoubleValue(0),
		DoubleValue(100),
		DoubleValue(123.456),
		IntValue(-5),
		IntValue(0),
		IntValue(123),
		TextValue(""),
		TextValue("Apple"),
		TextValue("ApplePie"),
		TextValue("Chuckie"),
		ListValue(),
		ListValue(New()),
		ints(1),
		ints(1, 2),
		ints(1, 2, 3),
		ListValue(IntValue(1), TextValue("two")),
		ints(2),
		ListValue(ListValue(DoubleValue(123.456), TextValue("Mah Doggie"))),
	}
}
