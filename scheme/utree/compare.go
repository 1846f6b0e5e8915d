// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"math"
	"strings"
)

// Equal returns whether a and b hold the same kind and equal payloads.
// Values of different kinds are never equal, so Int 0 and Bool false
// differ. Lists are equal when they have the same length and equal
// elements in order. A NaN Double is equal to any other NaN.
func Equal(a, b *UTree) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case Nothing:
		return true
	case Bool, Int:
		return a.word == b.word
	case Double:
		return compareDouble(a.double(), b.double()) == 0
	case Text:
		return a.str() == b.str()
	default:
		return equalLists(a.list, b.list)
	}
}

func equalLists(a, b *list) bool {
	if a == b {
		return true
	}
	if a.len != b.len {
		return false
	}
	for na, nb := a.first(), b.first(); na != &a.root; na, nb = na.next, nb.next {
		if !Equal(&na.value, &nb.value) {
			return false
		}
	}
	return true
}

// Compare orders a and b and returns -1, 0 or +1. Values of different
// kinds are ordered by the rank of their kinds,
//
//     Nothing < Bool < Double < Int < Text < List
//
// Values of the same kind compare by payload: false before true,
// doubles and integers numerically with NaN before every other double,
// text byte-wise and lists lexicographically, a proper prefix first.
// Compare(a, b) == 0 exactly when Equal(a, b).
func Compare(a, b *UTree) int {
	if a == b {
		return 0
	}
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	switch ka {
	case Nothing:
		return 0
	case Bool:
		return compareBool(a.boolean(), b.boolean())
	case Int:
		return compareInt(a.integer(), b.integer())
	case Double:
		return compareDouble(a.double(), b.double())
	case Text:
		return strings.Compare(a.str(), b.str())
	default:
		return compareLists(a.list, b.list)
	}
}

func compareLists(a, b *list) int {
	if a == b {
		return 0
	}
	na, nb := a.first(), b.first()
	for ; na != &a.root && nb != &b.root; na, nb = na.next, nb.next {
		if c := Compare(&na.value, &nb.value); c != 0 {
			return c
		}
	}
	return compareInt(int64(a.len), int64(b.len))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDouble(a, b float64) int {
	switch an, bn := math.IsNaN(a), math.IsNaN(b); {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal provides an implementation of equality for UTrees. It is false
// when other is not a *UTree.
func (t *UTree) Equal(other interface{}) bool {
	ot, isUTree := other.(*UTree)
	return isUTree && Equal(t, ot)
}

// Compare provides an implementation of comparison for UTrees. It
// panics when other is not a *UTree.
func (t *UTree) Compare(other interface{}) int {
	return Compare(t, other.(*UTree))
}

// Less returns whether t orders before other.
func (t *UTree) Less(other *UTree) bool {
	return Compare(t, other) < 0
}
