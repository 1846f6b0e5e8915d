// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import "strconv"

// Kind is the active variant of a UTree. The declaration order is the
// rank used to compare UTrees of different kinds.
type Kind uint8

const (
	Nothing Kind = iota // the empty value, the zero UTree
	Bool                // true or false
	Double              // a float64
	Int                 // a signed 64 bit integer
	Text                // an owned byte string
	List                // an ordered sequence of UTrees
)

var kindNames = [...]string{
	Nothing: "nothing",
	Bool:    "bool",
	Double:  "double",
	Int:     "int",
	Text:    "text",
	List:    "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}
