// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package utree implements a universal tree value. A UTree holds exactly
// one of nothing, a boolean, a 64 bit integer, a double, a text string or
// an ordered list of UTrees nested to any depth. It is the value a reader
// or interpreter produces when the shape of its result is not known until
// run time, an S-expression or a JSON like document for instance.
//
// UTrees have value semantics: Copy and Assign produce fully independent
// values, Equal and Compare work across every kind, and the size of a
// UTree does not depend on what it holds. Text and List payloads live
// behind an owned pointer while the scalar kinds are stored inline.
//
// A UTree whose kind is List additionally behaves as a sequence
// container. Elements may be pushed and popped at either end in constant
// time, inserted or erased at any position named by an Iterator, and
// iterated in both directions. Payloads are inspected with Visit, which
// calls exactly one handler of a Visitor, or with the looser Perform.
//
// A UTree must not be copied with plain Go assignment; that aliases the
// text and list storage of the original. Use Copy, Assign or Move.
// UTrees are not safe for concurrent mutation.
package utree
