// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"sort"

	"jsouthworth.net/go/immutable/vector"
)

// Sort sorts the elements of a List in place. The sort is stable. By
// default elements are ordered by Compare; this may be overridden using
// the By option. Elements are relinked rather than copied, so iterators
// keep referring to the same elements.
func (t *UTree) Sort(options ...SortOption) error {
	l, err := t.asList("Sort")
	if err != nil {
		return err
	}
	opts := sortOpts{compare: Compare}
	for _, opt := range options {
		opt(&opts)
	}
	nodes := vector.Empty().AsTransient()
	for n := l.first(); n != &l.root; n = n.next {
		nodes = nodes.Append(n)
	}
	sorter := listSorter{
		nodes: nodes,
		opts:  &opts,
	}
	sort.Stable(&sorter)

	l.root.next, l.root.prev, l.len = &l.root, &l.root, 0
	sorter.nodes.Range(func(_ int, n *node) {
		l.insertBefore(&l.root, n)
	})
	return nil
}

type listSorter struct {
	nodes *vector.TVector
	opts  *sortOpts
}

func (s *listSorter) Len() int {
	return s.nodes.Length()
}

func (s *listSorter) Less(i, j int) bool {
	return s.opts.compare(&s.nodes.At(i).(*node).value,
		&s.nodes.At(j).(*node).value) < 0
}

func (s *listSorter) Swap(i, j int) {
	a, b := s.nodes.At(i), s.nodes.At(j)
	s.nodes = s.nodes.Assoc(i, b)
	s.nodes = s.nodes.Assoc(j, a)
}

type sortOpts struct {
	compare func(a, b *UTree) int
}

// SortOption is an option to the Sort function.
type SortOption func(*sortOpts)

// By takes a comparison function and returns a sort option. A compare
// function returns less than zero when a sorts before b, zero when they
// are equivalent and greater than zero when a sorts after b.
func By(fn func(a, b *UTree) int) SortOption {
	return func(opts *sortOpts) {
		opts.compare = fn
	}
}
