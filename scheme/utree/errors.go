// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports malformed construction input such as
	// an inverted text range or an unsupported native type.
	ErrInvalidArgument = errors.New("utree: invalid argument")

	// ErrKindMismatch reports an operation applied to a UTree of a kind
	// it does not support, a list operation on a non-list for instance.
	ErrKindMismatch = errors.New("utree: kind mismatch")

	// ErrEmptyAccess reports front, back or pop on an empty list.
	ErrEmptyAccess = errors.New("utree: access to empty list")

	// ErrOutOfRange reports an index or position outside of a list.
	ErrOutOfRange = errors.New("utree: out of range")
)

func errKindMismatch(method string, k Kind, allowed ...Kind) error {
	return fmt.Errorf("%w: %s on %v, allowed %v", ErrKindMismatch,
		method, k, allowed)
}

func errEmpty(method string) error {
	return fmt.Errorf("%w: %s", ErrEmptyAccess, method)
}

func errOutOfRange(method string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrOutOfRange, method,
		fmt.Sprintf(format, args...))
}

func errInvalid(method string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, method,
		fmt.Sprintf(format, args...))
}
