// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package size reports the in-memory footprint of a utree.
package size

import (
	"fmt"
	"reflect"

	"github.com/urfave/cli/v2"

	"github.com/gevorgvoskanyan/spirit/internal/logutil"
	"github.com/gevorgvoskanyan/spirit/scheme/utree"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:   "size",
		Usage:  "print the size of a utree holding each kind",
		Action: run,
	}
}

// Samples holds one value of every kind.
func Samples() []*utree.UTree {
	return []*utree.UTree{
		utree.New(),
		utree.BoolValue(true),
		utree.IntValue(123),
		utree.DoubleValue(123.456),
		utree.TextValue("Chuckie"),
		utree.ListValue(utree.IntValue(123), utree.TextValue("Chuckie")),
	}
}

// Of returns the footprint of v, excluding any out-of-line storage.
func Of(v *utree.UTree) uintptr {
	return reflect.ValueOf(v).Elem().Type().Size()
}

func run(c *cli.Context) error {
	logger := logutil.New(c)

	base := reflect.TypeOf((*utree.UTree)(nil)).Elem().Size()
	if _, err := fmt.Fprintf(c.App.Writer, "size of utree is: %d bytes\n", base); err != nil {
		return err
	}

	for _, v := range Samples() {
		sz := Of(v)
		logger.WithField("kind", v.Kind()).
			WithField("value", v.String()).
			Debug("measured")
		if sz != base {
			return fmt.Errorf("%s utree is %d bytes, expected %d", v.Kind(), sz, base)
		}
		if _, err := fmt.Fprintf(c.App.Writer, "%s: %d bytes\n", v.Kind(), sz); err != nil {
			return err
		}
	}

	return nil
}
