// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package render builds a list from command-line arguments and prints it.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/gevorgvoskanyan/spirit/internal/logutil"
	"github.com/gevorgvoskanyan/spirit/scheme/utree"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "print arguments as a utree list",
		ArgsUsage: "[value...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "sort the list before printing",
			},
			&cli.BoolFlag{
				Name:    "each",
				Aliases: []string{"e"},
				Usage:   "print each element on its own line",
			},
		},
		Action: run,
	}
}

// Parse converts a single argument to a utree. Integers, finite
// doubles, booleans and nil are recognized; anything else is text, so
// "nan" and "inf" stay words.
func Parse(arg string) *utree.UTree {
	if arg == "nil" {
		return utree.New()
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return utree.IntValue(i)
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return utree.DoubleValue(f)
	}
	switch arg {
	case "true":
		return utree.BoolValue(true)
	case "false":
		return utree.BoolValue(false)
	}
	return utree.TextValue(arg)
}

func run(c *cli.Context) error {
	logger := logutil.New(c)

	val := utree.ListValue()
	for _, arg := range c.Args().Slice() {
		elem := Parse(arg)
		logger.WithField("arg", arg).
			WithField("kind", elem.Kind()).
			Trace("parsed")
		if err := val.PushBack(elem); err != nil {
			return err
		}
	}

	if c.Bool("sort") {
		if err := val.Sort(); err != nil {
			return err
		}
	}

	if !c.Bool("each") {
		if err := utree.Fprint(c.App.Writer, val); err != nil {
			return err
		}
		_, err := fmt.Fprintln(c.App.Writer)
		return err
	}

	var werr error
	err := val.Range(func(elem *utree.UTree) bool {
		_, werr = fmt.Fprintln(c.App.Writer, elem)
		return werr == nil
	})
	if err != nil {
		return err
	}
	return werr
}
