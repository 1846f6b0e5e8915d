// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package demo walks a list through the full set of list mutations,
// printing the list and checking its size after every step.
package demo

import (
	"fmt"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/gevorgvoskanyan/spirit/internal/logutil"
	"github.com/gevorgvoskanyan/spirit/scheme/utree"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "run the list mutation walkthrough",
		Action: run,
	}
}

// Step is a single mutation of the walkthrough list.
type Step struct {
	Name string
	Do   func(val *utree.UTree) error
	Size int
}

func mahDoggie() *utree.UTree {
	return utree.ListValue(utree.DoubleValue(123.456),
		utree.TextValue("Mah Doggie"))
}

// Steps returns the walkthrough in order. Each step expects the list
// left by the previous one.
func Steps() []Step {
	return []Step{
		{"push_back 123", func(val *utree.UTree) error {
			return val.PushBack(utree.IntValue(123))
		}, 1},
		{"push_back Chuckie", func(val *utree.UTree) error {
			return val.PushBack(utree.TextValue("Chuckie"))
		}, 2},
		{"push_back list", func(val *utree.UTree) error {
			return val.PushBack(mahDoggie())
		}, 3},
		{"push_back Ba Ba Black Sheep", func(val *utree.UTree) error {
			return val.PushBack(utree.TextValue("Ba Ba Black Sheep"))
		}, 4},
		{"pop_front", (*utree.UTree).PopFront, 3},
		{"insert before third", func(val *utree.UTree) error {
			begin, err := val.Begin()
			if err != nil {
				return err
			}
			_, err = val.Insert(begin.Advance(2), utree.TextValue("Right in the middle"))
			return err
		}, 4},
		{"pop_back", (*utree.UTree).PopBack, 3},
		{"erase last", func(val *utree.UTree) error {
			end, err := val.End()
			if err != nil {
				return err
			}
			_, err = val.Erase(end.Prev())
			return err
		}, 2},
		{"insert range at begin", func(val *utree.UTree) error {
			src := mahDoggie()
			begin, err := val.Begin()
			if err != nil {
				return err
			}
			first, _ := src.Begin()
			last, _ := src.End()
			_, err = val.InsertRange(begin, first, last)
			return err
		}, 4},
	}
}

// Run applies every step to a fresh list, writing the list after each
// one. It stops at the first failing step or size mismatch.
func Run(logger log.Logger, emit func(step string, val *utree.UTree) error) (*utree.UTree, error) {
	val := utree.ListValue()
	for _, step := range Steps() {
		if err := step.Do(val); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name, err)
		}

		sz, err := val.Size()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name, err)
		}
		logger.WithField("step", step.Name).
			WithField("size", sz).
			Debug("applied")
		if sz != step.Size {
			return nil, fmt.Errorf("%s: expected size %d, got %d",
				step.Name, step.Size, sz)
		}

		if err = emit(step.Name, val); err != nil {
			return nil, err
		}
	}
	return val, nil
}

func run(c *cli.Context) error {
	logger := logutil.New(c)

	_, err := Run(logger, func(step string, val *utree.UTree) error {
		_, err := fmt.Fprintf(c.App.Writer, "%s: %v\n", step, val)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("walkthrough failed")
	}
	return err
}
