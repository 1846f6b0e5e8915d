// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package logutil_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/gevorgvoskanyan/spirit/internal/logutil"
)

func newApp(errw *bytes.Buffer, action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:      "test",
		Version:   "1.2.3",
		ErrWriter: errw,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "logfmt", Value: "text"},
			&cli.StringFlag{Name: "loglvl", Value: "info"},
			&cli.BoolFlag{Name: "prettyprint"},
		},
		Action: action,
	}
}

func TestJSONFormat(t *testing.T) {
	t.Parallel()

	var errw bytes.Buffer
	app := newApp(&errw, func(c *cli.Context) error {
		logutil.New(c).WithField("step", "one").Debug("applied")
		return nil
	})

	err := app.Run([]string{"test", "--logfmt", "json", "--loglvl", "debug"})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(errw.Bytes(), &entry), "output should be json")
	assert.Equal(t, "applied", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "one", entry["step"])
	assert.Equal(t, "1.2.3", entry["version"])
}

func TestLevelFilters(t *testing.T) {
	t.Parallel()

	var errw bytes.Buffer
	app := newApp(&errw, func(c *cli.Context) error {
		logger := logutil.New(c)
		logger.Debug("hidden")
		logger.Info("hidden")
		logger.Error("shown")
		return nil
	})

	err := app.Run([]string{"test", "--loglvl", "error"})
	require.NoError(t, err)
	assert.NotContains(t, errw.String(), "hidden")
	assert.Contains(t, errw.String(), "shown")
}

func TestNoneDiscards(t *testing.T) {
	t.Parallel()

	var errw bytes.Buffer
	app := newApp(&errw, func(c *cli.Context) error {
		logutil.New(c).Error("dropped")
		return nil
	})

	require.NoError(t, app.Run([]string{"test", "--logfmt", "none", "--loglvl", "trace"}))
	assert.Empty(t, errw.String())
}

func TestCached(t *testing.T) {
	t.Parallel()

	var errw bytes.Buffer
	app := newApp(&errw, func(c *cli.Context) error {
		first := logutil.New(c)
		second := logutil.New(c)
		assert.Equal(t, first, second, "logger should be bound once")
		return nil
	})

	require.NoError(t, app.Run([]string{"test"}))
}
