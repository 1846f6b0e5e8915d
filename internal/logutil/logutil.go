// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package logutil configures loggers from a cli context.
package logutil

import (
	"io"
	"strings"

	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// metadataKey names the cached logger in App.Metadata.
const metadataKey = "utree/internal/logutil.logger"

// New returns the logger for the running app. The first call builds it
// from the logfmt, loglvl and prettyprint flags; later calls return the
// same logger.
func New(c *cli.Context) log.Logger {
	if logger, ok := c.App.Metadata[metadataKey].(log.Logger); ok {
		return logger
	}

	logger := log.New(Options(c)...).
		WithField("version", c.App.Version)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[metadataKey] = logger
	return logger
}

// Options returns the logger options selected by the global flags.
// With logfmt none, everything is discarded.
func Options(c *cli.Context) []log.Option {
	format := strings.ToLower(c.String("logfmt"))
	if format == "none" {
		return []log.Option{
			log.WithLevel(log.FatalLevel),
			log.WithWriter(io.Discard),
		}
	}

	return []log.Option{
		Level(c.String("loglvl")),
		Formatter(format, c.Bool("prettyprint")),
		log.WithWriter(c.App.ErrWriter),
	}
}

// Level maps a level name, or its first letter, to a level option.
// Unknown names select info.
func Level(name string) log.Option {
	switch strings.ToLower(name) {
	case "trace", "t":
		return log.WithLevel(log.TraceLevel)
	case "debug", "d":
		return log.WithLevel(log.DebugLevel)
	case "warn", "warning", "w":
		return log.WithLevel(log.WarnLevel)
	case "error", "err", "e":
		return log.WithLevel(log.ErrorLevel)
	case "fatal", "f":
		return log.WithLevel(log.FatalLevel)
	default:
		return log.WithLevel(log.InfoLevel)
	}
}

// Formatter selects the logrus formatter for format, text unless json
// is asked for.
func Formatter(format string, pretty bool) log.Option {
	if format == "json" {
		return log.WithFormatter(&logrus.JSONFormatter{PrettyPrint: pretty})
	}
	return log.WithFormatter(&logrus.TextFormatter{DisableColors: true})
}
