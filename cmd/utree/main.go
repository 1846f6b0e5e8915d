// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/gevorgvoskanyan/spirit/internal/cmd/demo"
	"github.com/gevorgvoskanyan/spirit/internal/cmd/render"
	"github.com/gevorgvoskanyan/spirit/internal/cmd/size"
)

const version = "0.1.0"

var flags = []cli.Flag{
	// Logging
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"UTREE_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"UTREE_LOGLVL"},
	},
	// Misc.
	&cli.BoolFlag{
		Name:    "prettyprint",
		Aliases: []string{"pp"},
		Usage:   "pretty-print JSON output",
		Hidden:  true,
	},
}

var commands = []*cli.Command{
	size.Command(),
	demo.Command(),
	render.Command(),
}

func main() {
	run(&cli.App{
		Name:      "utree",
		HelpName:  "utree",
		Usage:     "inspect and exercise universal trees",
		UsageText: "utree [global options] command [command options] [arguments...]",
		Version:   version,
		Flags:     flags,
		Commands:  commands,
		Metadata: map[string]interface{}{
			"version": version,
		},
	})
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
