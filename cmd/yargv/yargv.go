// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command yargv parses its own command line with the yargv engine and prints
// the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/yeetrun/yargv/pkg/cli"
	"github.com/yeetrun/yargv/pkg/render"
	"github.com/yeetrun/yargv/pkg/tui"
	"github.com/yeetrun/yargv/pkg/yargv"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	params  *yargv.Params
	stdout  io.Writer
	logger  *log.Logger
	format  render.Format
	mode    tui.Mode
	color   tui.Colorizer
	verbose int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cwd, _ := os.Getwd()
	p, path, err := loadPrefs(cwd, os.Getenv("HOME"))
	if err != nil {
		logger.Printf("failed to load preferences: %v", err)
	}

	opts := yargv.Options{
		ImplicitLists: p.ImplicitLists,
		Terminator:    true,
	}
	params, rest, err := yargv.ParseWithOptions(args, cli.Config(), opts)
	if err != nil {
		mode, _ := tui.ParseMode(p.Color)
		printCLIError(stderr, err, tui.NewColorizer(mode, stderr))
		return 1
	}

	a := newApp(params, p, stdout, logger)
	if path != "" {
		a.logf(1, "using preferences from %s", path)
	}
	if a.verbose >= 2 {
		for _, tok := range yargv.TokenizeWithOptions(args, opts) {
			a.logger.Printf("token %s", tok)
		}
	}

	handlers := map[string]yargv.Handler{
		"help": a.handleHelp,
	}
	for _, name := range cli.CommandNames() {
		info, _ := cli.Command(name)
		h := a.commandHandler(name)
		handlers[name] = h
		for _, alias := range info.Aliases {
			handlers[alias] = h
		}
	}
	if err := yargv.Cmds(ctx, params, rest, handlers, a.handleDefault); err != nil {
		printCLIError(stderr, err, tui.NewColorizer(a.mode, stderr))
		return 1
	}
	return 0
}

func newApp(params *yargv.Params, p prefs, stdout io.Writer, logger *log.Logger) *app {
	a := &app{
		params:  params,
		stdout:  stdout,
		logger:  logger,
		format:  render.FormatTree,
		verbose: params.Count("verbose"),
	}
	if p.Output != "" {
		a.format = render.Format(p.Output)
	}
	if out, ok := params.String("output"); ok {
		a.format = render.Format(out)
	}

	mode, _ := tui.ParseMode(p.Color)
	switch v, _ := params.Get("color"); v := v.(type) {
	case string:
		mode = tui.Mode(v)
	case bool:
		mode = tui.ModeAlways
	}
	a.mode = mode
	a.color = tui.NewColorizer(mode, stdout)
	return a
}

func (a *app) logf(level int, format string, args ...any) {
	if a.verbose >= level {
		a.logger.Printf(format, args...)
	}
}

func (a *app) commandHandler(name string) yargv.Handler {
	return func(ctx context.Context, value any, args []string) error {
		sub, _ := value.(*yargv.Params)
		a.logf(1, "%s: %d params, %d args", name, sub.Len(), len(args))
		switch name {
		case "build":
			return a.handleBuild(ctx, sub, args)
		case "serve":
			return a.handleServe(ctx, sub, args)
		case "inspect":
			return a.handleInspect(ctx, sub, args)
		}
		return fmt.Errorf("no handler for %q", name)
	}
}

func (a *app) handleBuild(ctx context.Context, params *yargv.Params, args []string) error {
	if err := cli.RequireArgsAtLeast("build", args, 1); err != nil {
		return err
	}
	return a.print(args)
}

func (a *app) handleServe(ctx context.Context, params *yargv.Params, args []string) error {
	if port, ok := params.String("port"); ok {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return fmt.Errorf("invalid port %q", port)
		}
	}
	return a.print(args)
}

func (a *app) handleInspect(ctx context.Context, params *yargv.Params, args []string) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, tok := range yargv.Tokenize(args) {
		fmt.Fprintf(tw, "%s\t%s\n", a.color.Key(tok.Kind.String()), a.color.Value(strconv.Quote(tok.Text)))
	}
	return tw.Flush()
}

// handleHelp prints the usage of the selected command, if any.
func (a *app) handleHelp(ctx context.Context, value any, args []string) error {
	name, _, _ := cli.SelectedCommand(a.params)
	return cli.WriteUsage(a.stdout, name, a.color)
}

// handleDefault runs when no command was selected.
func (a *app) handleDefault(ctx context.Context, params *yargv.Params, args []string) error {
	if len(args) == 0 {
		return cli.WriteUsage(a.stdout, "", a.color)
	}
	return a.print(args)
}

// print renders the whole parse result, global flags included.
func (a *app) print(args []string) error {
	return render.Encode(a.stdout, a.format, a.params, args, a.color)
}

func printCLIError(w io.Writer, err error, c tui.Colorizer) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", c.Error("Error:"), err)
	var unknown *yargv.UnknownSubCommandError
	if errors.As(err, &unknown) {
		fmt.Fprintf(w, "Run 'yargv --help' for a list of commands.\n")
	}
}
