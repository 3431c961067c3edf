// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/yargv/pkg/render"
	"github.com/yeetrun/yargv/pkg/tui"
	"github.com/yeetrun/yargv/pkg/yargv"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Aliases     []string
	// Scope returns the parameters accepted after the command name.
	Scope func() yargv.Scope
}

var (
	rePort = regexp.MustCompile(`^[0-9]{1,5}$`)

	loaders    = []string{"js", "jsx", "ts", "tsx", "css", "json", "text", "file", "empty"}
	sourcemaps = []string{"inline", "external", "linked", "both"}
)

var commandInfos = map[string]CommandInfo{
	"build": {Name: "build", Description: "Parse bundler-style build options", Usage: "[flags] ENTRY...", Examples: []string{
		"yargv build --format=esm --minify src/index.ts",
		"yargv b -e:fs -e:path --define:DEBUG=false --loader:.svg=file app.ts",
		"yargv build --target es2020 --target node18 --sourcemap inline main.ts",
	}, Aliases: []string{"b"}, Scope: buildScope},
	"serve": {Name: "serve", Description: "Parse development server options", Usage: "[--port=N] [--host=ADDR] [--servedir=DIR]", Examples: []string{
		"yargv serve --port 8000 --servedir www",
	}, Scope: serveScope},
	"inspect": {Name: "inspect", Description: "Show how arguments are classified into tokens", Usage: "ARGS...", Examples: []string{
		"yargv inspect -- --define:DEBUG=true -abc",
	}, Scope: func() yargv.Scope { return yargv.Scope{} }},
}

// GlobalScope is the set of parameters accepted before the command name.
func GlobalScope() yargv.Scope {
	return yargv.Scope{
		"verbose": yargv.Flag(),
		"v":       yargv.Alias("verbose"),
		"output":  yargv.Choices(render.Formats...),
		"o":       yargv.Alias("output"),
		"color":   yargv.Maybe(yargv.Choices(tui.Modes...)),
		"help":    yargv.Flag(),
		"h":       yargv.Alias("help"),
	}
}

func buildScope() yargv.Scope {
	return yargv.Scope{
		"format":    yargv.Value(),
		"f":         yargv.Alias("format"),
		"outdir":    yargv.Value(),
		"define":    yargv.KeyValue(),
		"external":  yargv.Key(),
		"e":         yargv.Alias("external"),
		"loader":    yargv.Key(yargv.Choices(loaders...)),
		"minify":    yargv.Flag(),
		"sourcemap": yargv.Maybe(yargv.Choices(sourcemaps...)),
		"target":    yargv.Many(yargv.Value()),
		"bundle":    yargv.Flag(),
	}
}

func serveScope() yargv.Scope {
	return yargv.Scope{
		"port":     yargv.OneOf(rePort),
		"p":        yargv.Alias("port"),
		"host":     yargv.Value(),
		"servedir": yargv.Value(),
	}
}

// Config returns the full command line configuration. The first positional
// argument selects a command; commands take no further sub-commands.
func Config() yargv.Config {
	return yargv.Dynamic(GlobalScope(), selectCommand)
}

func selectCommand(name string) (yargv.Scope, yargv.NextFunc, error) {
	info, ok := Command(name)
	if !ok {
		return nil, nil, &yargv.UnknownSubCommandError{Name: name}
	}
	return info.Scope(), nil, nil
}

// Command looks up a command by name or alias.
func Command(name string) (CommandInfo, bool) {
	if info, ok := commandInfos[name]; ok {
		return info, true
	}
	for _, info := range commandInfos {
		if slices.Contains(info.Aliases, name) {
			return info, true
		}
	}
	return CommandInfo{}, false
}

// CommandNames returns the canonical command names, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SelectedCommand returns the canonical name and params of the command chosen
// in params. The params key is the name as typed, which may be an alias.
func SelectedCommand(params *yargv.Params) (string, *yargv.Params, bool) {
	for _, key := range params.Keys() {
		sub := params.Sub(key)
		if sub == nil {
			continue
		}
		if info, ok := Command(key); ok {
			return info.Name, sub, true
		}
	}
	return "", nil, false
}

// WriteUsage prints the command overview, or the help of a single command
// when name is set.
func WriteUsage(w io.Writer, name string, c tui.Colorizer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	if info, ok := Command(name); ok {
		fmt.Fprintf(tw, "Usage: yargv [global flags] %s %s\n\n", c.Command(info.Name), info.Usage)
		fmt.Fprintf(tw, "%s\n", info.Description)
		if len(info.Aliases) > 0 {
			fmt.Fprintf(tw, "\nAliases: %s\n", strings.Join(info.Aliases, ", "))
		}
		if len(info.Examples) > 0 {
			fmt.Fprintf(tw, "\nExamples:\n")
			for _, ex := range info.Examples {
				fmt.Fprintf(tw, "  %s\n", c.Dim(ex))
			}
		}
		return tw.Flush()
	}
	fmt.Fprintf(tw, "Usage: yargv [global flags] <command> [flags] [args]\n\n")
	fmt.Fprintf(tw, "Commands:\n")
	for _, n := range CommandNames() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Command(n), commandInfos[n].Description)
	}
	fmt.Fprintf(tw, "\nGlobal flags:\n")
	fmt.Fprintf(tw, "  -v, --verbose\tLog progress; repeat to log tokens\n")
	fmt.Fprintf(tw, "  -o, --output=FORMAT\tOne of %s\n", strings.Join(render.Formats, ", "))
	fmt.Fprintf(tw, "  --color[=MODE]\tOne of %s\n", strings.Join(tui.Modes, ", "))
	fmt.Fprintf(tw, "  -h, --help\tShow help\n")
	return tw.Flush()
}

func RequireArgsAtLeast(subcmd string, args []string, count int) error {
	if len(args) < count {
		return fmt.Errorf("'%s' requires at least %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
