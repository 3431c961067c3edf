// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yargv parses command lines with composable parameter combinators.
//
// A configuration names the parameters and sub-commands a command line may
// contain. Each parameter is a Combinator: a small function that consumes
// tokens and folds them into the parameter's state. Parse walks the
// arguments left to right, resolves every flag against the active scope, and
// returns the accumulated state plus the positional arguments.
//
// The library follows these principles:
//   - Parsing is a pure function of its arguments; nothing is logged or read
//     from the environment
//   - Sub-command scopes may be static or chosen on demand
//   - Errors say which flag failed and how it was written
//
// # Basic Usage
//
//	cfg := yargv.Scope{
//	    "format": yargv.Value(),
//	    "f":      yargv.Alias("format"),
//	    "verbose": yargv.Flag(),
//	    "v":       yargv.Alias("verbose"),
//	}
//
//	params, args, err := yargv.Parse([]string{"-vv", "--format", "esm", "index.ts"}, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// params: {verbose: 2, format: "esm"}, args: ["index.ts"]
//
// # Flag Syntax
//
// Arguments are split into tokens before parsing:
//   - Long flags: --format, --format=esm, --no-op (read as "noOp")
//   - Short flags: -f, -f=esm
//   - Clusters: -vvv is three -v flags, -vP is -v then -P
//   - Keys: --external:fs, --define:DEBUG=true, -e:fs
//   - Anything else is a value
//
// A flag whose combinator wants a value takes it from "=value" or from the
// next argument: --format=esm and --format esm are the same.
//
// # Combinators
//
//   - Value(): one value; "esm"
//   - Flag(): true, then 2, 3, ... for every repeat
//   - OneOf(patterns...), Choices(values...): one value that must match
//   - Key(), Key(inner): per-key counters or per-key inner state
//   - KeyValue(): per-key values
//   - Maybe(inner): inner's value if one follows, true otherwise
//   - Many(inner): every result of inner, as a []any
//
// A repeated Value, OneOf or KeyValue replaces its previous state unless
// Options.ImplicitLists is set, in which case it becomes a list.
//
// # Sub-commands
//
// A nested Scope is a sub-command. When a positional argument names it, a
// fresh *Params is attached under that name and later flags resolve against
// the sub-command's scope only:
//
//	cfg := yargv.Scope{
//	    "build": yargv.Scope{"level": yargv.Choices("debug", "info")},
//	}
//	params, _, _ := yargv.Parse([]string{"build", "--level", "info"}, cfg)
//	// params: {build: {level: "info"}}
//
// Use Dynamic when a sub-command's parameters are only known once it has
// been selected. Cmds routes a parsed result to per-sub-command handlers.
//
// # Errors
//
// Parse fails on the first problem; there is no partial result.
//   - *UnknownParameterError: "unknown parameter: --format"
//   - *ParamError: "expected value for: --format", wrapping ErrExpectedValue,
//     ErrExpectedOneOf or ErrMissingKey
//   - *UnknownSubCommandError: "unknown sub-command: watch"
//   - *ConfigError: the configuration itself is malformed
package yargv
