// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import "context"

// Handler handles one key of a parsed result. value is the key's state; for
// a sub-command it is the sub-command's *Params.
type Handler func(ctx context.Context, value any, args []string) error

// FallbackHandler is called by Cmds when no key has a Handler.
type FallbackHandler func(ctx context.Context, params *Params, args []string) error

// Cmds routes a parse result to a handler. The first key of params, in the
// order keys were set, that has an entry in handlers is invoked with its
// value and args. If no key matches, noMatch is called with the whole params
// unless it is nil.
//
// Example:
//
//	params, args, err := yargv.Parse(os.Args[1:], cfg)
//	if err != nil {
//	    return err
//	}
//	return yargv.Cmds(ctx, params, args, map[string]yargv.Handler{
//	    "build": handleBuild,
//	    "serve": handleServe,
//	}, handleDefault)
func Cmds(ctx context.Context, params *Params, args []string, handlers map[string]Handler, noMatch FallbackHandler) error {
	for _, key := range params.Keys() {
		h, ok := handlers[key]
		if !ok || h == nil {
			continue
		}
		v, _ := params.Get(key)
		return h(ctx, v, args)
	}
	if noMatch == nil {
		return nil
	}
	return noMatch(ctx, params, args)
}
