// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import "slices"

// Options controls parsing behavior beyond the configuration itself.
type Options struct {
	// ImplicitLists makes a repeated Value, OneOf or KeyValue parameter
	// collect its values into a []any instead of replacing the previous
	// value. Without it, lists come only from Many.
	ImplicitLists bool

	// Terminator makes "--" end flag parsing. The "--" itself is dropped and
	// every argument after it is positional, verbatim.
	Terminator bool
}

// Parse parses args (without the program name) against cfg and returns the
// parameter state and the positional arguments in their original order.
//
// A nil cfg is an empty Scope: every argument is positional and any flag is
// an unknown parameter.
func Parse(args []string, cfg Config) (*Params, []string, error) {
	return ParseWithOptions(args, cfg, Options{})
}

// ParseWithOptions is Parse with explicit Options.
func ParseWithOptions(args []string, cfg Config, opts Options) (*Params, []string, error) {
	if cfg == nil {
		cfg = Scope(nil)
	}
	root, next := cfg.root()
	e := &engine{
		params:     newParams(),
		positional: []string{},
		next:       next,
	}
	e.cur = e.params
	if err := e.enter(root); err != nil {
		return nil, nil, err
	}
	var verbatim []string
	if opts.Terminator {
		args, verbatim = splitTerminator(args)
	}
	in := Input{
		toks:          tokenize(args, false),
		implicitLists: opts.ImplicitLists,
	}
	for in.Len() > 0 {
		var err error
		if in, err = e.step(in); err != nil {
			return nil, nil, err
		}
	}
	// Arguments after "--" never select a sub-command.
	e.positional = append(e.positional, verbatim...)
	return e.params, e.positional, nil
}

// splitTerminator cuts args at the first "--", dropping it.
func splitTerminator(args []string) (head, tail []string) {
	i := slices.Index(args, doubleDash)
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

// engine holds the state of a single Parse call.
type engine struct {
	params     *Params // root
	cur        *Params // params of the active scope
	scope      *scope  // active scope
	next       NextFunc
	path       []string
	positional []string
}

// step consumes the token at the front of in.
func (e *engine) step(in Input) (Input, error) {
	tok, _ := in.Peek()
	switch {
	case tok.Kind == KindValue:
		return in.advance(1), e.value(tok.Text)
	case tok.Kind.isFlag():
		return e.flag(in)
	default:
		// A key is only valid directly after the flag that owns it.
		return in, &UnknownParameterError{Flag: ":" + tok.Text, Path: e.pathCopy()}
	}
}

// value either descends into the sub-command named v or records v as positional.
func (e *engine) value(v string) error {
	if name, sub, ok := e.scope.sub(v); ok {
		// A static sub-command ends the dynamic chain.
		e.next = nil
		return e.descend(name, sub)
	}
	if e.next != nil {
		sub, next, err := e.next(v)
		if err != nil {
			return err
		}
		e.next = next
		return e.descend(v, sub)
	}
	e.positional = append(e.positional, v)
	return nil
}

// flag resolves the flag at the front of in and runs its combinator.
func (e *engine) flag(in Input) (Input, error) {
	tok, _ := in.Peek()
	written := flagText(in)
	key, fn, ok := e.scope.param(tok.Text)
	if !ok {
		return in, &UnknownParameterError{Flag: written, Path: e.pathCopy()}
	}
	prior, _ := e.cur.Get(key)
	rest, state, err := fn(in.advance(1), prior)
	if err != nil {
		return in, &ParamError{Flag: written, Path: e.pathCopy(), Err: err}
	}
	if t, ok := rest.Peek(); ok && t.Kind == KindKey {
		return in, &UnknownParameterError{Flag: written, Path: e.pathCopy()}
	}
	e.cur.set(key, state)
	return rest, nil
}

// descend attaches fresh params for a sub-command and makes its scope active.
// There is no way back to the parent scope.
func (e *engine) descend(name string, sub Scope) error {
	child := newParams()
	e.cur.set(name, child)
	e.cur = child
	e.path = append(e.path, name)
	return e.enter(sub)
}

func (e *engine) enter(s Scope) error {
	r, err := resolve(s)
	if err != nil {
		return err
	}
	e.scope = r
	return nil
}

func (e *engine) pathCopy() []string {
	if len(e.path) == 0 {
		return nil
	}
	return append([]string(nil), e.path...)
}

// flagText renders the flag at the front of in the way it was written:
// "--name" for long flags, "-n" otherwise, plus any ":key" that follows.
func flagText(in Input) string {
	toks := in.Tokens()
	prefix := "-"
	if toks[0].Kind == KindLong {
		prefix = doubleDash
	}
	s := prefix + toks[0].Text
	if len(toks) > 1 && toks[1].Kind == KindKey {
		s += ":" + toks[1].Text
	}
	return s
}
