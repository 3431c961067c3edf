// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

// Entry is one named item of a Scope: a Combinator, a nested Scope, or an Alias.
type Entry interface {
	entry()
}

// Scope maps parameter and sub-command names to their entries.
//
//	yargv.Scope{
//	    "format": yargv.Value(),
//	    "f":      yargv.Alias("format"),
//	    "build": yargv.Scope{
//	        "level": yargv.Choices("debug", "info"),
//	    },
//	}
//
// A Combinator entry is a parameter, reached with --name or -n. A Scope entry
// is a sub-command, selected by a positional argument equal to its name. An
// Alias points at another entry of the same scope and may target either.
type Scope map[string]Entry

func (Scope) entry() {}

func (s Scope) root() (Scope, NextFunc) {
	return s, nil
}

// Alias refers to the canonical name of another entry in the same scope.
type Alias string

func (Alias) entry() {}

// NextFunc selects the scope for a sub-command. It is called with the first
// positional argument that no static entry claims, and returns that
// sub-command's scope plus the NextFunc for the sub-command after it (nil
// when no deeper sub-commands exist). Returning an error, typically an
// *UnknownSubCommandError, fails the parse.
type NextFunc func(selector string) (Scope, NextFunc, error)

// Config is the configuration handed to Parse: either a static Scope tree or
// a scope sequence built with Dynamic.
type Config interface {
	root() (Scope, NextFunc)
}

type dynamic struct {
	scope Scope
	next  NextFunc
}

func (d dynamic) root() (Scope, NextFunc) {
	return d.scope, d.next
}

// Dynamic returns a Config whose sub-command scopes are produced on demand.
// root holds the parameters valid before any sub-command is known; next is
// consulted when a positional argument may select a sub-command. This lets a
// sub-command's parameters depend on which sub-command was chosen.
//
// Static Scope entries of root still take precedence. Selecting one of them
// leaves the dynamic chain: later positionals inside it are never passed to
// next.
//
//	cfg := yargv.Dynamic(yargv.Scope{"v": yargv.Flag()}, func(cmd string) (yargv.Scope, yargv.NextFunc, error) {
//	    if cmd == "build" {
//	        return yargv.Scope{"level": yargv.Choices("debug", "info")}, nil, nil
//	    }
//	    return nil, nil, &yargv.UnknownSubCommandError{Name: cmd}
//	})
func Dynamic(root Scope, next NextFunc) Config {
	return dynamic{scope: root, next: next}
}

// scope is a Scope with aliases resolved and entries split by variant.
type scope struct {
	canonical map[string]string // name or alias -> canonical name
	params    map[string]Combinator
	subs      map[string]Scope
}

// resolve validates s and indexes its entries.
func resolve(s Scope) (*scope, error) {
	r := &scope{
		canonical: make(map[string]string, len(s)),
		params:    make(map[string]Combinator),
		subs:      make(map[string]Scope),
	}
	for name, e := range s {
		switch e := e.(type) {
		case Combinator:
			if e == nil {
				return nil, &ConfigError{Name: name, Msg: "nil combinator"}
			}
			r.params[name] = e
			r.canonical[name] = name
		case Scope:
			r.subs[name] = e
			r.canonical[name] = name
		case Alias:
		case nil:
			return nil, &ConfigError{Name: name, Msg: "nil entry"}
		default:
			return nil, &ConfigError{Name: name, Msg: "unsupported entry type"}
		}
	}
	for name, e := range s {
		target, ok := e.(Alias)
		if !ok {
			continue
		}
		switch s[string(target)].(type) {
		case Combinator, Scope:
			r.canonical[name] = string(target)
		case Alias:
			return nil, &ConfigError{Name: name, Msg: "alias of alias " + string(target)}
		default:
			return nil, &ConfigError{Name: name, Msg: "alias of undefined " + string(target)}
		}
	}
	return r, nil
}

// param returns the canonical name and combinator for a flag name.
func (r *scope) param(name string) (string, Combinator, bool) {
	key, ok := r.canonical[name]
	if !ok {
		return "", nil, false
	}
	fn, ok := r.params[key]
	return key, fn, ok
}

// sub returns the canonical name and scope for a sub-command name.
func (r *scope) sub(name string) (string, Scope, bool) {
	key, ok := r.canonical[name]
	if !ok {
		return "", nil, false
	}
	s, ok := r.subs[key]
	return key, s, ok
}
