// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import (
	"maps"
	"slices"
)

// Combinator consumes tokens for one parameter and folds them into its state.
//
// It receives the remaining input and the parameter's prior state (nil on the
// first occurrence) and returns the input left after consumption and the new
// state. On error the returned Input must be the one it was given.
type Combinator func(in Input, state any) (Input, any, error)

func (Combinator) entry() {}

// Matcher reports whether a value is acceptable to OneOf.
// *regexp.Regexp implements Matcher; the pattern is not anchored on the
// caller's behalf.
type Matcher interface {
	MatchString(s string) bool
}

// Exact is a Matcher accepting exactly one case-sensitive string.
type Exact string

// MatchString implements Matcher.
func (e Exact) MatchString(s string) bool {
	return string(e) == s
}

// Value consumes exactly one value token.
func Value() Combinator {
	return func(in Input, state any) (Input, any, error) {
		v, rest, err := in.Next(KindValue)
		if err != nil {
			return in, state, err
		}
		return rest, in.repeat(state, v), nil
	}
}

// Flag consumes nothing. The first occurrence yields true, every later
// occurrence increments a count: -v is true, -vvv is 3.
func Flag() Combinator {
	return func(in Input, state any) (Input, any, error) {
		return in, bump(state), nil
	}
}

// OneOf consumes one value token matched by at least one of patterns.
func OneOf(patterns ...Matcher) Combinator {
	return func(in Input, state any) (Input, any, error) {
		v, rest, err := in.Next(KindValue)
		if err != nil {
			return in, state, err
		}
		if !slices.ContainsFunc(patterns, func(p Matcher) bool { return p.MatchString(v) }) {
			return in, state, ErrExpectedOneOf
		}
		return rest, in.repeat(state, v), nil
	}
}

// Choices is OneOf over a fixed set of exact strings.
func Choices(values ...string) Combinator {
	patterns := make([]Matcher, len(values))
	for i, v := range values {
		patterns[i] = Exact(v)
	}
	return OneOf(patterns...)
}

// Key consumes a ":key" suffix. The state is a map[string]any keyed by the
// suffix. Bare Key() counts occurrences per key like Flag; Key(inner) stores
// the state inner produces from the tokens that follow.
//
// Key panics if given more than one inner combinator.
func Key(inner ...Combinator) Combinator {
	if len(inner) > 1 {
		panic("yargv: Key accepts at most one inner combinator")
	}
	var fn Combinator
	if len(inner) == 1 {
		fn = inner[0]
	}
	return func(in Input, state any) (Input, any, error) {
		key, rest, err := in.Next(KindKey)
		if err != nil {
			return in, state, err
		}
		prior, _ := state.(map[string]any)
		next := make(map[string]any, len(prior)+1)
		maps.Copy(next, prior)
		if fn == nil {
			next[key] = bump(prior[key])
			return rest, next, nil
		}
		rest, v, err := fn(rest, prior[key])
		if err != nil {
			return in, state, err
		}
		next[key] = v
		return rest, next, nil
	}
}

// KeyValue consumes a ":key" suffix followed by a value, as in
// --define:DEBUG=true or --define:DEBUG true.
func KeyValue() Combinator {
	return Key(Value())
}

// Maybe makes the value of inner optional. If the next token is not a value,
// or inner rejects it, the state becomes true and nothing is consumed.
// Maybe never fails.
func Maybe(inner Combinator) Combinator {
	return func(in Input, state any) (Input, any, error) {
		if tok, ok := in.Peek(); !ok || tok.Kind != KindValue {
			return in, true, nil
		}
		rest, next, err := inner(in, state)
		if err != nil {
			return in, true, nil
		}
		return rest, next, nil
	}
}

// Many collects every result of inner, in order, into a []any.
// inner always starts from a nil state.
func Many(inner Combinator) Combinator {
	return func(in Input, state any) (Input, any, error) {
		rest, v, err := inner(in, nil)
		if err != nil {
			return in, state, err
		}
		prior, _ := state.([]any)
		next := make([]any, len(prior), len(prior)+1)
		copy(next, prior)
		return rest, append(next, v), nil
	}
}

// bump advances a flag counter: nil -> true -> 2 -> 3 ...
func bump(state any) any {
	switch s := state.(type) {
	case int:
		return s + 1
	case bool:
		if s {
			return 2
		}
	}
	return true
}

// repeat applies the repetition policy to a value seen again for the same key.
func (in Input) repeat(prior any, v string) any {
	if !in.implicitLists {
		return v
	}
	switch p := prior.(type) {
	case string:
		return []any{p, v}
	case []any:
		next := make([]any, len(p), len(p)+1)
		copy(next, p)
		return append(next, v)
	}
	return v
}
