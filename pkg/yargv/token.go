// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Kind classifies a Token.
type Kind uint8

const (
	// KindValue is a bare word or the right-hand side of "=".
	KindValue Kind = iota
	// KindLong is the name of a --long flag, folded to camelCase.
	KindLong
	// KindShort is the character of a single -x flag.
	KindShort
	// KindFlag is one character of a clustered -xyz group.
	KindFlag
	// KindKey is the ":suffix" attached to a long or short flag, without the colon.
	KindKey
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindLong:
		return "long"
	case KindShort:
		return "short"
	case KindFlag:
		return "flag"
	case KindKey:
		return "key"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// isFlag reports whether tokens of this kind name a parameter.
func (k Kind) isFlag() bool {
	return k == KindLong || k == KindShort || k == KindFlag
}

// Token is a classified fragment of one raw argument.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

const doubleDash = "--"

var (
	reLong    = regexp.MustCompile(`^--([a-zA-Z][\w-]+)(?::([^=]*))?(?:=(.*))?$`)
	reCluster = regexp.MustCompile(`^-([a-zA-Z0-9_$%]{2,})$`)
	reShort   = regexp.MustCompile(`^-([a-zA-Z0-9_$%])(?::([^=]*))?(?:=(.*))?$`)
)

// Tokenize classifies raw arguments into a flat token stream.
//
// Rules are tried in order and the first match wins:
//   - --name[:key][=value] yields KindLong, then optional KindKey and KindValue.
//     The name is folded from kebab-case to camelCase (--no-op is "noOp").
//   - -xyz (two or more of [A-Za-z0-9_$%]) yields one KindFlag per character.
//   - -x[:key][=value] yields KindShort, then optional KindKey and KindValue.
//   - anything else yields a single KindValue with the raw string.
//
// Empty captures produce no token, so "--format=" is just KindLong("format").
func Tokenize(args []string) []Token {
	return tokenize(args, false)
}

// TokenizeWithOptions is Tokenize honoring opts.Terminator: arguments after
// "--" become KindValue tokens verbatim, as ParseWithOptions treats them.
func TokenizeWithOptions(args []string, opts Options) []Token {
	return tokenize(args, opts.Terminator)
}

func tokenize(args []string, terminator bool) []Token {
	toks := make([]Token, 0, len(args))
	for i, arg := range args {
		if terminator && arg == doubleDash {
			for _, rest := range args[i+1:] {
				toks = append(toks, Token{Kind: KindValue, Text: rest})
			}
			break
		}
		toks = appendArg(toks, arg)
	}
	return toks
}

// appendArg appends the tokens of a single raw argument.
func appendArg(toks []Token, arg string) []Token {
	if m := reLong.FindStringSubmatch(arg); m != nil {
		return appendFlag(toks, KindLong, camelCase(m[1]), m[2], m[3])
	}
	if m := reCluster.FindStringSubmatch(arg); m != nil {
		for _, r := range m[1] {
			toks = append(toks, Token{Kind: KindFlag, Text: string(r)})
		}
		return toks
	}
	if m := reShort.FindStringSubmatch(arg); m != nil {
		return appendFlag(toks, KindShort, m[1], m[2], m[3])
	}
	return append(toks, Token{Kind: KindValue, Text: arg})
}

func appendFlag(toks []Token, kind Kind, name, key, value string) []Token {
	toks = append(toks, Token{Kind: kind, Text: name})
	if key != "" {
		toks = append(toks, Token{Kind: KindKey, Text: key})
	}
	if value != "" {
		toks = append(toks, Token{Kind: KindValue, Text: value})
	}
	return toks
}

// camelCase replaces every "-x" with "X".
func camelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	rs := []rune(name)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '-' && i+1 < len(rs) {
			b.WriteRune(unicode.ToUpper(rs[i+1]))
			i++
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

// Input is an immutable, front-consumable view of a token stream.
// Consuming returns a new Input; the receiver is left untouched, which is
// what lets Maybe roll back a failed attempt.
type Input struct {
	toks          []Token
	implicitLists bool
}

// NewInput returns an Input over toks using the default repetition policy.
func NewInput(toks []Token) Input {
	return Input{toks: toks}
}

// Len returns the number of tokens left.
func (in Input) Len() int {
	return len(in.toks)
}

// Tokens returns the tokens left. The slice must not be modified.
func (in Input) Tokens() []Token {
	return in.toks
}

// Peek returns the next token without consuming it.
func (in Input) Peek() (Token, bool) {
	if len(in.toks) == 0 {
		return Token{}, false
	}
	return in.toks[0], true
}

// Next consumes the next token if it has the given kind.
// On failure the returned Input is the receiver unchanged.
func (in Input) Next(kind Kind) (string, Input, error) {
	tok, ok := in.Peek()
	if !ok || tok.Kind != kind {
		return "", in, expectError(kind)
	}
	return tok.Text, in.advance(1), nil
}

func (in Input) advance(n int) Input {
	in.toks = in.toks[n:]
	return in
}

func expectError(kind Kind) error {
	switch kind {
	case KindValue:
		return ErrExpectedValue
	case KindKey:
		return ErrMissingKey
	}
	return fmt.Errorf("expected %s", kind)
}
