// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the combinators. Parse wraps them in a
// *ParamError naming the flag being resolved.
var (
	ErrExpectedValue = errors.New("expected value")
	ErrExpectedOneOf = errors.New("expected one-of")
	ErrMissingKey    = errors.New("missing key")
)

// UnknownParameterError is returned when a flag is not defined in the active scope.
type UnknownParameterError struct {
	Flag string   // As written, e.g. "--format" or "-e:fs"
	Path []string // Sub-commands descended into before the flag appeared
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter: %s", e.Flag)
}

// UnknownSubCommandError is returned by a NextFunc that does not recognize a selector.
type UnknownSubCommandError struct {
	Name string
}

func (e *UnknownSubCommandError) Error() string {
	return fmt.Sprintf("unknown sub-command: %s", e.Name)
}

// ParamError is returned when a combinator rejects the input for a flag.
// The message is the combinator's error followed by the flag, e.g.
// "expected value for: --format".
type ParamError struct {
	Flag string
	Path []string
	Err  error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v for: %s", e.Err, e.Flag)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// ConfigError reports a malformed configuration scope. It indicates a
// programming error in the caller rather than bad user input.
type ConfigError struct {
	Name string
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %q: %s", e.Name, e.Msg)
}
