// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Mode selects when a Colorizer emits escape sequences.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// Modes lists the accepted color modes.
var Modes = []string{string(ModeAuto), string(ModeAlways), string(ModeNever)}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("invalid color mode %q", s)
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer decides whether output written to out is colored.
// ModeAuto colors only terminals, and only when NO_COLOR is unset and TERM
// is not dumb. ModeAlways ignores the environment.
func NewColorizer(mode Mode, out io.Writer) Colorizer {
	switch mode {
	case ModeAlways:
		return Colorizer{Enabled: true}
	case ModeNever:
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	p := color.New(attrs...)
	p.EnableColor()
	return p.Sprint(text)
}

func (c Colorizer) Key(s string) string     { return c.Wrap(s, color.FgCyan) }
func (c Colorizer) Value(s string) string   { return c.Wrap(s, color.FgGreen) }
func (c Colorizer) Command(s string) string { return c.Wrap(s, color.Bold, color.FgMagenta) }
func (c Colorizer) Dim(s string) string     { return c.Wrap(s, color.FgHiBlack) }
func (c Colorizer) Error(s string) string   { return c.Wrap(s, color.FgRed) }
