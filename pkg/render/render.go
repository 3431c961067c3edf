// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render prints a parse result as a document of the form
// {params: ..., args: [...]}.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/yargv/pkg/tui"
	"github.com/yeetrun/yargv/pkg/yargv"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatTree Format = "tree"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported output formats.
var Formats = []string{string(FormatJSON), string(FormatYAML), string(FormatTOML), string(FormatHCL), string(FormatTree)}

func ParseFormat(s string) (Format, error) {
	if slices.Contains(Formats, s) {
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Encode writes params and args to w in format f. Only the tree format uses c.
// JSON and YAML keep the order in which parameters were seen; TOML sorts keys.
func Encode(w io.Writer, f Format, params *yargv.Params, args []string, c tui.Colorizer) error {
	if params == nil {
		params = new(yargv.Params)
	}
	if args == nil {
		args = []string{}
	}
	switch f {
	case FormatJSON:
		return encodeJSON(w, params, args)
	case FormatYAML:
		return encodeYAML(w, params, args)
	case FormatTOML:
		return encodeTOML(w, params, args)
	case FormatHCL:
		return encodeHCL(w, params, args)
	case FormatTree:
		return encodeTree(w, params, args, c)
	}
	return fmt.Errorf("unknown output format %q", f)
}

type document struct {
	Params *yargv.Params `json:"params"`
	Args   []string      `json:"args"`
}

func encodeJSON(w io.Writer, params *yargv.Params, args []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Params: params, Args: args})
}

func encodeYAML(w io.Writer, params *yargv.Params, args []string) error {
	pn, err := paramsNode(params)
	if err != nil {
		return err
	}
	an := new(yaml.Node)
	if err := an.Encode(args); err != nil {
		return err
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		keyNode("params"), pn,
		keyNode("args"), an,
	}}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// paramsNode builds a mapping node that preserves the key order of p.
func paramsNode(p *yargv.Params) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		var vn *yaml.Node
		if sub, ok := v.(*yargv.Params); ok {
			var err error
			if vn, err = paramsNode(sub); err != nil {
				return nil, err
			}
		} else {
			vn = new(yaml.Node)
			if err := vn.Encode(v); err != nil {
				return nil, fmt.Errorf("failed to encode %q: %w", key, err)
			}
		}
		n.Content = append(n.Content, keyNode(key), vn)
	}
	return n, nil
}

func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func encodeTOML(w io.Writer, params *yargv.Params, args []string) error {
	return toml.NewEncoder(w).Encode(map[string]any{
		"params": params.Map(),
		"args":   args,
	})
}

func encodeTree(w io.Writer, params *yargv.Params, args []string, c tui.Colorizer) error {
	var b strings.Builder
	writeParams(&b, params, 0, c)
	b.WriteString(c.Dim("args:"))
	if len(args) == 0 {
		b.WriteString(" " + c.Dim("(none)"))
	}
	for _, a := range args {
		b.WriteString(" " + c.Value(a))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeParams(b *strings.Builder, p *yargv.Params, depth int, c tui.Colorizer) {
	indent := strings.Repeat("  ", depth)
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		switch v := v.(type) {
		case *yargv.Params:
			fmt.Fprintf(b, "%s%s\n", indent, c.Command(key))
			writeParams(b, v, depth+1, c)
		case map[string]any:
			fmt.Fprintf(b, "%s%s:\n", indent, c.Key(key))
			for _, k := range slices.Sorted(maps.Keys(v)) {
				fmt.Fprintf(b, "%s  %s = %s\n", indent, c.Key(k), c.Value(scalar(v[k])))
			}
		default:
			fmt.Fprintf(b, "%s%s = %s\n", indent, c.Key(key), c.Value(scalar(v)))
		}
	}
}

func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = scalar(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			parts = append(parts, k+"="+scalar(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v)
}
