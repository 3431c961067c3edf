// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Params is the parsed parameter state of one scope, in the order keys were
// first set. Values are whatever the key's combinator produced; a descended
// sub-command is stored as a nested *Params under its canonical name.
type Params struct {
	keys   []string
	values map[string]any
}

func newParams() *Params {
	return &Params{values: make(map[string]any)}
}

func (p *Params) set(key string, v any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Len returns the number of keys set.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in the order they were first set.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Get returns the state stored for key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key was set.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Sub returns the params of the sub-command named name, or nil if that
// sub-command was not selected.
func (p *Params) Sub(name string) *Params {
	v, _ := p.Get(name)
	sub, _ := v.(*Params)
	return sub
}

// Count returns the number of times a Flag or bare Key was seen: 0 when
// unset, 1 for true, n for a count of n.
func (p *Params) Count(key string) int {
	v, _ := p.Get(key)
	return count(v)
}

func count(v any) int {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
	case int:
		return v
	}
	return 0
}

// String returns the state of key if it is a single string. It reports false
// for the Maybe sentinel, lists and other state shapes.
func (p *Params) String(key string) (string, bool) {
	v, _ := p.Get(key)
	s, ok := v.(string)
	return s, ok
}

// Strings returns the string values of key: a single string yields one
// element, a list yields its string elements in order.
func (p *Params) Strings(key string) []string {
	v, _ := p.Get(key)
	switch v := v.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Map returns a deep copy of p as plain maps, with nested *Params converted
// to map[string]any.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, p.Len())
	if p == nil {
		return out
	}
	for _, k := range p.keys {
		out[k] = plain(p.values[k])
	}
	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case *Params:
		return v.Map()
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = plain(e)
		}
		return m
	case []any:
		l := make([]any, len(v))
		for i, e := range v {
			l[i] = plain(e)
		}
		return l
	}
	return v
}

// MarshalJSON encodes p as a JSON object with keys in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", k, err)
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Each calls fn for every key in insertion order.
func (p *Params) Each(fn func(key string, v any)) {
	for _, k := range p.Keys() {
		fn(k, p.values[k])
	}
}
