// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yargv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamsAccessors(t *testing.T) {
	cfg := Scope{
		"verbose": Flag(),
		"v":       Alias("verbose"),
		"format":  Maybe(Value()),
		"target":  Many(Value()),
		"outdir":  Value(),
		"build":   Scope{},
	}
	params, _, err := Parse([]string{"-vv", "--format", "--target", "es2020", "--target", "node18", "--outdir", "dist", "build"}, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := params.Count("verbose"); got != 2 {
		t.Errorf("Count(verbose) = %d, want 2", got)
	}
	if got := params.Count("format"); got != 1 {
		t.Errorf("Count(format) = %d, want 1 for the sentinel", got)
	}
	if got := params.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
	if _, ok := params.String("format"); ok {
		t.Error("String(format) reported a string for the sentinel")
	}
	if got, ok := params.String("outdir"); !ok || got != "dist" {
		t.Errorf("String(outdir) = %q, %v; want %q, true", got, ok, "dist")
	}
	if diff := cmp.Diff([]string{"es2020", "node18"}, params.Strings("target")); diff != "" {
		t.Errorf("Strings(target) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dist"}, params.Strings("outdir")); diff != "" {
		t.Errorf("Strings(outdir) mismatch (-want +got):\n%s", diff)
	}
	if params.Strings("verbose") != nil {
		t.Error("Strings(verbose) should be nil")
	}
	if sub := params.Sub("build"); sub == nil || sub.Len() != 0 {
		t.Errorf("Sub(build) = %v, want empty params", sub)
	}
	if params.Sub("outdir") != nil {
		t.Error("Sub(outdir) should be nil for a non sub-command")
	}
	if !params.Has("build") || params.Has("serve") {
		t.Error("Has() reported the wrong sub-commands")
	}

	var keys []string
	params.Each(func(key string, v any) { keys = append(keys, key) })
	if diff := cmp.Diff([]string{"verbose", "format", "target", "outdir", "build"}, keys); diff != "" {
		t.Errorf("Each() order mismatch (-want +got):\n%s", diff)
	}
}

func TestNilParams(t *testing.T) {
	var p *Params
	if p.Len() != 0 || p.Keys() != nil || p.Has("x") || p.Sub("x") != nil {
		t.Error("nil *Params should behave as empty")
	}
	if got := p.Map(); len(got) != 0 {
		t.Errorf("Map() = %v, want empty", got)
	}
}

func TestParamsMapIsACopy(t *testing.T) {
	params, _, err := Parse([]string{"--external:fs"}, Scope{"external": Key()})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m := params.Map()
	m["external"].(map[string]any)["fs"] = 99
	if got := params.Map()["external"].(map[string]any)["fs"]; got != true {
		t.Errorf("params changed through Map(): fs = %v", got)
	}
}
