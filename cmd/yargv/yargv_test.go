// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runCLI(t *testing.T, dir string, args ...string) (int, string, string) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunBuildJSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "-o", "json", "b", "--minify", "a.ts")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := `{
  "params": {
    "output": "json",
    "b": {
      "minify": true
    }
  },
  "args": [
    "a.ts"
  ]
}
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunServeTree(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "serve", "--port", "8000")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := "serve\n  port = \"8000\"\nargs: (none)\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInspect(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "inspect", "--", "--define:DEBUG=true", "-ab")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := `long   "define"
key    "DEBUG"
value  "true"
flag   "a"
flag   "b"
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "unknown command", args: []string{"watch"}, wantStderr: "Error: unknown sub-command: watch\nRun 'yargv --help' for a list of commands.\n"},
		{name: "unknown parameter", args: []string{"build", "--watch", "a.ts"}, wantStderr: "Error: unknown parameter: --watch\n"},
		{name: "missing value", args: []string{"build", "--outdir"}, wantStderr: "Error: expected value for: --outdir\n"},
		{name: "build without entry", args: []string{"build", "--minify"}, wantStderr: "Error: 'build' requires at least 1 argument(s), got 0\n"},
		{name: "port out of range", args: []string{"serve", "--port", "99999"}, wantStderr: "Error: invalid port \"99999\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("unexpected stdout:\n%s", stdout)
			}
			if diff := cmp.Diff(tt.wantStderr, stderr); diff != "" {
				t.Errorf("stderr mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"--help", "-v"}} {
		code, stdout, _ := runCLI(t, "", args...)
		if code != 0 {
			t.Errorf("%q: exit code = %d", args, code)
		}
		if !strings.Contains(stdout, "Commands:") {
			t.Errorf("%q: usage not printed:\n%s", args, stdout)
		}
	}

	_, stdout, _ := runCLI(t, "", "--help", "serve")
	if !strings.Contains(stdout, "Usage: yargv [global flags] serve") {
		t.Errorf("serve usage not printed:\n%s", stdout)
	}
}

func TestRunVerboseLogsTokens(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "-vv", "inspect", "x")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	for _, want := range []string{`token flag("v")`, `token value("inspect")`, "inspect: 0 params, 1 args"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if stdout != "value  \"x\"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunVerboseLogsTerminatedTokens(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-vv", "inspect", "--", "-x")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, `token value("-x")`) {
		t.Errorf("stderr missing terminated value token:\n%s", stderr)
	}
	if strings.Contains(stderr, `token short("x")`) {
		t.Errorf("argument after -- logged as a flag:\n%s", stderr)
	}
}

func TestRunTerminatedPositional(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "-o", "json", "--", "hello")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := "{\n  \"params\": {\n    \"output\": \"json\"\n  },\n  \"args\": [\n    \"hello\"\n  ]\n}\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPrefs(t *testing.T) {
	dir := t.TempDir()
	prefs := "output = \"json\"\nimplicit_lists = true\n"
	if err := os.WriteFile(filepath.Join(dir, prefsFileName), []byte(prefs), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, nested, "build", "-f", "esm", "-f", "cjs", "index.ts")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	want := `{
  "params": {
    "build": {
      "format": [
        "esm",
        "cjs"
      ]
    }
  },
  "args": [
    "index.ts"
  ]
}
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	// The command line overrides the preferred output format.
	_, stdout, _ = runCLI(t, nested, "-o", "tree", "build", "index.ts")
	if want := "output = \"tree\"\nbuild\nargs: index.ts\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunInvalidPrefs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, prefsFileName), []byte("output = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCLI(t, dir, "serve")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, "failed to load preferences") {
		t.Errorf("stderr = %q, want a preferences warning", stderr)
	}
	if stdout != "serve\nargs: (none)\n" {
		t.Errorf("stdout = %q, want the default tree output", stdout)
	}
}
