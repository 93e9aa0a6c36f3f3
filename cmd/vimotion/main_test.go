package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestParseFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts, err := parseFlags([]string{"-c", "x.toml", "-log-level", "debug", "-keys", "3w", "-s", "-o", "out.txt", "in.txt"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if opts.ConfigPath != "x.toml" {
		t.Errorf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", opts.LogLevel)
	}
	if opts.Keys != "3w" || !opts.Select || opts.Output != "out.txt" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.File != "in.txt" {
		t.Errorf("File = %q", opts.File)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"-log-level", "loud"}},
		{"two files", []string{"a.txt", "b.txt"}},
		{"output without keys", []string{"-o", "out.txt"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if _, err := parseFlags(tt.args, &stdout, &stderr); err == nil {
				t.Error("parseFlags() should fail")
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "vimotion dev") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	if !strings.Contains(stderr.String(), "VIMOTION_PAGE_SIZE") {
		t.Errorf("usage should list environment overrides, got %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-level", "loud"}, &stdout, &stderr); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRun_Replay(t *testing.T) {
	file := writeFile(t, "in.txt", "one two\nthree\n")
	cfg := writeFile(t, "config.toml", "[log]\nlevel = \"error\"\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfg, "-keys", "jfe", file}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr.String())
	}
	if stdout.String() != "one two\nthree\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "cursor 2:4 (applied)") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_ReplayOutput(t *testing.T) {
	file := writeFile(t, "in.txt", "abc\n")
	cfg := writeFile(t, "config.toml", "[log]\nlevel = \"error\"\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfg, "-keys", "$X", "-o", out, file}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "ab\n" {
		t.Errorf("output = %q", data)
	}

	orig, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(orig) != "abc\n" {
		t.Errorf("input file changed to %q", orig)
	}
}

func TestRun_ReplayBadKeys(t *testing.T) {
	cfg := writeFile(t, "config.toml", "")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfg, "-keys", "<Nope>"}, &stdout, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

func TestRun_BadConfig(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[editor]\npage_size = 0\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-c", cfg, "-keys", "w"}, &stdout, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "failed to initialize") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
