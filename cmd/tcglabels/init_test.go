package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	te := newTestEnv(t, nil)

	if code := runMain(t.Context(), []string{"init", dir}, te.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, te.stderr.String())
	}
	for _, name := range []string{"return_address.txt", "label_template.html", "style.css"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(te.stdout.String(), "Created "+name) {
			t.Errorf("stdout missing Created %s:\n%s", name, te.stdout.String())
		}
	}
}

func TestRunMain_InitKeepsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	addr := filepath.Join(dir, "return_address.txt")
	writeFile(t, addr, "My Shop\n1 Card Ln")
	te := newTestEnv(t, nil)

	if code := runMain(t.Context(), []string{"init", dir, "--dialect", "go"}, te.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, te.stderr.String())
	}

	got, err := os.ReadFile(addr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "My Shop\n1 Card Ln" {
		t.Errorf("return address overwritten: %q", got)
	}
	if !strings.Contains(te.stdout.String(), "Skipped return_address.txt (already exists)") {
		t.Errorf("stdout:\n%s", te.stdout.String())
	}
}

func TestRunMain_InitErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     func(dir string) []string
		wantCode int
		wantErr  string
	}{
		{"unknown dialect", func(dir string) []string { return []string{"init", dir, "-d", "mustache"} }, ExitUsage, "mustache"},
		{"two directories", func(dir string) []string { return []string{"init", dir, dir} }, ExitUsage, "at most one"},
		{"missing directory", func(dir string) []string { return []string{"init", filepath.Join(dir, "nope")} }, ExitIO, "init "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t, nil)
			code := runMain(t.Context(), tt.args(t.TempDir()), te.Environment)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d; stderr:\n%s", code, tt.wantCode, te.stderr.String())
			}
			if !strings.Contains(te.stderr.String(), tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, te.stderr.String())
			}
		})
	}
}
