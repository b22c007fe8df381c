package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := New(nil)
	if cfg.Direction != "TD" {
		t.Errorf("expected default direction %q, got %q", "TD", cfg.Direction)
	}
	if cfg.Quiet || cfg.Verbose {
		t.Error("expected quiet and verbose to default off")
	}
}

func TestOverrides(t *testing.T) {
	cfg := New(&Config{Repo: "/some/repo", Direction: "LR", Limit: 10})
	if cfg.Repo != "/some/repo" {
		t.Errorf("expected repo override, got %q", cfg.Repo)
	}
	if cfg.Direction != "LR" {
		t.Errorf("expected direction override, got %q", cfg.Direction)
	}
	if cfg.Limit != 10 {
		t.Errorf("expected limit override, got %d", cfg.Limit)
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name      string
		cfg       *Config
		printOnly bool
		wantErr   bool
	}{
		{name: "empty", cfg: &Config{}, wantErr: true},
		{name: "repo-only", cfg: &Config{Repo: "."}, wantErr: true},
		{name: "repo-only-print", cfg: &Config{Repo: "."}, printOnly: true},
		{name: "no-output", cfg: &Config{Repo: ".", Renderer: "mmdc"}, wantErr: true},
		{name: "full", cfg: &Config{Repo: ".", Renderer: "mmdc", Output: "graph.png"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New(tc.cfg)
			err := cfg.Validate(tc.printOnly)
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestQuietSuppressesPrintf(t *testing.T) {
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}
	tio := TerminalIO{Stdout: ob, Stderr: eb}
	cfg := NewWithTerminalIO(&Config{Quiet: true}, &tio)

	cfg.Printf("should not appear")
	cfg.Errorf("should appear: %d", 1)

	if ob.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", ob.String())
	}
	if !strings.Contains(eb.String(), "should appear: 1") {
		t.Errorf("expected stderr output, got %q", eb.String())
	}
}
