package runner

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffrom/gitgraph/config"
	"github.com/jeffrom/gitgraph/model"
	"github.com/jeffrom/gitgraph/render"
	"github.com/jeffrom/gitgraph/vcs"
)

func mockTermIO() (config.TerminalIO, *bytes.Buffer, *bytes.Buffer) {
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}
	tio := config.TerminalIO{Stdout: ob, Stderr: eb}
	return tio, ob, eb
}

func basicMock() *vcs.Mock {
	return vcs.NewMock().
		SetCommits(
			&model.Commit{ID: "abc123", Parents: []string{"def456"}},
			&model.Commit{ID: "def456"},
		).
		SetChanges("abc123", &model.Changes{
			Dirs:  []string{"src"},
			Files: []string{"src/main.go"},
		})
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestBuildDocument(t *testing.T) {
	tio, _, _ := mockTermIO()
	cfg := config.NewWithTerminalIO(&config.Config{Repo: "."}, &tio)
	rnr := New(cfg, basicMock())

	doc, err := rnr.BuildDocument(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, expect := range []string{"graph TD", "def456 --> abc123", "src/main.go"} {
		if !strings.Contains(doc, expect) {
			t.Errorf("expected document to contain %q:\n%s", expect, doc)
		}
	}
}

func TestBuildDocumentEmptyRepo(t *testing.T) {
	tio, _, _ := mockTermIO()
	cfg := config.NewWithTerminalIO(&config.Config{Repo: "."}, &tio)
	rnr := New(cfg, vcs.NewMock())

	if _, err := rnr.BuildDocument(context.Background()); !errors.Is(err, ErrNoCommits) {
		t.Fatalf("expected ErrNoCommits, got %v", err)
	}
}

func TestBuildDocumentDowngradesLogFailure(t *testing.T) {
	tio, _, eb := mockTermIO()
	cfg := config.NewWithTerminalIO(&config.Config{Repo: "."}, &tio)
	rnr := New(cfg, vcs.NewMock().SetFailAll())

	if _, err := rnr.BuildDocument(context.Background()); !errors.Is(err, ErrNoCommits) {
		t.Fatalf("expected ErrNoCommits, got %v", err)
	}
	if !strings.Contains(eb.String(), "reading commits") {
		t.Errorf("expected logged failure, got %q", eb.String())
	}
}

func TestRun(t *testing.T) {
	dir := chdirTemp(t)
	defer swapRenderCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		// stand in for the renderer: "convert" the scratch file by copying
		return exec.CommandContext(ctx, "cp", args[1], args[3])
	})()

	tio, _, _ := mockTermIO()
	cfg := config.NewWithTerminalIO(&config.Config{
		Repo:     ".",
		Renderer: "fake-renderer",
		Output:   filepath.Join(dir, "out.png"),
	}, &tio)
	rnr := New(cfg, basicMock())

	if err := rnr.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "def456 --> abc123") {
		t.Errorf("expected rendered output to hold the document, got %q", b)
	}
	if _, err := os.Stat(render.ScratchFile); !os.IsNotExist(err) {
		t.Errorf("expected scratch file to be removed, stat err: %v", err)
	}
}

func TestRunSwallowsRendererFailure(t *testing.T) {
	chdirTemp(t)
	defer swapRenderCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	})()

	tio, _, eb := mockTermIO()
	cfg := config.NewWithTerminalIO(&config.Config{
		Repo:     ".",
		Renderer: "fake-renderer",
		Output:   "out.png",
	}, &tio)
	rnr := New(cfg, basicMock())

	if err := rnr.Run(context.Background()); err != nil {
		t.Fatalf("expected renderer failure to be swallowed, got %v", err)
	}
	if !strings.Contains(eb.String(), "rendering image") {
		t.Errorf("expected logged renderer failure, got %q", eb.String())
	}
	if _, err := os.Stat(render.ScratchFile); !os.IsNotExist(err) {
		t.Errorf("expected scratch file to be removed, stat err: %v", err)
	}
}

func swapRenderCommand(fn func(ctx context.Context, name string, args ...string) *exec.Cmd) func() {
	orig := render.CommandContext
	render.CommandContext = fn
	return func() { render.CommandContext = orig }
}
