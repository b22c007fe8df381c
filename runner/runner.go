// Package runner manages command-line execution
package runner

import (
	"context"
	"errors"

	"github.com/jeffrom/gitgraph/config"
	"github.com/jeffrom/gitgraph/graph"
	"github.com/jeffrom/gitgraph/render"
	"github.com/jeffrom/gitgraph/vcs"
)

// ErrNoCommits is returned when the repository history comes back empty,
// the one condition that short-circuits a run.
var ErrNoCommits = errors.New("runner: no commits found")

type Runner struct {
	cfg      config.Config
	vcs      vcs.Interface
	builder  *graph.Builder
	renderer *render.Renderer
}

func New(cfg config.Config, vcsi vcs.Interface) *Runner {
	return &Runner{
		cfg:      cfg,
		vcs:      vcsi,
		builder:  graph.NewBuilder(cfg, vcsi),
		renderer: render.New(cfg),
	}
}

// BuildDocument reads the commit list and folds each commit's changes into
// a Mermaid document. A failed log read is logged and downgraded to an
// empty history.
func (r *Runner) BuildDocument(ctx context.Context) (string, error) {
	commits, err := r.vcs.ReadCommits(ctx)
	if err != nil {
		r.cfg.Errorf("reading commits: %v", err)
		commits = nil
	}
	if len(commits) == 0 {
		return "", ErrNoCommits
	}
	return r.builder.Build(ctx, commits), nil
}

// Run builds the graph document and renders it to cfg.Output. Renderer
// failure is logged and swallowed; the scratch file is cleaned up either
// way.
func (r *Runner) Run(ctx context.Context) error {
	doc, err := r.BuildDocument(ctx)
	if err != nil {
		return err
	}
	if err := r.renderer.Render(ctx, doc, r.cfg.Output); err != nil {
		r.cfg.Errorf("rendering image: %v", err)
		return nil
	}
	r.cfg.Printf("wrote %s", r.cfg.Output)
	return nil
}
