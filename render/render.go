// Package render hands a graph document to an external renderer binary
// (mermaid-cli or anything with the same -i/-o flags) through a scratch
// file.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"

	"github.com/jeffrom/gitgraph/config"
)

// ScratchFile is written next to wherever the tool runs and removed after
// the renderer exits, whether or not it succeeded.
const ScratchFile = "temp.mmd"

var CommandContext = exec.CommandContext

type Renderer struct {
	cfg config.Config
}

func New(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Render(ctx context.Context, doc, output string) error {
	if err := ioutil.WriteFile(ScratchFile, []byte(doc), 0644); err != nil {
		return fmt.Errorf("render: writing scratch file: %w", err)
	}
	defer func() {
		if err := os.Remove(ScratchFile); err != nil && !os.IsNotExist(err) {
			r.cfg.Errorf("render: removing scratch file: %v", err)
		}
	}()

	args := []string{"-i", ScratchFile, "-o", output}
	r.cfg.Debugf("+ %s -i %s -o %s", r.cfg.Renderer, ScratchFile, output)
	cmd := CommandContext(ctx, r.cfg.Renderer, args...)

	eb := &bytes.Buffer{}
	cmd.Stderr = eb
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("exec: %s %q failed: %s (%w)", r.cfg.Renderer, args, eb.String(), err)
	}
	return nil
}
