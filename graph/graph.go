// Package graph assembles the Mermaid document describing a repository's
// history: one node per commit labeled with the paths it touched, one edge
// per parent relationship.
package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeffrom/gitgraph/config"
	"github.com/jeffrom/gitgraph/model"
	"github.com/jeffrom/gitgraph/vcs"
)

type Builder struct {
	cfg config.Config
	vcs vcs.Interface
}

func NewBuilder(cfg config.Config, vcsi vcs.Interface) *Builder {
	return &Builder{
		cfg: cfg,
		vcs: vcsi,
	}
}

// Build folds each commit's changes into a Mermaid graph document. Nodes
// appear in input order, each followed by its incoming parent edges. A
// commit whose changes can't be read gets an empty label rather than
// aborting the build.
func (b *Builder) Build(ctx context.Context, commits []*model.Commit) string {
	doc := &strings.Builder{}
	direction := b.cfg.Direction
	if direction == "" {
		direction = "TD"
	}
	fmt.Fprintf(doc, "graph %s\n", direction)

	releases := b.readReleases(ctx)
	var tagged []string
	for _, c := range commits {
		changes, err := b.vcs.ReadChanges(ctx, c.ID)
		if err != nil {
			b.cfg.Errorf("reading changes for commit %s: %v", c.ShortID(), err)
			changes = nil
		}
		tags := releases[c.ID]
		fmt.Fprintf(doc, "  %s[\"%s\"]\n", c.ID, nodeLabel(c.ID, changes, tags))
		for _, parent := range c.Parents {
			fmt.Fprintf(doc, "  %s --> %s\n", parent, c.ID)
		}
		if len(tags) > 0 {
			tagged = append(tagged, c.ID)
		}
	}

	if len(tagged) > 0 {
		doc.WriteString("  classDef release stroke:#2f9e44,stroke-width:2px\n")
		for _, id := range tagged {
			fmt.Fprintf(doc, "  class %s release\n", id)
		}
	}
	return doc.String()
}

var labelEscaper = strings.NewReplacer(`"`, `\"`, `'`, `\'`)

func nodeLabel(id string, changes *model.Changes, tags []string) string {
	text := "No changes"
	if !changes.Empty() {
		var parts []string
		if len(changes.Dirs) > 0 {
			parts = append(parts, "Folders:<br>"+strings.Join(changes.Dirs, "<br>"))
		}
		if len(changes.Files) > 0 {
			parts = append(parts, "Files:<br>"+strings.Join(changes.Files, "<br>"))
		}
		text = strings.Join(parts, "<br>")
	}

	head := id
	if len(tags) > 0 {
		head += " (" + strings.Join(tags, ", ") + ")"
	}
	return labelEscaper.Replace(head + "<br>" + text)
}
