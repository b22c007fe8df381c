package graph

import (
	"context"
	"strings"

	"github.com/blang/semver/v4"
)

// readReleases maps commit ids to the semver tags pointing at them. Tags
// that don't parse as versions are skipped. A failed read is logged and
// treated as no tags; release styling is an annotation, never a reason to
// fail the build.
func (b *Builder) readReleases(ctx context.Context) map[string][]string {
	if b.cfg.NoReleases {
		return nil
	}
	releases, err := b.vcs.ReadReleases(ctx)
	if err != nil {
		b.cfg.Errorf("reading tags: %v", err)
		return nil
	}

	tags := make(map[string][]string)
	for _, rel := range releases {
		t := rel.Tag
		if strings.HasPrefix(t, "v") {
			t = t[1:]
		}
		if _, err := semver.Parse(t); err != nil {
			b.cfg.Debugf("skipping non-semver tag: %s", rel.Tag)
			continue
		}
		tags[rel.Commit] = append(tags[rel.Commit], rel.Tag)
	}
	return tags
}
