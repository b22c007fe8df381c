// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/jeffrom/gitgraph/config"
	"github.com/jeffrom/gitgraph/model"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) ReadCommits(ctx context.Context) ([]*model.Commit, error) {
	args := []string{"log", "--pretty=tformat:%h %p"}
	if g.cfg.Limit > 0 {
		args = append(args, "-n", strconv.Itoa(g.cfg.Limit))
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	return parseCommits(b), nil
}

// parseCommits reads "log --pretty=tformat:%h %p" output: one commit per
// line, short hash first, parent short hashes after, newest first.
func parseCommits(b []byte) []*model.Commit {
	var commits []*model.Commit
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		commits = append(commits, &model.Commit{
			ID:      parts[0],
			Parents: parts[1:],
		})
	}
	return commits
}

func (g *Git) ReadChanges(ctx context.Context, commit string) (*model.Changes, error) {
	args := []string{"diff-tree", "--no-commit-id", "--name-only", "-r", commit}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	return parseChanges(b), nil
}

// parseChanges reads "diff-tree --name-only" output: one path per line.
// Directories come from the paths' parents; files at the repository root
// contribute no directory. git always prints forward slashes, so path.Dir
// applies on every platform.
func parseChanges(b []byte) *model.Changes {
	fileSet := make(map[string]struct{})
	dirSet := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		file := strings.TrimSpace(scanner.Text())
		if file == "" {
			continue
		}
		fileSet[file] = struct{}{}
		if dir := path.Dir(file); dir != "." {
			dirSet[dir] = struct{}{}
		}
	}
	return &model.Changes{
		Dirs:  sortedKeys(dirSet),
		Files: sortedKeys(fileSet),
	}
}

func (g *Git) ReadReleases(ctx context.Context) ([]*model.Release, error) {
	args := []string{
		"for-each-ref", "refs/tags",
		"--format=%(refname:short) %(objectname:short) %(*objectname:short)",
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	return parseReleases(b), nil
}

// parseReleases reads for-each-ref output: tag name, the ref's object, and
// for annotated tags the dereferenced commit as a third field.
func parseReleases(b []byte) []*model.Release {
	var releases []*model.Release
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}
		commit := parts[1]
		if len(parts) > 2 {
			commit = parts[2]
		}
		releases = append(releases, &model.Release{Tag: parts[0], Commit: commit})
	}
	return releases
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
