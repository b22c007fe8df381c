// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"

	"github.com/jeffrom/gitgraph/model"
)

type Interface interface {
	// ReadCommits returns every commit with its parent ids, newest first.
	ReadCommits(ctx context.Context) ([]*model.Commit, error)
	// ReadChanges returns the files a commit touched versus its parent,
	// along with their containing directories.
	ReadChanges(ctx context.Context, commit string) (*model.Changes, error)
	// ReadReleases returns each tag and the commit it points at.
	ReadReleases(ctx context.Context) ([]*model.Release, error)
}
