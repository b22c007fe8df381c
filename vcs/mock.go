package vcs

import (
	"context"
	"errors"

	"github.com/jeffrom/gitgraph/model"
)

type Mock struct {
	commits     []*model.Commit
	changes     map[string]*model.Changes
	releases    []*model.Release
	failAll     bool
	failChanges bool
}

func NewMock() *Mock {
	return &Mock{
		changes: make(map[string]*model.Changes),
	}
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	m.commits = commits
	return m
}

func (m *Mock) SetChanges(commit string, changes *model.Changes) *Mock {
	m.changes[commit] = changes
	return m
}

func (m *Mock) SetReleases(releases ...*model.Release) *Mock {
	m.releases = releases
	return m
}

// SetFailAll makes every read return an error, for exercising downgrade
// paths.
func (m *Mock) SetFailAll() *Mock {
	m.failAll = true
	return m
}

// SetFailChanges makes only ReadChanges fail.
func (m *Mock) SetFailChanges() *Mock {
	m.failChanges = true
	return m
}

// MustCommits returns the configured commits directly, for tests that
// already hold the mock.
func (m *Mock) MustCommits() []*model.Commit {
	return m.commits
}

func (m *Mock) ReadCommits(ctx context.Context) ([]*model.Commit, error) {
	if m.failAll {
		return nil, errors.New("vcs: mock failure")
	}
	return m.commits, nil
}

func (m *Mock) ReadChanges(ctx context.Context, commit string) (*model.Changes, error) {
	if m.failAll || m.failChanges {
		return nil, errors.New("vcs: mock failure")
	}
	if changes, ok := m.changes[commit]; ok {
		return changes, nil
	}
	return &model.Changes{}, nil
}

func (m *Mock) ReadReleases(ctx context.Context) ([]*model.Release, error) {
	if m.failAll {
		return nil, errors.New("vcs: mock failure")
	}
	return m.releases, nil
}
