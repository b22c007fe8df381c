// Package model contains abstract data models.
package model

// Commit is a single node in the history graph. IDs are short hashes, the
// same form git log %h and %p emit.
type Commit struct {
	ID      string   `json:"commit"`
	Parents []string `json:"parents,omitempty"`
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Changes holds the paths a single commit touched relative to its parent.
// Dirs is derived from Files: each file's containing directory, deduplicated,
// with the repository root (empty string) excluded.
type Changes struct {
	Dirs  []string `json:"dirs,omitempty"`
	Files []string `json:"files,omitempty"`
}

func (c *Changes) Empty() bool {
	return c == nil || (len(c.Dirs) == 0 && len(c.Files) == 0)
}

// Release ties a tag name to the commit it points at.
type Release struct {
	Tag    string `json:"tag"`
	Commit string `json:"commit"`
}
