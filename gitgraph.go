// Package gitgraph renders a git repository's commit graph, annotated with
// the files and folders each commit touched, to an image via an external
// Mermaid renderer.
//
// Related packages: config, graph, render, runner, model, vcs, vcs/gitcli
package gitgraph

import "github.com/jeffrom/gitgraph/config"

// Config holds most of the configuration variables for gitgraph. This struct
// is intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/jeffrom/gitgraph/config Config" for more information.
type Config = config.Config
