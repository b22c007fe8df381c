package config

import (
	"errors"
	"fmt"

	"github.com/imdario/mergo"
)

type Config struct {
	Verbose    bool   `json:"verbose,omitempty"`
	Quiet      bool   `json:"quiet,omitempty"`
	Repo       string `json:"repo,omitempty"`
	Renderer   string `json:"renderer,omitempty"`
	Output     string `json:"output,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Direction  string `json:"direction,omitempty"`
	NoReleases bool   `json:"no_releases,omitempty"`

	Term TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Validate checks the attributes needed to render a graph image. printOnly
// skips the renderer and output requirements, for modes that never invoke
// the renderer binary.
func (c Config) Validate(printOnly bool) error {
	if c.Repo == "" {
		return errors.New("config: repo is required")
	}
	if printOnly {
		return nil
	}
	if c.Renderer == "" {
		return errors.New("config: renderer is required")
	}
	if c.Output == "" {
		return errors.New("config: output is required")
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
