package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/gitgraph/config"
	"github.com/jeffrom/gitgraph/runner"
	"github.com/jeffrom/gitgraph/vcs/gitcli"
)

// Version is overridden by go build -X
var Version string

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var printDoc bool
	var readStats bool
	var readAllStats bool
	var printConfig bool
	flags := pflag.NewFlagSet("gitgraph", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfg.Repo, "repo", "r", "", "git repository `path` to analyze")
	flags.StringVar(&cfg.Renderer, "renderer", "", "`path` to the graph renderer executable (mermaid-cli)")
	flags.StringVarP(&cfg.Output, "output", "o", "", "`path` for the output image")
	flags.IntVarP(&cfg.Limit, "limit", "n", 0, "read at most `n` commits")
	flags.StringVarP(&cfg.Direction, "direction", "d", "TD", "graph `direction` (TD, LR, BT, RL)")
	flags.BoolVar(&cfg.NoReleases, "no-releases", false, "don't highlight release tags")
	flags.BoolVarP(&printDoc, "print", "p", false, "print the graph document instead of rendering")
	flags.BoolVarP(&readStats, "stats", "S", false, "print change statistics (with top tens)")
	flags.BoolVarP(&readAllStats, "stats-all", "A", false, "print all change statistics")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	fileCfg, err := readConfigYAML(cfgFile)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return err
		}
		// flags win over the config file when explicitly set
		reapplyChangedFlags(&cfg, flags)
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}

	printOnly := printDoc || readStats || readAllStats
	if err := cfg.Validate(printOnly); err != nil {
		return err
	}
	// done setting up config

	git := gitcli.New(cfg, cfg.Repo)
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if readStats || readAllStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return noCommits(cfg, err)
		}
		return stats.TextSummary(cfg.Term.Stdout, readAllStats)
	}

	if printDoc {
		doc, err := rnr.BuildDocument(ctx)
		if err != nil {
			return noCommits(cfg, err)
		}
		istty := isatty.IsTerminal(os.Stdout.Fd())
		if cfg.Quiet || !istty {
			fmt.Fprintf(cfg.Term.Stdout, "%s", doc)
		} else {
			fmt.Fprintln(cfg.Term.Stdout, doc)
		}
		return nil
	}

	if err := rnr.Run(ctx); err != nil {
		return noCommits(cfg, err)
	}
	return nil
}

func reapplyChangedFlags(cfg *config.Config, flags *pflag.FlagSet) {
	if fl := flags.Lookup("repo"); fl.Changed {
		cfg.Repo = fl.Value.String()
	}
	if fl := flags.Lookup("renderer"); fl.Changed {
		cfg.Renderer = fl.Value.String()
	}
	if fl := flags.Lookup("output"); fl.Changed {
		cfg.Output = fl.Value.String()
	}
	if fl := flags.Lookup("direction"); fl.Changed {
		cfg.Direction = fl.Value.String()
	}
	if fl := flags.Lookup("limit"); fl.Changed {
		if n, err := strconv.Atoi(fl.Value.String()); err == nil {
			cfg.Limit = n
		}
	}
	if fl := flags.Lookup("no-releases"); fl.Changed {
		cfg.NoReleases = fl.Value.String() == "true"
	}
	if fl := flags.Lookup("verbose"); fl.Changed {
		cfg.Verbose = fl.Value.String() == "true"
	}
	if fl := flags.Lookup("quiet"); fl.Changed {
		cfg.Quiet = fl.Value.String() == "true"
	}
}

// noCommits downgrades an empty-history error to a message, matching how
// every other external failure is handled.
func noCommits(cfg config.Config, err error) error {
	if errors.Is(err, runner.ErrNoCommits) {
		cfg.Printf("no commits found in %s", cfg.Repo)
		return nil
	}
	return err
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s

Renders a git repository's commit graph, annotated with the files and
folders each commit changed, to an image via mermaid-cli.

FLAGS
%s

EXAMPLES

# render the graph for the current repository
$ gitgraph -r . --renderer mmdc -o graph.png

# print the mermaid document without rendering
$ gitgraph -r . --print

# left-to-right layout, last 20 commits
$ gitgraph -r . --renderer mmdc -o graph.png -d LR -n 20

# change statistics only
$ gitgraph -r . --stats
`, os.Args[0], flags.FlagUsages())
}

func readConfigYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, ".gitgraph.yaml")
		b, err := ioutil.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
