package runner

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats counts how often each file and folder shows up across the
// repository's history.
type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

const statsTop = 10

func (s *Stats) TextSummary(w io.Writer, all bool) error {
	bw := bufio.NewWriter(w)
	p := message.NewPrinter(language.English)
	p.Fprintf(bw, "%d commits\n\n", s.Commits)

	buckets := s.sortedBuckets()
	for _, name := range buckets {
		counts := s.Counts[name]
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].n > counts[j].n
		})
		if !all && len(counts) > statsTop {
			counts = counts[:statsTop]
		}
		p.Fprintf(bw, "%s:\n", toTitle(name))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			p.Fprintf(bw, "  %40s\t\t%d\n", label, count.n)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats walks every commit's changes and counts path occurrences. A failed
// log read is logged and downgraded to an empty history, and commits whose
// diff can't be read are logged and skipped, the same downgrades the graph
// build applies.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
	commits, err := r.vcs.ReadCommits(ctx)
	if err != nil {
		r.cfg.Errorf("reading commits: %v", err)
		commits = nil
	}
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}
	stats := &Stats{
		Commits: int64(len(commits)),
		Counts:  make(map[string][]*statCount),
	}

	for _, c := range commits {
		changes, err := r.vcs.ReadChanges(ctx, c.ID)
		if err != nil {
			r.cfg.Errorf("reading changes for commit %s: %v", c.ShortID(), err)
			continue
		}
		for _, dir := range changes.Dirs {
			stats.Add("folders", dir, 1)
		}
		for _, file := range changes.Files {
			stats.Add("files", file, 1)
		}
	}
	return stats, nil
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.English).String(s)
}
