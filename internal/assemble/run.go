// Package assemble runs the De Bruijn graph and overlap-layout-consensus
// assemblers on a read file and writes their contigs, graphs and a report.
package assemble

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ashhadm/CS-249/config"
	"github.com/ashhadm/CS-249/internal/dbg"
	"github.com/ashhadm/CS-249/internal/graphio"
	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/olc"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/stats"
)

// Run assembles the reads in flags.in with the algorithms selected in conf.
//
// Settings are checked against the reads before any graph is built. With
// both algorithms selected they run side by side on the same reads. Every
// output file is written whole or not at all.
func Run(ctx context.Context, flags *Flags, conf *config.Config) (*Output, error) {
	start := time.Now()

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", kmer.ErrInvalidParameter, err)
	}

	reads, err := seqio.ReadFile(flags.in)
	if err != nil {
		return nil, err
	}
	if len(reads) == 0 && conf.FailOnEmpty {
		return nil, fmt.Errorf("%s: %w", flags.in, seqio.ErrEmptyInput)
	}
	logf(conf, "read %d reads from %s", len(reads), flags.in)

	if conf.RunDBG() {
		if err := dbg.Validate(reads, conf.K); err != nil {
			return nil, err
		}
	}
	if conf.RunOLC() {
		if err := olc.Validate(reads, conf.MinOverlap); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(flags.out, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var runs []func() (*Assembly, error)
	if conf.RunDBG() {
		runs = append(runs, func() (*Assembly, error) { return assembleDBG(flags, conf, reads) })
	}
	if conf.RunOLC() {
		runs = append(runs, func() (*Assembly, error) { return assembleOLC(flags, conf, reads) })
	}

	assemblies := make([]*Assembly, len(runs))
	errs := make([]error, len(runs))
	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(i int, run func() (*Assembly, error)) {
			defer wg.Done()
			assemblies[i], errs[i] = run()
		}(i, run)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Output{
		Input:     flags.in,
		Reads:     len(reads),
		Execution: time.Since(start).Seconds(),
	}
	for _, a := range assemblies {
		out.Assemblies = append(out.Assemblies, *a)
	}

	if err := writeJSON(flags.path(".report.json"), out); err != nil {
		return nil, err
	}
	return out, nil
}

// assembleDBG builds the De Bruijn graph of reads and writes its contigs
// and graph.
func assembleDBG(flags *Flags, conf *config.Config, reads []seqio.Read) (*Assembly, error) {
	start := time.Now()

	g, err := dbg.Build(reads, conf.K,
		dbg.WithWorkers(conf.Workers),
		dbg.WithSkipAmbiguous(conf.SkipAmbiguous),
		dbg.WithProgress(conf.Verbose),
	)
	if err != nil {
		return nil, err
	}
	logf(conf, "dbg: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	contigs := dbg.Contigs(g)

	name := fmt.Sprintf("_dbg_k%d", conf.K)
	a := &Assembly{
		Algorithm: config.DBG,
		K:         conf.K,
		Nodes:     len(g.Nodes),
		Edges:     len(g.Edges),
		Contigs:   flags.path(name + ".fasta"),
		Graph:     flags.path(name + ".gfa"),
		Stats:     stats.Summarize(contigs),
		contigs:   contigs,
	}

	if err := seqio.WriteContigs(a.Contigs, contigs, conf.Wrap); err != nil {
		return nil, err
	}
	if err := graphio.Write(a.Graph, g); err != nil {
		return nil, err
	}
	if conf.DOT {
		a.DOT = flags.path(name + ".dot")
		if err := graphio.Write(a.DOT, g); err != nil {
			return nil, err
		}
	}

	a.Execution = time.Since(start).Seconds()
	logf(conf, "dbg: %d contigs, N50 %d", a.Stats.Count, a.Stats.N50)
	return a, nil
}

// assembleOLC finds the overlaps between reads, lays them out and writes
// the contigs and overlap graph.
func assembleOLC(flags *Flags, conf *config.Config, reads []seqio.Read) (*Assembly, error) {
	start := time.Now()

	overlaps, err := olc.FindOverlaps(reads, conf.MinOverlap,
		olc.WithWorkers(conf.Workers),
		olc.WithSeedIndex(conf.SeedLength),
		olc.WithReverseComplement(conf.ReverseComplement),
		olc.WithProgress(conf.Verbose),
	)
	if err != nil {
		return nil, err
	}

	g := olc.BuildGraph(reads, overlaps)
	contained := len(reads) - len(g.Reads)
	logf(conf, "olc: %d overlaps, %d contained reads", len(overlaps), contained)

	if conf.ReduceTransitive {
		removed := g.ReduceTransitive()
		logf(conf, "olc: removed %d transitive edges", removed)
	}

	contigs, err := olc.Assemble(reads, g)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("_olc_o%d", conf.MinOverlap)
	a := &Assembly{
		Algorithm:  config.OLC,
		MinOverlap: conf.MinOverlap,
		Nodes:      len(g.Reads),
		Edges:      len(g.Edges),
		Overlaps:   len(overlaps),
		Contained:  contained,
		Contigs:    flags.path(name + ".fasta"),
		Graph:      flags.path(name + ".gfa"),
		Stats:      stats.Summarize(contigs),
		contigs:    contigs,
	}

	if err := seqio.WriteContigs(a.Contigs, contigs, conf.Wrap); err != nil {
		return nil, err
	}
	if err := graphio.WriteOverlap(a.Graph, g, reads); err != nil {
		return nil, err
	}
	if conf.DOT {
		a.DOT = flags.path(name + ".dot")
		if err := graphio.WriteOverlap(a.DOT, g, reads); err != nil {
			return nil, err
		}
	}

	a.Execution = time.Since(start).Seconds()
	logf(conf, "olc: %d contigs, N50 %d", a.Stats.Count, a.Stats.N50)
	return a, nil
}

// logf logs progress if conf is verbose.
func logf(conf *config.Config, format string, args ...interface{}) {
	if conf.Verbose {
		log.Printf(format, args...)
	}
}

// path is an output file in the output dir, named after the input.
func (f *Flags) path(suffix string) string {
	return filepath.Join(f.out, f.base+suffix)
}
