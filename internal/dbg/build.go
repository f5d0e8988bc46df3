package dbg

import (
	"fmt"
	"sync"

	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/cheggaaa/pb/v3"
)

// options for building a graph
type options struct {
	workers       int
	skipAmbiguous bool
	progress      bool
}

// Option configures Build.
type Option func(*options)

// WithWorkers splits k-mer extraction over n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSkipAmbiguous leaves k-mers with bases other than A, C, G and T out of the graph.
func WithSkipAmbiguous(skip bool) Option {
	return func(o *options) {
		o.skipAmbiguous = skip
	}
}

// WithProgress shows a progress bar over the reads on stderr.
func WithProgress(show bool) Option {
	return func(o *options) {
		o.progress = show
	}
}

// Validate returns a kmer.ErrInvalidParameter if k can't be used with every read.
func Validate(reads []seqio.Read, k int) error {
	for i, r := range reads {
		if err := kmer.Check(r.Seq, k); err != nil {
			return fmt.Errorf("read %s (#%d): %w", r.ID, i, err)
		}
	}
	if k < 2 {
		return kmer.Check("", k)
	}
	return nil
}

// counts is the k-mer tally of one worker's reads.
type counts struct {
	// order of first occurrence
	order []string

	// tally of each k-mer
	tally map[string]*count
}

type count struct {
	multiplicity int
	copies       int
}

// Build returns the De Bruijn graph of the k-mers in reads.
//
// Reads are split into contiguous chunks that are counted concurrently. The
// tallies are merged into the graph one chunk at a time, in read order, so
// node and edge ids follow first-seen order no matter the number of workers.
func Build(reads []seqio.Read, k int, opts ...Option) (*Graph, error) {
	o := &options{workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	if err := Validate(reads, k); err != nil {
		return nil, err
	}

	var bar *pb.ProgressBar
	if o.progress {
		bar = pb.StartNew(len(reads))
		defer bar.Finish()
	}

	chunks := split(len(reads), o.workers)
	tallies := make([]*counts, len(chunks))

	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func(i int, c [2]int) {
			defer wg.Done()
			tallies[i] = tally(reads[c[0]:c[1]], k, o.skipAmbiguous, bar)
		}(i, c)
	}
	wg.Wait()

	g := NewGraph(k)
	for _, t := range tallies {
		for _, km := range t.order {
			c := t.tally[km]
			if _, err := g.AddEdge(km, c.multiplicity, c.copies); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// tally counts the k-mers of reads.
func tally(reads []seqio.Read, k int, skipAmbiguous bool, bar *pb.ProgressBar) *counts {
	t := &counts{tally: make(map[string]*count)}
	inRead := make(map[string]int)

	for _, r := range reads {
		clear(inRead)

		it, err := kmer.NewIterator(r.Seq, k)
		if err != nil {
			continue // checked in Validate
		}
		for it.Next() {
			km := it.Kmer().Seq
			if skipAmbiguous && !kmer.IsACGT(km) {
				continue
			}

			c, ok := t.tally[km]
			if !ok {
				c = &count{}
				t.tally[km] = c
				t.order = append(t.order, km)
			}
			c.multiplicity++

			inRead[km]++
			if inRead[km] > c.copies {
				c.copies = inRead[km]
			}
		}

		if bar != nil {
			bar.Increment()
		}
	}

	return t
}

// split divides n items into at most parts contiguous [start, end) ranges.
func split(n, parts int) (chunks [][2]int) {
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	if n == 0 {
		return nil
	}

	size := n / parts
	extra := n % parts
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < extra {
			end++
		}
		chunks = append(chunks, [2]int{start, end})
		start = end
	}
	return
}
