// Package olc assembles reads by overlap, layout and consensus.
//
// Overlaps are exact suffix-prefix matches between reads. Reads inside
// other reads are marked contained and left out of the overlap graph,
// the graph is walked into non-branching read layouts, and each layout is
// merged into a contig by appending every read past its overlap with the
// read before it. Overlaps are exact, so there's no per-base voting.
package olc

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/cheggaaa/pb/v3"
)

// Orientation of read B relative to read A in an overlap.
type Orientation int

const (
	// Forward overlaps match B as it was read
	Forward Orientation = iota

	// ReverseComplement overlaps match the reverse complement of B
	ReverseComplement
)

// Sign is the GFA orientation of the orientation, "+" or "-".
func (o Orientation) Sign() string {
	if o == ReverseComplement {
		return "-"
	}
	return "+"
}

func (o Orientation) String() string {
	if o == ReverseComplement {
		return "reverse-complement"
	}
	return "forward"
}

// Overlap is an exact match between reads A and B, by index.
//
// For a dovetail overlap, the last Length bases of A, starting at Offset,
// equal the first Length bases of B. For a containment, A equals the Length
// bases of B starting at Offset.
type Overlap struct {
	A int
	B int

	Offset int
	Length int

	Orientation Orientation

	// Contained is set if A is contained in B
	Contained bool
}

// options for overlap detection
type options struct {
	workers           int
	seedLength        int
	reverseComplement bool
	progress          bool
}

// Option configures FindOverlaps.
type Option func(*options)

// WithWorkers splits the rows of the read pair matrix over n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSeedIndex only compares pairs of reads where one read has the first
// n bases of the other somewhere in it. The overlaps found are the same
// as without it. n is capped at the minimum overlap.
func WithSeedIndex(n int) Option {
	return func(o *options) {
		o.seedLength = n
	}
}

// WithReverseComplement also matches reads against the reverse complement
// of the others.
func WithReverseComplement(rc bool) Option {
	return func(o *options) {
		o.reverseComplement = rc
	}
}

// WithProgress shows a progress bar over the reads on stderr.
func WithProgress(show bool) Option {
	return func(o *options) {
		o.progress = show
	}
}

// Validate returns a kmer.ErrInvalidParameter if minOverlap is below 1 or
// longer than the shortest read.
func Validate(reads []seqio.Read, minOverlap int) error {
	if minOverlap < 1 {
		return fmt.Errorf("%w: min-overlap=%d, must be at least 1", kmer.ErrInvalidParameter, minOverlap)
	}
	for i, r := range reads {
		if minOverlap > len(r.Seq) {
			return fmt.Errorf("%w: min-overlap=%d is longer than read %s (#%d) of length %d",
				kmer.ErrInvalidParameter, minOverlap, r.ID, i, len(r.Seq))
		}
	}
	return nil
}

// detector compares pairs of reads.
type detector struct {
	seqs []string

	// rcs are the reverse complements of seqs, nil if they aren't compared
	rcs []string

	min int
}

// FindOverlaps returns the overlaps between every ordered pair of reads:
// the longest dovetail overlap of at least minOverlap bases, or a
// containment record when one read is inside the other. Identical reads
// are contained in the first of them. Overlaps are sorted by A then B.
func FindOverlaps(reads []seqio.Read, minOverlap int, opts ...Option) ([]Overlap, error) {
	o := &options{workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	if err := Validate(reads, minOverlap); err != nil {
		return nil, err
	}

	d := &detector{seqs: make([]string, len(reads)), min: minOverlap}
	for i, r := range reads {
		d.seqs[i] = r.Seq
	}
	if o.reverseComplement {
		d.rcs = make([]string, len(reads))
		for i, s := range d.seqs {
			d.rcs[i] = kmer.ReverseComplement(s)
		}
	}

	candidates := d.candidates(o.seedLength)

	var bar *pb.ProgressBar
	if o.progress {
		bar = pb.StartNew(len(reads))
		defer bar.Finish()
	}

	chunks := rows(len(reads), o.workers)
	found := make([][]Overlap, len(chunks))

	var wg sync.WaitGroup
	for c, chunk := range chunks {
		wg.Add(1)
		go func(c int, chunk [2]int) {
			defer wg.Done()
			for i := chunk[0]; i < chunk[1]; i++ {
				if candidates == nil {
					for j := range d.seqs {
						if i != j {
							found[c] = append(found[c], d.pair(i, j)...)
						}
					}
				} else {
					for _, j := range candidates[i] {
						found[c] = append(found[c], d.pair(i, j)...)
					}
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}(c, chunk)
	}
	wg.Wait()

	var overlaps []Overlap
	for _, f := range found {
		overlaps = append(overlaps, f...)
	}
	return overlaps, nil
}

// pair returns the overlaps of read i onto read j.
func (d *detector) pair(i, j int) []Overlap {
	if ov, related := d.containment(i, j, d.seqs[j], Forward); related {
		return ov
	}
	if d.rcs != nil {
		if ov, related := d.containment(i, j, d.rcs[j], ReverseComplement); related {
			return ov
		}
	}

	var overlaps []Overlap
	a := d.seqs[i]
	if l := dovetail(a, d.seqs[j], d.min); l > 0 {
		overlaps = append(overlaps, Overlap{A: i, B: j, Offset: len(a) - l, Length: l, Orientation: Forward})
	}
	if d.rcs != nil {
		if l := dovetail(a, d.rcs[j], d.min); l > 0 {
			overlaps = append(overlaps, Overlap{A: i, B: j, Offset: len(a) - l, Length: l, Orientation: ReverseComplement})
		}
	}
	return overlaps
}

// containment reports whether read i and b, read j in orientation o, are
// related by containment either way. The record is returned if read i is
// the one contained.
func (d *detector) containment(i, j int, b string, o Orientation) ([]Overlap, bool) {
	a := d.seqs[i]
	contained := Overlap{A: i, B: j, Length: len(a), Orientation: o, Contained: true}

	switch {
	case a == b:
		if i > j {
			return []Overlap{contained}, true
		}
		return nil, true
	case len(a) < len(b):
		if off := strings.Index(b, a); off >= 0 {
			contained.Offset = off
			return []Overlap{contained}, true
		}
	case len(b) < len(a):
		if strings.Contains(a, b) {
			return nil, true
		}
	}
	return nil, false
}

// dovetail returns the length of the longest suffix of a, at least min
// long, that's a prefix of b. Lengths that would put one read inside the
// other aren't tried. It returns 0 if there's no such overlap.
func dovetail(a, b string, min int) int {
	longest := len(a)
	if len(b) < longest {
		longest = len(b)
	}
	for l := longest - 1; l >= min; l-- {
		if a[len(a)-l:] == b[:l] {
			return l
		}
	}
	return 0
}

// candidates returns, per read, the sorted reads sharing a seed with it.
// nil means every pair is compared.
func (d *detector) candidates(seedLength int) [][]int {
	if seedLength <= 0 {
		return nil
	}
	if seedLength > d.min {
		seedLength = d.min
	}

	// reads by the seed their sequence, or its reverse complement, starts with
	index := make(map[string][]int)
	for j, s := range d.seqs {
		index[s[:seedLength]] = append(index[s[:seedLength]], j)
		if d.rcs != nil {
			rc := d.rcs[j][:seedLength]
			index[rc] = append(index[rc], j)
		}
	}

	sets := make([]map[int]bool, len(d.seqs))
	for i := range sets {
		sets[i] = make(map[int]bool)
	}
	for i, s := range d.seqs {
		for p := 0; p+seedLength <= len(s); p++ {
			for _, j := range index[s[p:p+seedLength]] {
				if i != j {
					sets[i][j] = true
					sets[j][i] = true
				}
			}
		}
	}

	candidates := make([][]int, len(d.seqs))
	for i, set := range sets {
		for j := range set {
			candidates[i] = append(candidates[i], j)
		}
		sort.Ints(candidates[i])
	}
	return candidates
}

// rows divides n rows into at most parts contiguous [start, end) ranges.
func rows(n, parts int) (chunks [][2]int) {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return nil
	}

	size, extra := n/parts, n%parts
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
