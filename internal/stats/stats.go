// Package stats summarizes a set of contigs.
package stats

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/ashhadm/CS-249/internal/seqio"
)

// Summary of an assembly's contigs.
type Summary struct {
	Count       int     `json:"count"`
	TotalLength int     `json:"totalLength"`
	Longest     int     `json:"longest"`
	Shortest    int     `json:"shortest"`
	N50         int     `json:"n50"`
	L50         int     `json:"l50"`
	GC          float64 `json:"gc"`
}

// Summarize returns the summary of contigs. N50 is the length of the
// contig, taking them longest first, that brings the running total to at
// least half of all bases, and L50 is the number of contigs taken by then.
// GC is the fraction of A, C, G and T bases that are G or C.
func Summarize(contigs []seqio.Contig) Summary {
	if len(contigs) == 0 {
		return Summary{}
	}

	lengths := make([]int, len(contigs))
	s := Summary{Count: len(contigs)}
	gc, acgt := 0, 0
	for i, c := range contigs {
		lengths[i] = len(c.Seq)
		s.TotalLength += len(c.Seq)

		for j := 0; j < len(c.Seq); j++ {
			switch c.Seq[j] {
			case 'G', 'C':
				gc++
				acgt++
			case 'A', 'T':
				acgt++
			}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	s.Longest = lengths[0]
	s.Shortest = lengths[len(lengths)-1]

	sum := 0
	for i, l := range lengths {
		sum += l
		if 2*sum >= s.TotalLength {
			s.N50 = l
			s.L50 = i + 1
			break
		}
	}

	if acgt > 0 {
		s.GC = float64(gc) / float64(acgt)
	}
	return s
}

// Write writes a table of summaries to w, one row per name.
func Write(w io.Writer, names []string, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "assembly\tcontigs\ttotal\tlongest\tshortest\tN50\tL50\tGC")
	for i, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f%%\n",
			names[i], s.Count, s.TotalLength, s.Longest, s.Shortest, s.N50, s.L50, 100*s.GC)
	}
	return tw.Flush()
}
