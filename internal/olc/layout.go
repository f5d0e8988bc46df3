package olc

import (
	"fmt"
	"strings"

	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/traverse"
)

// Tiling is an ordered layout of reads and the overlaps between neighbors.
type Tiling struct {
	// Reads are read indices in layout order
	Reads []int

	// Overlaps[i] is the overlap of Reads[i] onto Reads[i+1]
	Overlaps []int
}

// Layout walks the forward edges of g into maximal non-branching read
// tilings. Reads with no forward edges are single read tilings, after the
// walks and in read order. A cycle is laid out once around, stopping on
// the read before the one it started from.
func Layout(g *Graph) []Tiling {
	arcs, edges := g.forward()
	walks := traverse.Walks(len(g.Reads), arcs)

	placed := make([]bool, len(g.Reads))
	tilings := make([]Tiling, 0, len(walks))
	for _, w := range walks {
		nodes, walked := w.Nodes(arcs), w.Arcs
		if w.Cycle {
			// the closing arc leads back to the first read
			nodes, walked = nodes[:len(nodes)-1], walked[:len(walked)-1]
		}

		var t Tiling
		for _, v := range nodes {
			t.Reads = append(t.Reads, g.Reads[v])
			placed[v] = true
		}
		for _, a := range walked {
			t.Overlaps = append(t.Overlaps, g.Edges[edges[a]].Length)
		}
		tilings = append(tilings, t)
	}

	for v, read := range g.Reads {
		if !placed[v] {
			tilings = append(tilings, Tiling{Reads: []int{read}})
		}
	}

	return tilings
}

// Consensus merges a tiling into one sequence: the first read followed by
// every other read past its overlap with the read before it.
func Consensus(reads []seqio.Read, t Tiling) (string, error) {
	if len(t.Reads) == 0 {
		return "", fmt.Errorf("%w: empty tiling", kmer.ErrInvalidParameter)
	}
	if len(t.Overlaps) != len(t.Reads)-1 {
		return "", fmt.Errorf("%w: %d overlaps for %d reads", kmer.ErrInvalidParameter, len(t.Overlaps), len(t.Reads))
	}

	var seq strings.Builder
	seq.WriteString(reads[t.Reads[0]].Seq)
	prev := reads[t.Reads[0]].Seq
	for i, read := range t.Reads[1:] {
		next, l := reads[read].Seq, t.Overlaps[i]
		if l < 1 || l >= len(next) || l > len(prev) {
			return "", fmt.Errorf("%w: overlap of %d between reads %d and %d", kmer.ErrInvalidParameter, l, t.Reads[i], read)
		}
		if prev[len(prev)-l:] != next[:l] {
			return "", fmt.Errorf("reads %d and %d don't overlap by %d bases", t.Reads[i], read, l)
		}
		seq.WriteString(next[l:])
		prev = next
	}

	return seq.String(), nil
}

// Assemble lays out g and returns a contig per tiling. Coverage is the
// bases of the tiled reads over the length of the contig.
func Assemble(reads []seqio.Read, g *Graph) ([]seqio.Contig, error) {
	tilings := Layout(g)

	contigs := make([]seqio.Contig, 0, len(tilings))
	for _, t := range tilings {
		seq, err := Consensus(reads, t)
		if err != nil {
			return nil, err
		}

		bases := 0
		for _, r := range t.Reads {
			bases += len(reads[r].Seq)
		}

		contigs = append(contigs, seqio.Contig{
			Seq:      seq,
			Path:     t.Reads,
			Overlaps: t.Overlaps,
			Coverage: float64(bases) / float64(len(seq)),
		})
	}

	seqio.Name(contigs, "olc")
	return contigs, nil
}
