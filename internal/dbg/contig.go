package dbg

import (
	"strings"

	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/traverse"
)

// Contigs walks the maximal non-branching paths of g into contigs.
//
// A contig is the first node's (k-1)-mer followed by the last base of every
// edge on the walk, so it's at least k bases long. A branching node ends the
// walks into it and starts a new walk per out-edge, in edge creation order;
// repeats aren't resolved. An isolated cycle is a single contig, unrolled by
// the copy numbers of its edges so a tandem repeat inside one read keeps
// every copy. Nodes without edges don't make contigs.
func Contigs(g *Graph) []seqio.Contig {
	walks := traverse.Walks(len(g.Nodes), g.arcs())

	contigs := make([]seqio.Contig, 0, len(walks))
	for _, w := range walks {
		edges := w.Arcs
		if w.Cycle {
			edges = unroll(g, w.Arcs)
		}

		first := g.Edges[edges[0]].From
		path := make([]int, 0, len(edges)+1)
		path = append(path, first)

		var seq strings.Builder
		seq.Grow(g.K - 1 + len(edges))
		seq.WriteString(g.Nodes[first].Seq)
		for _, e := range edges {
			to := g.Edges[e].To
			seq.WriteByte(g.Edges[e].Kmer[g.K-1])
			path = append(path, to)
		}

		contigs = append(contigs, seqio.Contig{
			Seq:      seq.String(),
			Path:     path,
			Coverage: coverage(g, w.Arcs),
		})
	}

	seqio.Name(contigs, "dbg")
	return contigs
}

// unroll repeats a cycle's edges, in walk order, for as many steps as the
// sum of their copy numbers.
func unroll(g *Graph, cycle []int) []int {
	steps := 0
	for _, e := range cycle {
		steps += g.Edges[e].Copies
	}
	if steps < len(cycle) {
		steps = len(cycle)
	}

	edges := make([]int, steps)
	for i := range edges {
		edges[i] = cycle[i%len(cycle)]
	}
	return edges
}

// coverage is the mean multiplicity of the edges.
func coverage(g *Graph, edges []int) float64 {
	if len(edges) == 0 {
		return 0
	}
	total := 0
	for _, e := range edges {
		total += g.Edges[e].Multiplicity
	}
	return float64(total) / float64(len(edges))
}
