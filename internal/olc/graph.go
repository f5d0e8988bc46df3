package olc

import (
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/traverse"
)

// Edge is a dovetail overlap between two nodes of the overlap graph.
type Edge struct {
	From int
	To   int

	// Length of the overlap
	Length int

	Orientation Orientation
}

// Graph is the overlap graph of the reads not contained in another read.
type Graph struct {
	// Reads are the read index of each node
	Reads []int

	// Lengths are the read length of each node
	Lengths []int

	Edges []Edge

	// node of each read in the graph
	node map[int]int

	contained map[int]bool
}

// BuildGraph returns the overlap graph of reads. Contained reads don't
// get a node and overlaps involving them are dropped.
func BuildGraph(reads []seqio.Read, overlaps []Overlap) *Graph {
	g := &Graph{
		node:      make(map[int]int),
		contained: make(map[int]bool),
	}

	for _, ov := range overlaps {
		if ov.Contained {
			g.MarkContained(ov.A)
		}
	}

	for i, r := range reads {
		if g.contained[i] {
			continue
		}
		g.node[i] = len(g.Reads)
		g.Reads = append(g.Reads, i)
		g.Lengths = append(g.Lengths, len(r.Seq))
	}

	for _, ov := range overlaps {
		if ov.Contained {
			continue
		}
		from, ok := g.node[ov.A]
		if !ok {
			continue
		}
		to, ok := g.node[ov.B]
		if !ok {
			continue
		}
		g.Edges = append(g.Edges, Edge{From: from, To: to, Length: ov.Length, Orientation: ov.Orientation})
	}

	return g
}

// Node returns the node of a read, false if the read isn't in the graph.
func (g *Graph) Node(read int) (int, bool) {
	v, ok := g.node[read]
	return v, ok
}

// Contained returns whether the read was marked contained.
func (g *Graph) Contained(read int) bool {
	return g.contained[read]
}

// MarkContained removes a read and its edges from the graph.
// Marking a read a second time does nothing.
func (g *Graph) MarkContained(read int) {
	if g.contained[read] {
		return
	}
	g.contained[read] = true

	removed, ok := g.node[read]
	if !ok {
		return
	}
	delete(g.node, read)

	renumber := func(v int) int {
		if v > removed {
			return v - 1
		}
		return v
	}

	g.Reads = append(g.Reads[:removed], g.Reads[removed+1:]...)
	g.Lengths = append(g.Lengths[:removed], g.Lengths[removed+1:]...)
	for r, v := range g.node {
		g.node[r] = renumber(v)
	}

	edges := g.Edges[:0]
	for _, e := range g.Edges {
		if e.From == removed || e.To == removed {
			continue
		}
		e.From, e.To = renumber(e.From), renumber(e.To)
		edges = append(edges, e)
	}
	g.Edges = edges
}

// ReduceTransitive removes forward edges A->C that are implied by a pair
// of forward edges A->B and B->C placing C at the same offset from A.
// All the edges removed are found before any is removed. It returns the
// number of edges removed.
func (g *Graph) ReduceTransitive() int {
	out := make([]map[int]int, len(g.Reads))
	for i := range out {
		out[i] = make(map[int]int)
	}
	for i, e := range g.Edges {
		if e.Orientation == Forward {
			out[e.From][e.To] = i
		}
	}

	transitive := make([]bool, len(g.Edges))
	for i, ac := range g.Edges {
		if ac.Orientation != Forward {
			continue
		}
		for b, ab := range out[ac.From] {
			if b == ac.To {
				continue
			}
			bc, ok := out[b][ac.To]
			if !ok {
				continue
			}
			if g.Edges[ab].Length+g.Edges[bc].Length-g.Lengths[b] == ac.Length {
				transitive[i] = true
				break
			}
		}
	}

	edges := g.Edges[:0]
	removed := 0
	for i, e := range g.Edges {
		if transitive[i] {
			removed++
			continue
		}
		edges = append(edges, e)
	}
	g.Edges = edges
	return removed
}

// forward returns the forward edges as arcs, and the edge of each arc.
func (g *Graph) forward() (arcs []traverse.Arc, edges []int) {
	for i, e := range g.Edges {
		if e.Orientation == Forward {
			arcs = append(arcs, traverse.Arc{From: e.From, To: e.To})
			edges = append(edges, i)
		}
	}
	return
}
