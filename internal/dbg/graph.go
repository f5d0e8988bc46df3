// Package dbg builds a De Bruijn graph from reads and walks it into contigs.
//
// Nodes are the distinct (k-1)-mers of the reads and edges are the distinct
// k-mers, each joining its prefix node to its suffix node. Both live in
// slices and refer to one another by index.
package dbg

import (
	"fmt"

	"github.com/ashhadm/CS-249/internal/traverse"
)

// Node is a (k-1)-mer.
type Node struct {
	Seq string
}

// Edge is a k-mer from the node of its prefix to the node of its suffix.
type Edge struct {
	From int
	To   int

	// Kmer labels the edge
	Kmer string

	// Multiplicity is the number of times the k-mer was extracted from the reads
	Multiplicity int

	// Copies is the most times the k-mer was seen within a single read.
	// It's the number of times an isolated cycle is unrolled into its contig
	Copies int
}

// Graph is a De Bruijn graph with k-mer edges.
type Graph struct {
	// K is the length of edge k-mers, nodes are K-1 long
	K int

	// Nodes in the order their (k-1)-mer was first seen
	Nodes []Node

	// Edges in the order their k-mer was first seen
	Edges []Edge

	nodeIndex map[string]int
	edgeIndex map[string]int
}

// NewGraph returns an empty graph of k-mer edges.
func NewGraph(k int) *Graph {
	return &Graph{
		K:         k,
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
	}
}

// Node returns the index of the node for seq.
func (g *Graph) Node(seq string) (int, bool) {
	i, ok := g.nodeIndex[seq]
	return i, ok
}

// Edge returns the index of the edge labeled kmer.
func (g *Graph) Edge(kmer string) (int, bool) {
	i, ok := g.edgeIndex[kmer]
	return i, ok
}

// AddNode returns the index of the node for seq, creating it if it's new.
func (g *Graph) AddNode(seq string) int {
	if i, ok := g.nodeIndex[seq]; ok {
		return i
	}
	g.Nodes = append(g.Nodes, Node{Seq: seq})
	g.nodeIndex[seq] = len(g.Nodes) - 1
	return len(g.Nodes) - 1
}

// AddEdge adds multiplicity occurrences of kmer to the graph, creating its
// prefix and suffix nodes and the edge between them if they're new.
// copies raises the edge's Copies if it's greater.
func (g *Graph) AddEdge(kmer string, multiplicity, copies int) (int, error) {
	if len(kmer) != g.K {
		return 0, fmt.Errorf("k-mer %s is not %d bases long", kmer, g.K)
	}
	if multiplicity < 1 {
		return 0, fmt.Errorf("k-mer %s has multiplicity %d, must be at least 1", kmer, multiplicity)
	}
	if copies < 1 {
		copies = 1
	}

	from := g.AddNode(kmer[:g.K-1])
	to := g.AddNode(kmer[1:])

	if i, ok := g.edgeIndex[kmer]; ok {
		e := &g.Edges[i]
		e.Multiplicity += multiplicity
		if copies > e.Copies {
			e.Copies = copies
		}
		return i, nil
	}

	g.Edges = append(g.Edges, Edge{
		From:         from,
		To:           to,
		Kmer:         kmer,
		Multiplicity: multiplicity,
		Copies:       copies,
	})
	g.edgeIndex[kmer] = len(g.Edges) - 1
	return len(g.Edges) - 1, nil
}

// OutEdges returns the indices of the edges leaving node v, in creation order.
func (g *Graph) OutEdges(v int) (out []int) {
	for i, e := range g.Edges {
		if e.From == v {
			out = append(out, i)
		}
	}
	return
}

// Degrees returns the in-degree and out-degree of every node, indexed by node.
// They're derived from the edges on each call.
func (g *Graph) Degrees() (in, out []int) {
	return traverse.Degrees(len(g.Nodes), g.arcs())
}

// TotalMultiplicity is the sum of the edge multiplicities, the number of
// k-mers extracted to build the graph.
func (g *Graph) TotalMultiplicity() (total int) {
	for _, e := range g.Edges {
		total += e.Multiplicity
	}
	return
}

func (g *Graph) arcs() []traverse.Arc {
	arcs := make([]traverse.Arc, len(g.Edges))
	for i, e := range g.Edges {
		arcs[i] = traverse.Arc{From: e.From, To: e.To}
	}
	return arcs
}
