package graphio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ashhadm/CS-249/internal/dbg"
	"github.com/ashhadm/CS-249/internal/olc"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/awalterschulze/gographviz"
)

// graph name used in every DOT file
const name = "G"

// WriteDOT writes g as a Graphviz digraph. Nodes are labeled with their
// (k-1)-mer and edges with their k-mer and multiplicity.
func WriteDOT(w io.Writer, g *dbg.Graph) error {
	gv, err := digraph()
	if err != nil {
		return err
	}

	for i, n := range g.Nodes {
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(n.Seq),
		}
		if err := gv.AddNode(name, strconv.Itoa(i), attrs); err != nil {
			return fmt.Errorf("failed to add node %d: %w", i, err)
		}
	}

	for i, e := range g.Edges {
		attrs := map[string]string{
			"label":    strconv.Quote(fmt.Sprintf("%s x%d", e.Kmer, e.Multiplicity)),
			"penwidth": strconv.Itoa(penwidth(e.Multiplicity)),
		}
		if err := gv.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To), true, attrs); err != nil {
			return fmt.Errorf("failed to add edge %d: %w", i, err)
		}
	}

	_, err = io.WriteString(w, gv.String())
	return err
}

// WriteOverlapDOT writes the overlap graph g as a Graphviz digraph. Nodes
// are reads and edges are labeled with their overlap length. Reverse
// complement edges are dashed.
func WriteOverlapDOT(w io.Writer, g *olc.Graph, reads []seqio.Read) error {
	gv, err := digraph()
	if err != nil {
		return err
	}

	for _, r := range g.Reads {
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(fmt.Sprintf("%s (%d bp)", reads[r].ID, len(reads[r].Seq))),
		}
		if err := gv.AddNode(name, strconv.Itoa(r), attrs); err != nil {
			return fmt.Errorf("failed to add read %d: %w", r, err)
		}
	}

	for i, e := range g.Edges {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.Itoa(e.Length)),
		}
		if e.Orientation == olc.ReverseComplement {
			attrs["style"] = "dashed"
		}
		if err := gv.AddEdge(strconv.Itoa(g.Reads[e.From]), strconv.Itoa(g.Reads[e.To]), true, attrs); err != nil {
			return fmt.Errorf("failed to add edge %d: %w", i, err)
		}
	}

	_, err = io.WriteString(w, gv.String())
	return err
}

func digraph() (*gographviz.Graph, error) {
	gv := gographviz.NewGraph()
	if err := gv.SetName(name); err != nil {
		return nil, err
	}
	if err := gv.SetDir(true); err != nil {
		return nil, err
	}
	if err := gv.SetStrict(false); err != nil {
		return nil, err
	}
	return gv, nil
}

// penwidth scales edge width with multiplicity, capped at 8.
func penwidth(multiplicity int) int {
	if multiplicity > 8 {
		return 8
	}
	return multiplicity
}
