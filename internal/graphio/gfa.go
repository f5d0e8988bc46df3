// Package graphio writes assembly graphs as GFA 1.0 or Graphviz DOT and
// reads De Bruijn graphs back from GFA.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ashhadm/CS-249/internal/dbg"
	"github.com/ashhadm/CS-249/internal/olc"
	"github.com/ashhadm/CS-249/internal/seqio"
)

// WriteGFA writes g as GFA 1.0. Segments are the (k-1)-mer nodes, named by
// node id, and links are the k-mer edges overlapping by k-2 bases. Links
// carry the edge's multiplicity (KC), copy number (CN) and k-mer (KM).
func WriteGFA(w io.Writer, g *dbg.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "H\tVN:Z:1.0\tKL:i:%d\n", g.K)
	for i, n := range g.Nodes {
		fmt.Fprintf(bw, "S\t%d\t%s\n", i, n.Seq)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "L\t%d\t+\t%d\t+\t%dM\tKC:i:%d\tCN:i:%d\tKM:Z:%s\n",
			e.From, e.To, g.K-2, e.Multiplicity, e.Copies, e.Kmer)
	}

	return bw.Flush()
}

// ReadGFA reads a De Bruijn graph written by WriteGFA. Node and edge ids
// and counts are restored as they were written.
func ReadGFA(r io.Reader) (*dbg.Graph, error) {
	var g *dbg.Graph
	var segments []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cols := strings.Split(text, "\t")
		switch cols[0] {
		case "H":
			if kl, ok := tag(cols[1:], "KL:i:"); ok {
				k, err := strconv.Atoi(kl)
				if err != nil || k < 2 {
					return nil, fmt.Errorf("line %d: bad k-mer length %q", line, kl)
				}
				g = dbg.NewGraph(k)
			}
		case "S":
			if len(cols) < 3 {
				return nil, fmt.Errorf("line %d: segment needs a name and a sequence", line)
			}
			if id, err := strconv.Atoi(cols[1]); err != nil || id != len(segments) {
				return nil, fmt.Errorf("line %d: segment %s out of order, expected %d", line, cols[1], len(segments))
			}
			if g == nil {
				g = dbg.NewGraph(len(cols[2]) + 1)
			}
			if len(cols[2]) != g.K-1 {
				return nil, fmt.Errorf("line %d: segment %s is not %d bases long", line, cols[1], g.K-1)
			}
			if v := g.AddNode(cols[2]); v != len(segments) {
				return nil, fmt.Errorf("line %d: segment %s repeats segment %d", line, cols[1], v)
			}
			segments = append(segments, cols[2])
		case "L":
			if g == nil || len(cols) < 6 {
				return nil, fmt.Errorf("line %d: malformed link", line)
			}
			if cols[2] != "+" || cols[4] != "+" {
				return nil, fmt.Errorf("line %d: only forward links are supported", line)
			}

			from, err := segment(segments, cols[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			to, err := segment(segments, cols[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			kmer := from + to[len(to)-1:]
			if km, ok := tag(cols[6:], "KM:Z:"); ok && km != kmer {
				return nil, fmt.Errorf("line %d: k-mer %s doesn't join %s and %s", line, km, from, to)
			}
			if from[1:] != to[:len(to)-1] {
				return nil, fmt.Errorf("line %d: %s and %s don't overlap by %d", line, from, to, g.K-2)
			}

			multiplicity, copies := 1, 1
			if kc, ok := tag(cols[6:], "KC:i:"); ok {
				if multiplicity, err = strconv.Atoi(kc); err != nil {
					return nil, fmt.Errorf("line %d: bad multiplicity %q", line, kc)
				}
			}
			if cn, ok := tag(cols[6:], "CN:i:"); ok {
				if copies, err = strconv.Atoi(cn); err != nil {
					return nil, fmt.Errorf("line %d: bad copy number %q", line, cn)
				}
			}
			if _, err := g.AddEdge(kmer, multiplicity, copies); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if g == nil {
		return nil, fmt.Errorf("no header or segments in GFA")
	}
	return g, nil
}

// tag returns the value of the first optional field with prefix.
func tag(fields []string, prefix string) (string, bool) {
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			return strings.TrimPrefix(f, prefix), true
		}
	}
	return "", false
}

// segment returns the sequence of a segment by name.
func segment(segments []string, name string) (string, error) {
	id, err := strconv.Atoi(name)
	if err != nil || id < 0 || id >= len(segments) {
		return "", fmt.Errorf("unknown segment %s", name)
	}
	return segments[id], nil
}

// WriteOverlapGFA writes the overlap graph g as GFA 1.0. Segments are the
// reads in the graph, named by their read index, and links overlap by the
// edge's length, with "-" on reverse complement edges.
func WriteOverlapGFA(w io.Writer, g *olc.Graph, reads []seqio.Read) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "H\tVN:Z:1.0\n")
	for _, r := range g.Reads {
		fmt.Fprintf(bw, "S\t%d\t%s\tLN:i:%d\tRD:Z:%s\n", r, reads[r].Seq, len(reads[r].Seq), reads[r].ID)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "L\t%d\t+\t%d\t%s\t%dM\n", g.Reads[e.From], g.Reads[e.To], e.Orientation.Sign(), e.Length)
	}

	return bw.Flush()
}
