package assemble

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/stats"
)

// Output is the report of an assembly run.
type Output struct {
	// Input is the path to the reads
	Input string `json:"input"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Reads is the number of reads assembled
	Reads int `json:"reads"`

	// Assemblies, one per algorithm run
	Assemblies []Assembly `json:"assemblies"`
}

// Assembly is the result of one assembler.
type Assembly struct {
	// Algorithm is "dbg" or "olc"
	Algorithm string `json:"algorithm"`

	// K is the k-mer length of a De Bruijn graph assembly
	K int `json:"k,omitempty"`

	// MinOverlap is the minimum overlap of an OLC assembly
	MinOverlap int `json:"minOverlap,omitempty"`

	// Nodes and Edges of the assembly graph
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`

	// Overlaps found between reads, OLC only
	Overlaps int `json:"overlaps,omitempty"`

	// Contained reads left out of the overlap graph, OLC only
	Contained int `json:"contained,omitempty"`

	// Contigs is the path to the contig FASTA
	Contigs string `json:"contigs"`

	// Graph is the path to the GFA graph
	Graph string `json:"graph"`

	// DOT is the path to the Graphviz graph, if one was written
	DOT string `json:"dot,omitempty"`

	// Stats of the contigs
	Stats stats.Summary `json:"stats"`

	// Execution is the number of seconds the assembler took
	Execution float64 `json:"execution"`

	contigs []seqio.Contig
}

// Sequences returns the assembled contigs.
func (a *Assembly) Sequences() []seqio.Contig {
	return a.contigs
}

// writeJSON stamps the output with the time and writes it to filename.
func writeJSON(filename string, out *Output) error {
	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	out.Time = fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	err = seqio.WriteFile(filename, func(w io.Writer) error {
		_, err := w.Write(output)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}
	return nil
}
