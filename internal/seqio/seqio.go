// Package seqio reads FASTA/FASTQ reads and writes FASTA contigs.
package seqio

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an input without reads is configured to be fatal.
var ErrEmptyInput = errors.New("no reads in input")

// Read is a single sequenced read. It is not modified after parsing.
type Read struct {
	// ID is the first word of the record's header line
	ID string

	// Seq is the upper-cased base sequence
	Seq string

	// Qual is the raw FASTQ quality string (nil for FASTA records)
	Qual []byte
}

// Contig is an assembled sequence.
type Contig struct {
	// ID encodes the source algorithm and ordinal, ex: "dbg_contig_1"
	ID string

	// Seq of the contig
	Seq string

	// Source is the assembler that produced this contig, "dbg" or "olc"
	Source string

	// Path is the walk that produced the contig: node ids for the De Bruijn
	// graph, read indices for the overlap layout
	Path []int

	// Overlaps are the overlap lengths between consecutive reads of an OLC Path
	Overlaps []int

	// Coverage is the mean k-mer multiplicity or read depth along the path
	Coverage float64
}

// Name sets the ID of each contig from its source and 1-based ordinal.
func Name(contigs []Contig, source string) {
	for i := range contigs {
		contigs[i].Source = source
		contigs[i].ID = fmt.Sprintf("%s_contig_%d", source, i+1)
	}
}

// ParseError is a malformed input record.
type ParseError struct {
	// Offset is the byte offset of the problem in the (decompressed) input
	Offset int64

	// Record is the 0-based index of the record being parsed
	Record int

	// Msg describes what's wrong
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d (record %d): %s", e.Offset, e.Record, e.Msg)
}

// bases are those allowed in a read, the four nucleotides and IUPAC ambiguity codes
var bases = func() (valid [256]bool) {
	for _, b := range []byte("ACGTNRYSWKMBDHV") {
		valid[b] = true
	}
	return
}()

// IsBase returns whether b, upper-cased, is a nucleotide or an ambiguity code.
func IsBase(b byte) bool {
	return bases[b]
}
