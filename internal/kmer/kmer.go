// Package kmer extracts fixed length substrings from reads.
package kmer

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when k, or an overlap length, can't be
// used with the reads it's applied to.
var ErrInvalidParameter = errors.New("invalid parameter")

// Kmer is the window of a read at Pos along with the two (k-1)-mers that
// are the graph nodes on either side of it.
type Kmer struct {
	// Pos is the 0-based start of the window in the read
	Pos int

	// Seq is the k-mer
	Seq string

	// Prefix is Seq without its last base
	Prefix string

	// Suffix is Seq without its first base
	Suffix string
}

// Check returns an ErrInvalidParameter if a read of seq can't produce
// k-mers for graph building.
func Check(seq string, k int) error {
	if k < 2 {
		return fmt.Errorf("%w: k=%d, must be at least 2", ErrInvalidParameter, k)
	}
	if k >= len(seq) {
		return fmt.Errorf("%w: k=%d is not shorter than a read of length %d", ErrInvalidParameter, k, len(seq))
	}
	return nil
}

// Count returns the number of k-mer windows in seq.
func Count(seq string, k int) int {
	if k < 1 || k > len(seq) {
		return 0
	}
	return len(seq) - k + 1
}

// Iterator lazily walks the k-mers of a read, left to right.
//
//	it, err := kmer.NewIterator(read.Seq, k)
//	for it.Next() {
//		km := it.Kmer()
//	}
type Iterator struct {
	seq string
	k   int
	pos int
}

// NewIterator returns an Iterator over the k-mers of seq.
func NewIterator(seq string, k int) (*Iterator, error) {
	if err := Check(seq, k); err != nil {
		return nil, err
	}
	return &Iterator{seq: seq, k: k, pos: -1}, nil
}

// Next advances to the next window, returning false after the last.
func (it *Iterator) Next() bool {
	if it.pos > len(it.seq)-it.k {
		return false
	}
	it.pos++
	return it.pos <= len(it.seq)-it.k
}

// Kmer returns the current window.
func (it *Iterator) Kmer() Kmer {
	s := it.seq[it.pos : it.pos+it.k]
	return Kmer{
		Pos:    it.pos,
		Seq:    s,
		Prefix: s[:it.k-1],
		Suffix: s[1:],
	}
}

// All returns every k-mer of seq.
func All(seq string, k int) ([]Kmer, error) {
	it, err := NewIterator(seq, k)
	if err != nil {
		return nil, err
	}

	kmers := make([]Kmer, 0, Count(seq, k))
	for it.Next() {
		kmers = append(kmers, it.Kmer())
	}
	return kmers, nil
}

// IsACGT returns whether s only has the four unambiguous bases.
func IsACGT(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
