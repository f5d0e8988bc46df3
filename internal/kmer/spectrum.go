package kmer

import (
	"fmt"
	"sort"
)

// Spectrum is a count of packed k-mers.
type Spectrum struct {
	K      int
	Counts map[Packed]int

	// Skipped windows had a base other than A, C, G or T
	Skipped int
}

// Entry is a k-mer and its count.
type Entry struct {
	Kmer  string
	Count int
}

// NewSpectrum counts the k-mers of seqs. If canonical is set a k-mer and
// its reverse complement are counted together, as the lesser of the two.
func NewSpectrum(seqs []string, k int, canonical bool) (*Spectrum, error) {
	if k < 1 || k > MaxPacked {
		return nil, fmt.Errorf("%w: k=%d, must be between 1 and %d", ErrInvalidParameter, k, MaxPacked)
	}

	s := &Spectrum{K: k, Counts: make(map[Packed]int)}
	for _, seq := range seqs {
		for i := 0; i+k <= len(seq); i++ {
			w := seq[i : i+k]
			if canonical {
				w = Canonical(w)
			}
			p, ok := Encode(w)
			if !ok {
				s.Skipped++
				continue
			}
			s.Counts[p]++
		}
	}
	return s, nil
}

// Top returns the n most frequent k-mers, ties in k-mer order. n < 1
// returns all of them.
func (s *Spectrum) Top(n int) []Entry {
	entries := make([]Entry, 0, len(s.Counts))
	for p, c := range s.Counts {
		entries = append(entries, Entry{Kmer: Decode(p, s.K), Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Kmer < entries[j].Kmer
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Histogram returns the number of distinct k-mers seen each number of
// times, indexed by count.
func (s *Spectrum) Histogram() []int {
	max := 0
	for _, c := range s.Counts {
		if c > max {
			max = c
		}
	}

	hist := make([]int, max+1)
	for _, c := range s.Counts {
		hist[c]++
	}
	return hist
}
