package kmer

import "strings"

// Packed is a k-mer of at most MaxPacked bases, 2 bits per base.
type Packed uint64

// MaxPacked is the longest k-mer that fits in a Packed.
const MaxPacked = 32

var complement = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

// Encode packs s, A=0 C=1 G=2 T=3. It returns false if s is too long
// or has an ambiguous base.
func Encode(s string) (Packed, bool) {
	if len(s) > MaxPacked {
		return 0, false
	}

	var p Packed
	for i := 0; i < len(s); i++ {
		p <<= 2
		switch s[i] {
		case 'A':
		case 'C':
			p |= 1
		case 'G':
			p |= 2
		case 'T':
			p |= 3
		default:
			return 0, false
		}
	}
	return p, true
}

// Decode unpacks a k-mer of length k.
func Decode(p Packed, k int) string {
	var sb strings.Builder
	sb.Grow(k)
	for i := k - 1; i >= 0; i-- {
		sb.WriteByte("ACGT"[(p>>(uint(i)*2))&3])
	}
	return sb.String()
}

// ReverseComplement returns the reverse complement of seq, keeping ambiguity
// codes ambiguous. Unknown bases become N.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if c, ok := complement[seq[n-1-i]]; ok {
			out[i] = c
		} else {
			out[i] = 'N'
		}
	}
	return string(out)
}

// Canonical returns the lesser of s and its reverse complement.
func Canonical(s string) string {
	if rc := ReverseComplement(s); rc < s {
		return rc
	}
	return s
}
