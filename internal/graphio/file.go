package graphio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ashhadm/CS-249/internal/dbg"
	"github.com/ashhadm/CS-249/internal/olc"
	"github.com/ashhadm/CS-249/internal/seqio"
)

// IsDOT returns whether path names a DOT file, after any compression
// extension is stripped.
func IsDOT(path string) bool {
	base := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(path, ".gz"), ".zst"), ".zstd")
	ext := strings.ToLower(filepath.Ext(base))
	return ext == ".dot" || ext == ".gv"
}

// Write writes g to path, as DOT if the path ends in .dot or .gv and as
// GFA otherwise. The file is compressed for .gz and .zst paths and is
// complete or absent.
func Write(path string, g *dbg.Graph) error {
	return seqio.WriteFile(path, func(w io.Writer) error {
		if IsDOT(path) {
			return WriteDOT(w, g)
		}
		return WriteGFA(w, g)
	})
}

// WriteOverlap writes the overlap graph g to path like Write.
func WriteOverlap(path string, g *olc.Graph, reads []seqio.Read) error {
	return seqio.WriteFile(path, func(w io.Writer) error {
		if IsDOT(path) {
			return WriteOverlapDOT(w, g, reads)
		}
		return WriteOverlapGFA(w, g, reads)
	})
}

// Read reads a De Bruijn graph from a GFA file, decompressing it if needed.
func Read(path string) (*dbg.Graph, error) {
	f, err := seqio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadGFA(f)
}
