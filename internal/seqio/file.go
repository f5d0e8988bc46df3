package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readCloser closes both a decompressor and the file beneath it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() (err error) {
	for _, c := range rc.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return
}

// Open opens the file at path for reading. Files ending in .gz, .zst
// (or .zstd) and .sz (framed snappy) are decompressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	switch compression(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip header of %s: %w", path, err)
		}
		return &readCloser{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read zstd stream %s: %w", path, err)
		}
		return &readCloser{Reader: dec, closers: []func() error{func() error { dec.Close(); return nil }, f.Close}}, nil
	case ".sz":
		return &readCloser{Reader: snappy.NewReader(f), closers: []func() error{f.Close}}, nil
	}

	return f, nil
}

// compression returns the compression extension of path, "" if uncompressed.
func compression(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gz", ".sz":
		return ext
	case ".zst", ".zstd":
		return ".zst"
	}
	return ""
}

// WriteFile writes to path through write. The output is staged in a temporary
// file in the same directory and renamed into place, so path is either
// complete or untouched. Paths ending in .gz, .zst or .sz are compressed
// the way Open expects them.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	var w io.Writer = buf
	var flush func() error

	switch compression(path) {
	case ".gz":
		gz := gzip.NewWriter(buf)
		w, flush = gz, gz.Close
	case ".zst":
		enc, encErr := zstd.NewWriter(buf)
		if encErr != nil {
			return encErr
		}
		w, flush = enc, enc.Close
	case ".sz":
		sz := snappy.NewBufferedWriter(buf)
		w, flush = sz, sz.Close
	}

	if err = write(w); err != nil {
		return err
	}
	if flush != nil {
		if err = flush(); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output to %s: %w", path, err)
	}
	return nil
}

// WriteFASTA writes one record per contig. Sequence lines are wrapped at
// wrap bases, or left whole if wrap is 0.
func WriteFASTA(w io.Writer, contigs []Contig, wrap int) error {
	for _, c := range contigs {
		header := fmt.Sprintf(">%s len=%d", c.ID, len(c.Seq))
		if c.Coverage > 0 {
			header += fmt.Sprintf(" cov=%.2f", c.Coverage)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}

		seq := c.Seq
		for wrap > 0 && len(seq) > wrap {
			if _, err := io.WriteString(w, seq[:wrap]+"\n"); err != nil {
				return err
			}
			seq = seq[wrap:]
		}
		if _, err := io.WriteString(w, seq+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteContigs writes contigs to a FASTA file at path.
func WriteContigs(path string, contigs []Contig, wrap int) error {
	return WriteFile(path, func(w io.Writer) error {
		return WriteFASTA(w, contigs, wrap)
	})
}
