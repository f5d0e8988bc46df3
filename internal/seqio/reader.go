package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format of the reads in an input.
type Format int

const (
	// Unknown is an input whose first record hasn't been read
	Unknown Format = iota

	// FASTA records have a ">" header and one or more sequence lines
	FASTA

	// FASTQ records have four lines: "@" header, sequence, "+" and quality
	FASTQ
)

// line is one line of input without its line terminator.
type line struct {
	text   []byte
	offset int64
}

// Reader parses reads one record at a time. The format is detected
// from the first record.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer

	// offset of the next unread byte
	offset int64

	// record is the index of the next record
	record int

	format Format

	// a line that was read ahead (the next FASTA header)
	pending *line
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{r: bufio.NewReaderSize(r, 1<<16)}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// NewFileReader opens the reads at path, decompressing it if needed (see Open).
// Opening the same path again restarts the records from the beginning.
func NewFileReader(path string) (*Reader, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	rd := NewReader(rc)
	rd.closer = rc
	return rd, nil
}

// Close closes the underlying input if it's closeable.
func (rd *Reader) Close() error {
	if rd.closer == nil {
		return nil
	}
	return rd.closer.Close()
}

// Format returns the detected input format, Unknown until the first Next.
func (rd *Reader) Format() Format {
	return rd.format
}

// Next returns the next read. It returns io.EOF after the last record
// and a *ParseError for a malformed one.
func (rd *Reader) Next() (Read, error) {
	first, err := rd.nextNonBlank()
	if err != nil {
		return Read{}, err
	}

	if rd.format == Unknown {
		switch first.text[0] {
		case '>':
			rd.format = FASTA
		case '@':
			rd.format = FASTQ
		default:
			return Read{}, rd.errorf(first.offset, "expected a FASTA '>' or FASTQ '@' header, got %q", first.text[0])
		}
	}

	var read Read
	if rd.format == FASTA {
		read, err = rd.fasta(first)
	} else {
		read, err = rd.fastq(first)
	}
	if err != nil {
		return Read{}, err
	}

	rd.record++
	return read, nil
}

// fasta parses a record from its header line on.
func (rd *Reader) fasta(header line) (Read, error) {
	if header.text[0] != '>' {
		return Read{}, rd.errorf(header.offset, "expected a '>' header line")
	}
	id, err := rd.id(header)
	if err != nil {
		return Read{}, err
	}

	var seq strings.Builder
	for {
		l, err := rd.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Read{}, err
		}
		if len(l.text) > 0 && l.text[0] == '>' {
			rd.pending = &l
			break
		}
		if err := rd.appendBases(&seq, l); err != nil {
			return Read{}, err
		}
	}

	if seq.Len() == 0 {
		return Read{}, rd.errorf(header.offset, "record %s has no sequence", id)
	}

	return Read{ID: id, Seq: seq.String()}, nil
}

// fastq parses a four line record from its header line on.
func (rd *Reader) fastq(header line) (Read, error) {
	if header.text[0] != '@' {
		return Read{}, rd.errorf(header.offset, "expected an '@' header line")
	}
	id, err := rd.id(header)
	if err != nil {
		return Read{}, err
	}

	seqLine, err := rd.recordLine(header)
	if err != nil {
		return Read{}, err
	}
	if len(seqLine.text) == 0 {
		return Read{}, rd.errorf(seqLine.offset, "record %s has no sequence", id)
	}
	var seq strings.Builder
	if err := rd.appendBases(&seq, seqLine); err != nil {
		return Read{}, err
	}

	plus, err := rd.recordLine(header)
	if err != nil {
		return Read{}, err
	}
	if len(plus.text) == 0 || plus.text[0] != '+' {
		return Read{}, rd.errorf(plus.offset, "expected a '+' separator line")
	}

	qual, err := rd.recordLine(header)
	if err != nil {
		return Read{}, err
	}
	if len(qual.text) != seq.Len() {
		return Read{}, rd.errorf(qual.offset, "quality length %d does not match sequence length %d", len(qual.text), seq.Len())
	}

	return Read{ID: id, Seq: seq.String(), Qual: bytes.Clone(qual.text)}, nil
}

// id returns the first word after the header's marker.
func (rd *Reader) id(header line) (string, error) {
	fields := strings.Fields(string(header.text[1:]))
	if len(fields) == 0 {
		return "", rd.errorf(header.offset, "header has no identifier")
	}
	return fields[0], nil
}

// recordLine reads a line that must exist for the record to be complete.
func (rd *Reader) recordLine(header line) (line, error) {
	l, err := rd.readLine()
	if err == io.EOF {
		return line{}, rd.errorf(header.offset, "truncated record")
	}
	return l, err
}

// appendBases upper-cases and validates the bases of l onto seq.
func (rd *Reader) appendBases(seq *strings.Builder, l line) error {
	for i, b := range l.text {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if !IsBase(b) {
			return rd.errorf(l.offset+int64(i), "invalid base %q", l.text[i])
		}
		seq.WriteByte(b)
	}
	return nil
}

// nextNonBlank returns the next line with content, io.EOF if there is none.
func (rd *Reader) nextNonBlank() (line, error) {
	for {
		l, err := rd.readLine()
		if err != nil {
			return line{}, err
		}
		if len(bytes.TrimSpace(l.text)) > 0 {
			return l, nil
		}
	}
}

// readLine returns the next line, stripped of "\n" or "\r\n".
func (rd *Reader) readLine() (line, error) {
	if rd.pending != nil {
		l := *rd.pending
		rd.pending = nil
		return l, nil
	}

	text, err := rd.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return line{}, fmt.Errorf("failed to read input at byte %d: %w", rd.offset, err)
	}
	if len(text) == 0 && err != nil {
		return line{}, io.EOF
	}

	l := line{offset: rd.offset}
	rd.offset += int64(len(text))
	text = bytes.TrimSuffix(text, []byte("\n"))
	text = bytes.TrimSuffix(text, []byte("\r"))
	l.text = text

	return l, nil
}

func (rd *Reader) errorf(offset int64, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Record: rd.record, Msg: fmt.Sprintf(format, args...)}
}

// Parse reads every record of r into memory.
func Parse(r io.Reader) ([]Read, error) {
	return readAll(NewReader(r))
}

// ReadFile reads every record of the file at path into memory.
func ReadFile(path string) ([]Read, error) {
	rd, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer rd.Close()

	reads, err := readAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return reads, nil
}

func readAll(rd *Reader) (reads []Read, err error) {
	for {
		read, err := rd.Next()
		if err == io.EOF {
			return reads, nil
		}
		if err != nil {
			return nil, err
		}
		reads = append(reads, read)
	}
}
