package seqio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_WriteFASTA(t *testing.T) {
	contigs := []Contig{
		{ID: "dbg_contig_1", Seq: "ACGTACGTAC", Coverage: 2},
		{ID: "dbg_contig_2", Seq: "GGG"},
	}

	tests := []struct {
		name string
		wrap int
		want string
	}{
		{
			"unwrapped",
			0,
			">dbg_contig_1 len=10 cov=2.00\nACGTACGTAC\n>dbg_contig_2 len=3\nGGG\n",
		},
		{
			"wrapped",
			4,
			">dbg_contig_1 len=10 cov=2.00\nACGT\nACGT\nAC\n>dbg_contig_2 len=3\nGGG\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteFASTA(&buf, contigs, tt.wrap); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteFASTA() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func Test_WriteFile_atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contigs.fasta")

	failed := errors.New("failed mid-write")
	err := WriteFile(path, func(w io.Writer) error {
		io.WriteString(w, ">partial\nACG")
		return failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("WriteFile() error = %v, want %v", err, failed)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no output file after a failed write, stat error = %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected temporary files to be removed, found %d entries", len(entries))
	}
}

func Test_WriteFile_compressed(t *testing.T) {
	dir := t.TempDir()
	contigs := []Contig{{ID: "olc_contig_1", Seq: "ACGTTGCA"}, {ID: "olc_contig_2", Seq: "GGGAAA"}}
	want := []Read{{ID: "olc_contig_1", Seq: "ACGTTGCA"}, {ID: "olc_contig_2", Seq: "GGGAAA"}}
	plain := ">olc_contig_1 len=8\nACGTTGCA\n>olc_contig_2 len=6\nGGGAAA\n"

	for _, ext := range []string{"", ".gz", ".zst", ".sz"} {
		t.Run("fasta"+ext, func(t *testing.T) {
			path := filepath.Join(dir, "contigs.fasta"+ext)
			if err := WriteContigs(path, contigs, 0); err != nil {
				t.Fatal(err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if compressed := string(raw) != plain; compressed != (ext != "") {
				t.Errorf("%s written compressed = %v", path, compressed)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ReadFile() = %+v, want %+v", got, want)
			}
		})
	}
}

func Test_Name(t *testing.T) {
	contigs := []Contig{{Seq: "ACGT"}, {Seq: "GGTT"}}
	Name(contigs, "olc")

	if contigs[0].ID != "olc_contig_1" || contigs[1].ID != "olc_contig_2" || contigs[1].Source != "olc" {
		t.Errorf("Name() = %+v", contigs)
	}
}
