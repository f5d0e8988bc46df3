package assemble

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/ashhadm/CS-249/config"
	"github.com/ashhadm/CS-249/internal/graphio"
	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/seqio"
)

const genome = "GGTCATTAGACTCCTGGGCCTTATGTAAACTAATTGCGATCCGGGCGTCTCGCGCGCTGTTCCTTGAGCCAGTATATCTCACCAGCCGAGTGGTGAGTGCCGACGAGCGGAGAATTAGGG"

var fixture = filepath.Join("..", "..", "test", "input", "reads.fq")

func testConfig(algorithm string) *config.Config {
	return &config.Config{
		K:                15,
		MinOverlap:       20,
		Algorithm:        algorithm,
		Workers:          2,
		ReduceTransitive: true,
	}
}

// files lists the names of the files in dir.
func files(t *testing.T, dir string) (names []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return
}

func Test_Run(t *testing.T) {
	out := t.TempDir()
	conf := testConfig(config.Both)
	conf.DOT = true

	output, err := Run(context.Background(), NewFlags(fixture, out), conf)
	if err != nil {
		t.Fatal(err)
	}

	wantFiles := []string{
		"reads.report.json",
		"reads_dbg_k15.dot",
		"reads_dbg_k15.fasta",
		"reads_dbg_k15.gfa",
		"reads_olc_o20.dot",
		"reads_olc_o20.fasta",
		"reads_olc_o20.gfa",
	}
	if got := files(t, out); !reflect.DeepEqual(got, wantFiles) {
		t.Errorf("Run() wrote %v, want %v", got, wantFiles)
	}

	if output.Reads != 9 || len(output.Assemblies) != 2 {
		t.Fatalf("Run() = %+v", output)
	}
	for _, a := range output.Assemblies {
		contigs, err := seqio.ReadFile(a.Contigs)
		if err != nil {
			t.Fatal(err)
		}
		if len(contigs) != 1 || contigs[0].Seq != genome {
			t.Errorf("%s contigs = %+v, want the genome", a.Algorithm, contigs)
		}
		if a.Stats.N50 != len(genome) {
			t.Errorf("%s N50 = %d, want %d", a.Algorithm, a.Stats.N50, len(genome))
		}
		if got := a.Sequences(); len(got) != 1 || got[0].ID != a.Algorithm+"_contig_1" {
			t.Errorf("%s Sequences() = %+v", a.Algorithm, got)
		}
	}

	olcRun := output.Assemblies[1]
	if olcRun.Algorithm != config.OLC || olcRun.Overlaps != 15 || olcRun.Edges != 8 {
		t.Errorf("olc = %+v, want 15 overlaps reduced to 8 edges", olcRun)
	}

	g, err := graphio.Read(output.Assemblies[0].Graph)
	if err != nil {
		t.Fatal(err)
	}
	if g.K != 15 || len(g.Edges) != len(genome)-14 {
		t.Errorf("graph has k=%d and %d edges, want k=15 and %d", g.K, len(g.Edges), len(genome)-14)
	}

	report, err := os.ReadFile(filepath.Join(out, "reads.report.json"))
	if err != nil {
		t.Fatal(err)
	}
	var parsed Output
	if err := json.Unmarshal(report, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.Time == "" || parsed.Input != fixture || len(parsed.Assemblies) != 2 {
		t.Errorf("report = %+v", parsed)
	}
}

func Test_Run_fasta(t *testing.T) {
	out := t.TempDir()
	in := filepath.Join("..", "..", "test", "input", "reads.fa")

	output, err := Run(context.Background(), NewFlags(in, out), testConfig(config.DBG))
	if err != nil {
		t.Fatal(err)
	}
	if len(output.Assemblies) != 1 || output.Assemblies[0].Stats.Longest != len(genome) {
		t.Errorf("Run() = %+v", output)
	}
}

func Test_Run_errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.fq")
	bad := filepath.Join(dir, "bad.fq")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("@r1\nACGT\n+\nII\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		in     string
		modify func(*config.Config)
		want   error
	}{
		{"k as long as the reads", fixture, func(c *config.Config) { c.K = 40 }, kmer.ErrInvalidParameter},
		{"k below 2", fixture, func(c *config.Config) { c.K = 1 }, kmer.ErrInvalidParameter},
		{"min overlap over the shortest read", fixture, func(c *config.Config) { c.MinOverlap = 41 }, kmer.ErrInvalidParameter},
		{"unknown algorithm", fixture, func(c *config.Config) { c.Algorithm = "spades" }, kmer.ErrInvalidParameter},
		{"empty input is fatal", empty, func(c *config.Config) { c.FailOnEmpty = true }, seqio.ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out")
			conf := testConfig(config.Both)
			tt.modify(conf)

			if _, err := Run(context.Background(), NewFlags(tt.in, out), conf); !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Errorf("Run() created %s", out)
			}
		})
	}

	t.Run("parse error", func(t *testing.T) {
		_, err := Run(context.Background(), NewFlags(bad, t.TempDir()), testConfig(config.Both))
		var parseErr *seqio.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Run() error = %v, want a ParseError", err)
		}
	})
}

func Test_Run_empty(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "none.fa")
	if err := os.WriteFile(in, []byte("\n"), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := Run(context.Background(), NewFlags(in, dir), testConfig(config.Both))
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range output.Assemblies {
		if a.Stats.Count != 0 {
			t.Errorf("%s assembled %d contigs from no reads", a.Algorithm, a.Stats.Count)
		}
	}
}

func Test_baseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"reads.fq", "reads"},
		{filepath.Join("data", "MERS_hiseq.fastq.gz"), "MERS_hiseq"},
		{"reads.fa.zst", "reads"},
		{"reads", "reads"},
	}
	for _, tt := range tests {
		if got := baseName(tt.path); got != tt.want {
			t.Errorf("baseName(%s) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func Test_Evaluate(t *testing.T) {
	dir := t.TempDir()
	quast := filepath.Join(dir, "quast.sh")
	script := `#!/bin/sh
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then out="$2"; fi
	shift
done
printf 'Assembly\tcontigs\nN50\t120\n' > "$out/report.tsv"
`
	if err := os.WriteFile(quast, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	conf := testConfig(config.Both)
	conf.QuastPath = quast
	conf.MinContig = 100

	ev := &Evaluation{Assemblies: []string{"a.fasta", "b.fasta"}, OutDir: filepath.Join(dir, "quast")}
	comparison, err := Evaluate(context.Background(), conf, ev)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(comparison)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\ta\tb\nN50\t120\t120\n"; string(got) != want {
		t.Errorf("comparison = %q, want %q", got, want)
	}
}

func Test_Evaluate_canu(t *testing.T) {
	dir := t.TempDir()
	write := func(name, script string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(script), 0755); err != nil {
			t.Fatal(err)
		}
		return path
	}

	conf := testConfig(config.Both)
	conf.MinContig = 100
	conf.GenomeSize = "1k"
	conf.QuastPath = write("quast.sh", `#!/bin/sh
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then out="$2"; fi
	shift
done
printf 'Assembly\tcontigs\nN50\t120\n' > "$out/report.tsv"
`)
	conf.CanuPath = write("canu.sh", `#!/bin/sh
while [ $# -gt 0 ]; do
	if [ "$1" = "-d" ]; then out="$2"; fi
	shift
done
mkdir -p "$out"
printf '>tig00000001\nACGT\n' > "$out/canu.contigs.fasta"
`)

	ev := &Evaluation{
		Assemblies: []string{"reads_olc_o20.fasta"},
		CanuReads:  filepath.Join(dir, "long.fq"),
		OutDir:     filepath.Join(dir, "quast"),
	}
	comparison, err := Evaluate(context.Background(), conf, ev)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(comparison)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\treads_olc_o20\tcanu\nN50\t120\t120\n"; string(got) != want {
		t.Errorf("comparison = %q, want %q", got, want)
	}
}
