package exec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// script writes an executable shell script to dir.
func script(t *testing.T, dir, name, body string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// outDir is shell that sets $out to the argument after -o
const outDir = `while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then out="$2"; fi
	shift
done
`

func Test_Run(t *testing.T) {
	dir := t.TempDir()

	t.Run("output", func(t *testing.T) {
		tool := Tool{Name: "echo", Path: script(t, dir, "echo.sh", `echo "$@"`)}
		output, err := Run(context.Background(), tool, "a", "b")
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(string(output)); got != "a b" {
			t.Errorf("Run() = %q, want %q", got, "a b")
		}
	})

	t.Run("missing executable", func(t *testing.T) {
		tool := Tool{Name: "missing", Path: filepath.Join(dir, "missing")}
		if _, err := Run(context.Background(), tool); !errors.Is(err, ErrNotFound) {
			t.Errorf("Run() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("exit status", func(t *testing.T) {
		tool := Tool{Name: "fail", Path: script(t, dir, "fail.sh", "echo broken\nexit 3\n")}
		_, err := Run(context.Background(), tool)

		var toolErr *Error
		if !errors.As(err, &toolErr) {
			t.Fatalf("Run() error = %v, want *Error", err)
		}
		if toolErr.ExitCode != 3 || !strings.Contains(string(toolErr.Output), "broken") {
			t.Errorf("Run() error = %+v", toolErr)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tool := Tool{Name: "sleep", Path: script(t, dir, "sleep.sh", "sleep 10\n")}
		if _, err := Run(ctx, tool); !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	})
}

func Test_Scratch(t *testing.T) {
	root := t.TempDir()

	a, err := Scratch(root)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scratch(root)
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Errorf("Scratch() returned %s twice", a)
	}
	for _, dir := range []string{a, b} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("%s isn't a directory", dir)
		}
	}
}

func Test_Quast(t *testing.T) {
	dir := t.TempDir()
	tool := Tool{Name: "QUAST", Path: script(t, dir, "quast.sh", outDir+
		`printf 'Assembly\tcontigs\n# contigs\t3\nN50\t120\nTotal length\t400\n' > "$out/report.tsv"
`)}

	path, err := Quast(context.Background(), tool, filepath.Join(dir, "contigs.fasta"), "", filepath.Join(dir, "quast"), 100)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "quast", "report.tsv"); path != want {
		t.Errorf("Quast() = %s, want %s", path, want)
	}

	report, err := ReadReport(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Report{
		Assembly: "contigs",
		Metrics:  map[string]string{"# contigs": "3", "N50": "120", "Total length": "400"},
		Order:    []string{"# contigs", "N50", "Total length"},
	}
	if !reflect.DeepEqual(report, want) {
		t.Errorf("ReadReport() = %+v, want %+v", report, want)
	}
}

func Test_Quast_noReport(t *testing.T) {
	dir := t.TempDir()
	tool := Tool{Name: "QUAST", Path: script(t, dir, "quast.sh", "exit 0\n")}

	if _, err := Quast(context.Background(), tool, "contigs.fasta", "ref.fasta", filepath.Join(dir, "quast"), 100); err == nil {
		t.Error("Quast() without a report.tsv should fail")
	}
}

func Test_ParseReport_errors(t *testing.T) {
	tests := []struct {
		name   string
		report string
	}{
		{"empty", ""},
		{"row without a value", "Assembly\tcontigs\nN50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReport(strings.NewReader(tt.report)); err == nil {
				t.Error("ParseReport() should fail")
			}
		})
	}
}

func Test_Compare(t *testing.T) {
	reports := []*Report{
		{Metrics: map[string]string{"N50": "100", "# contigs": "4"}, Order: []string{"# contigs", "N50"}},
		{Metrics: map[string]string{"N50": "250", "GC (%)": "41.2"}, Order: []string{"N50", "GC (%)"}},
	}

	var buf bytes.Buffer
	if err := Compare(&buf, []string{"dbg", "olc"}, reports); err != nil {
		t.Fatal(err)
	}

	want := "\tdbg\tolc\n" +
		"# contigs\t4\t\n" +
		"N50\t100\t250\n" +
		"GC (%)\t\t41.2\n"
	if got := buf.String(); got != want {
		t.Errorf("Compare() = %q, want %q", got, want)
	}
}

func Test_Spades(t *testing.T) {
	dir := t.TempDir()
	tool := Tool{Name: "SPAdes", Path: script(t, dir, "spades.sh", outDir+
		`mkdir -p "$out"
printf '>NODE_1\nACGT\n' > "$out/contigs.fasta"
`)}

	path, err := Spades(context.Background(), tool, filepath.Join(dir, "reads.fq"), filepath.Join(dir, "spades"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "spades", "contigs.fasta"); path != want {
		t.Errorf("Spades() = %s, want %s", path, want)
	}
}

func Test_Canu(t *testing.T) {
	dir := t.TempDir()
	tool := Tool{Name: "Canu", Path: script(t, dir, "canu.sh", `while [ $# -gt 0 ]; do
	if [ "$1" = "-d" ]; then out="$2"; fi
	if [ "$1" = "-nanopore-raw" ]; then reads="$2"; fi
	shift
done
mkdir -p "$out"
printf '>tig00000001\nACGT\n' > "$out/canu.contigs.fasta"
printf '%s\n' "$reads" > "$out/reads.txt"
`)}

	reads := filepath.Join(dir, "reads.fq")
	path, err := Canu(context.Background(), tool, reads, filepath.Join(dir, "canu"), "30k", true)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "canu", "canu.contigs.fasta"); path != want {
		t.Errorf("Canu() = %s, want %s", path, want)
	}

	passed, err := os.ReadFile(filepath.Join(dir, "canu", "reads.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(passed) != reads+"\n" {
		t.Errorf("Canu passed nanopore reads %q, want %q", passed, reads)
	}
}

func Test_Canu_noContigs(t *testing.T) {
	dir := t.TempDir()
	tool := Tool{Name: "Canu", Path: script(t, dir, "canu.sh", "exit 0\n")}

	if _, err := Canu(context.Background(), tool, "reads.fq", filepath.Join(dir, "canu"), "30k", false); err == nil {
		t.Error("expected an error when Canu writes no contigs")
	}
}
