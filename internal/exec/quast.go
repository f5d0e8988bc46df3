package exec

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Report is a QUAST report.tsv: metric rows for one assembly.
type Report struct {
	// Assembly is the name QUAST gave the assembly
	Assembly string

	// Metrics by name, ex: "N50", "Total length"
	Metrics map[string]string

	// Order of the metrics in the report
	Order []string
}

// Quast runs QUAST on an assembly, against a reference if one is given,
// and returns the path to the report.tsv it writes in outDir. Contigs
// shorter than minContig are ignored by QUAST.
func Quast(ctx context.Context, tool Tool, assembly, reference, outDir string, minContig int) (string, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create QUAST output dir: %w", err)
	}

	args := []string{
		assembly,
		"-o", outDir,
		"--min-contig", strconv.Itoa(minContig),
		"-t", threads(),
	}
	if reference != "" {
		args = append(args, "-r", reference)
	}

	if _, err := Run(ctx, tool, args...); err != nil {
		return "", err
	}

	report := filepath.Join(outDir, "report.tsv")
	if _, err := os.Stat(report); err != nil {
		return "", fmt.Errorf("%s didn't write a report: %w", tool.Name, err)
	}
	return report, nil
}

// ParseReport reads a QUAST report.tsv. The first row names the assembly
// and every other row is a metric and its value.
func ParseReport(r io.Reader) (*Report, error) {
	report := &Report{Metrics: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.SplitN(line, "\t", 2)
		if len(cols) < 2 {
			return nil, fmt.Errorf("report row %q has no value", line)
		}

		if header {
			report.Assembly = cols[1]
			header = false
			continue
		}

		if _, ok := report.Metrics[cols[0]]; !ok {
			report.Order = append(report.Order, cols[0])
		}
		report.Metrics[cols[0]] = cols[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if header {
		return nil, fmt.Errorf("empty report")
	}
	return report, nil
}

// ReadReport parses the QUAST report at path.
func ReadReport(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QUAST report %s: %w", path, err)
	}
	return report, nil
}

// Compare writes the reports side by side as a TSV, a row per metric and a
// column per report. Metrics follow the first report they appear in.
func Compare(w io.Writer, names []string, reports []*Report) error {
	var order []string
	seen := make(map[string]bool)
	for _, r := range reports {
		for _, m := range r.Order {
			if !seen[m] {
				seen[m] = true
				order = append(order, m)
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\t%s\n", strings.Join(names, "\t"))
	for _, m := range order {
		row := []string{m}
		for _, r := range reports {
			row = append(row, r.Metrics[m])
		}
		fmt.Fprintln(bw, strings.Join(row, "\t"))
	}
	return bw.Flush()
}
