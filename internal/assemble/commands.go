package assemble

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/ashhadm/CS-249/config"
	"github.com/ashhadm/CS-249/internal/dbg"
	"github.com/ashhadm/CS-249/internal/exec"
	"github.com/ashhadm/CS-249/internal/graphio"
	"github.com/ashhadm/CS-249/internal/kmer"
	"github.com/ashhadm/CS-249/internal/olc"
	"github.com/ashhadm/CS-249/internal/seqio"
	"github.com/ashhadm/CS-249/internal/stats"
	"github.com/spf13/cobra"
)

// GraphCmd writes the De Bruijn graph of the reads, or their overlap graph
// with --overlap, to the out path as GFA or DOT.
func GraphCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	overlap, _ := cmd.Flags().GetBool("overlap")

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		cmd.Help()
		stderr.Fatalln("\nno output graph path passed.")
	}

	if overlap {
		conf.Algorithm = config.OLC
	} else {
		conf.Algorithm = config.DBG
	}
	if err := Graph(flags.in, out, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Graph builds the graph of the reads at in and writes it to out.
func Graph(in, out string, conf *config.Config) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", kmer.ErrInvalidParameter, err)
	}

	reads, err := seqio.ReadFile(in)
	if err != nil {
		return err
	}

	if conf.RunOLC() {
		overlaps, err := olc.FindOverlaps(reads, conf.MinOverlap,
			olc.WithWorkers(conf.Workers),
			olc.WithSeedIndex(conf.SeedLength),
			olc.WithReverseComplement(conf.ReverseComplement),
		)
		if err != nil {
			return err
		}
		g := olc.BuildGraph(reads, overlaps)
		if conf.ReduceTransitive {
			g.ReduceTransitive()
		}
		return graphio.WriteOverlap(out, g, reads)
	}

	g, err := dbg.Build(reads, conf.K,
		dbg.WithWorkers(conf.Workers),
		dbg.WithSkipAmbiguous(conf.SkipAmbiguous),
	)
	if err != nil {
		return err
	}
	return graphio.Write(out, g)
}

// StatsCmd prints a summary table of the contigs in each FASTA argument.
func StatsCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno contig files passed.")
	}

	summaries := make([]stats.Summary, len(args))
	for i, path := range args {
		records, err := seqio.ReadFile(path)
		if err != nil {
			stderr.Fatalln(err)
		}

		contigs := make([]seqio.Contig, len(records))
		for j, r := range records {
			contigs[j] = seqio.Contig{ID: r.ID, Seq: r.Seq}
		}
		summaries[i] = stats.Summarize(contigs)
	}

	if err := stats.Write(os.Stdout, args, summaries); err != nil {
		stderr.Fatalln(err)
	}
}

// EvaluateCmd runs QUAST on each assembly, and on SPAdes and Canu assemblies
// of reads if --spades or --canu is set, and writes a comparison of the reports.
func EvaluateCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	ev := &Evaluation{}
	ev.Assemblies, _ = cmd.Flags().GetStringSlice("assembly")
	ev.Assemblies = append(ev.Assemblies, args...)
	ev.Reference, _ = cmd.Flags().GetString("reference")
	ev.SpadesReads, _ = cmd.Flags().GetString("spades")
	ev.CanuReads, _ = cmd.Flags().GetString("canu")
	ev.OutDir, _ = cmd.Flags().GetString("out")

	if len(ev.Assemblies) == 0 && ev.SpadesReads == "" && ev.CanuReads == "" {
		cmd.Help()
		stderr.Fatalln("\nno assemblies passed.")
	}

	comparison, err := Evaluate(context.Background(), conf, ev)
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Println(comparison)
}

// Evaluation is a set of assemblies to compare.
type Evaluation struct {
	// Assemblies are contig FASTA files
	Assemblies []string

	// Reference is the genome to evaluate against, optional
	Reference string

	// SpadesReads are reads to assemble with SPAdes and compare, optional
	SpadesReads string

	// CanuReads are long reads to assemble with Canu and compare, optional
	CanuReads string

	// OutDir holds a QUAST dir per assembly and the comparison
	OutDir string
}

// Evaluate runs QUAST on the assemblies, each in its own directory under
// ev.OutDir, and writes the comparison of their reports to
// ev.OutDir/assembly_comparison.tsv. Reads set for SPAdes or Canu are
// assembled first and those assemblies are evaluated with the rest. It
// returns the comparison's path.
func Evaluate(ctx context.Context, conf *config.Config, ev *Evaluation) (string, error) {
	outDir := ev.OutDir
	if outDir == "" {
		outDir = "quast_results"
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", err
	}

	assemblies := append([]string{}, ev.Assemblies...)
	names := make([]string, 0, len(assemblies)+2)
	for _, a := range assemblies {
		names = append(names, baseName(a))
	}

	if ev.SpadesReads != "" {
		scratch, err := exec.Scratch(filepath.Join(outDir, "spades"))
		if err != nil {
			return "", err
		}
		logf(conf, "running SPAdes on %s in %s", ev.SpadesReads, scratch)

		contigs, err := exec.Spades(ctx, exec.Tool{Name: "SPAdes", Path: conf.SpadesPath}, ev.SpadesReads, scratch)
		if err != nil {
			return "", err
		}
		assemblies = append(assemblies, contigs)
		names = append(names, "spades")
	}

	if ev.CanuReads != "" {
		scratch, err := exec.Scratch(filepath.Join(outDir, "canu"))
		if err != nil {
			return "", err
		}
		logf(conf, "running Canu on %s in %s", ev.CanuReads, scratch)

		tool := exec.Tool{Name: "Canu", Path: conf.CanuPath}
		contigs, err := exec.Canu(ctx, tool, ev.CanuReads, scratch, conf.GenomeSize, conf.Nanopore)
		if err != nil {
			return "", err
		}
		assemblies = append(assemblies, contigs)
		names = append(names, "canu")
	}

	quast := exec.Tool{Name: "QUAST", Path: conf.QuastPath}
	reports := make([]*exec.Report, len(assemblies))
	for i, a := range assemblies {
		logf(conf, "running QUAST on %s", a)

		path, err := exec.Quast(ctx, quast, a, ev.Reference, filepath.Join(outDir, names[i]), conf.MinContig)
		if err != nil {
			return "", err
		}
		if reports[i], err = exec.ReadReport(path); err != nil {
			return "", err
		}
	}

	comparison := filepath.Join(outDir, "assembly_comparison.tsv")
	err := seqio.WriteFile(comparison, func(w io.Writer) error {
		return exec.Compare(w, names, reports)
	})
	return comparison, err
}

// KmersCmd prints the most frequent k-mers of the reads and, with
// --histogram, the k-mer count histogram instead.
func KmersCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	canonical, _ := cmd.Flags().GetBool("canonical")
	top, _ := cmd.Flags().GetInt("top")
	histogram, _ := cmd.Flags().GetBool("histogram")

	reads, err := seqio.ReadFile(flags.in)
	if err != nil {
		stderr.Fatalln(err)
	}
	seqs := make([]string, len(reads))
	for i, r := range reads {
		seqs[i] = r.Seq
	}

	spectrum, err := kmer.NewSpectrum(seqs, conf.K, canonical)
	if err != nil {
		stderr.Fatalln(err)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	if histogram {
		fmt.Fprintf(writer, "count\tkmers\t\n")
		for count, n := range spectrum.Histogram() {
			if n > 0 {
				fmt.Fprintf(writer, "%d\t%d\t\n", count, n)
			}
		}
	} else {
		fmt.Fprintf(writer, "kmer\tcount\t\n")
		for _, e := range spectrum.Top(top) {
			fmt.Fprintf(writer, "%s\t%d\t\n", e.Kmer, e.Count)
		}
	}
	writer.Flush()

	if conf.Verbose {
		stderr.Printf("%d distinct %d-mers, %d windows with ambiguous bases", len(spectrum.Counts), conf.K, spectrum.Skipped)
	}
}
