package cmd

import (
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/spf13/cobra"
)

// assembleCmd is for assembling contigs from a read file
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble contigs from a FASTQ or FASTA file of reads",
	SuggestionsMinimumDistance: 3,
	Long: `Assemble reads into contigs with a De Bruijn graph (dbg), by
overlap-layout-consensus (olc), or with both side by side.

Contigs are written to <out>/<reads>_dbg_k<k>.fasta and <reads>_olc_o<m>.fasta
next to their GFA graphs, with a JSON report in <out>/<reads>.report.json.`,
	Aliases: []string{"asm"},
}

// dbgCmd assembles reads with a De Bruijn graph
var dbgCmd = &cobra.Command{
	Use:                        "dbg",
	Short:                      "Assemble reads with a De Bruijn graph of their k-mers",
	Run:                        assemble.Cmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 2,
	Long: `Build the De Bruijn graph of the reads' k-mers, nodes being (k-1)-mers
and edges the k-mers joining them, and walk its maximal non-branching
paths into contigs.`,
}

// olcCmd assembles reads by overlap-layout-consensus
var olcCmd = &cobra.Command{
	Use:                        "olc",
	Short:                      "Assemble reads by overlap, layout and consensus",
	Run:                        assemble.Cmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 2,
	Long: `Find exact suffix-prefix overlaps between the reads, drop contained reads,
lay out the non-branching paths of the overlap graph and merge each into a
contig.`,
}

// bothCmd runs both assemblers on the same reads
var bothCmd = &cobra.Command{
	Use:                        "both",
	Short:                      "Assemble reads with both the dbg and olc assemblers",
	Run:                        assemble.Cmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 2,
}

// set flags
func init() {
	for _, c := range []*cobra.Command{dbgCmd, olcCmd, bothCmd} {
		c.Flags().StringP("in", "i", "", "input reads (FASTQ or FASTA, optionally .gz, .zst or .sz)")
		c.Flags().StringP("out", "o", "", "output directory (default the input's directory)")
		c.Flags().Int("wrap", 0, "FASTA line width, 0 for one line per contig")
		c.Flags().Bool("fail-on-empty", false, "fail if the input has no reads")
		c.Flags().Bool("dot", false, "also write Graphviz DOT graphs")

		if c != olcCmd {
			c.Flags().IntP("k", "k", 31, "k-mer length")
			c.Flags().Bool("skip-ambiguous", false, "leave k-mers with ambiguous bases out of the graph")
		}
		if c != dbgCmd {
			c.Flags().IntP("min-overlap", "m", 20, "minimum overlap length")
			c.Flags().Int("seed-length", 0, "only compare reads sharing a seed of this length, 0 compares all")
			c.Flags().Bool("reverse-complement", false, "also find overlaps with reverse complemented reads")
			c.Flags().Bool("reduce-transitive", true, "remove transitive overlap edges before layout")
		}

		assembleCmd.AddCommand(c)
	}

	RootCmd.AddCommand(assembleCmd)
}
