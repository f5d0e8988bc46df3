package cmd

import (
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/spf13/cobra"
)

// graphCmd writes the assembly graph of a read file
var graphCmd = &cobra.Command{
	Use:                        "graph",
	Short:                      "Write the De Bruijn or overlap graph of reads as GFA or DOT",
	Run:                        assemble.GraphCmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 3,
	Long: `Build the De Bruijn graph of the reads, or their overlap graph with --overlap,
and write it to the output path. Paths ending in .dot or .gv are written as
Graphviz, others as GFA 1.0. A .gz or .zst suffix compresses the output.`,
	Example: `  contig graph -i reads.fq -k 31 -o graph.gfa
  contig graph -i reads.fq --overlap -m 20 -o overlaps.dot`,
}

// set flags
func init() {
	graphCmd.Flags().StringP("in", "i", "", "input reads")
	graphCmd.Flags().StringP("out", "o", "", "output graph path")
	graphCmd.Flags().IntP("k", "k", 31, "k-mer length")
	graphCmd.Flags().IntP("min-overlap", "m", 20, "minimum overlap length")
	graphCmd.Flags().Bool("overlap", false, "write the overlap graph instead of the De Bruijn graph")
	graphCmd.Flags().Bool("skip-ambiguous", false, "leave k-mers with ambiguous bases out of the graph")
	graphCmd.Flags().Bool("reverse-complement", false, "also find overlaps with reverse complemented reads")

	RootCmd.AddCommand(graphCmd)
}
