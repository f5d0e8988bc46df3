package cmd

import (
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/spf13/cobra"
)

// kmersCmd counts the k-mers of reads
var kmersCmd = &cobra.Command{
	Use:                        "kmers",
	Short:                      "Count the k-mers of reads",
	Run:                        assemble.KmersCmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 2,
	Long: `Count the k-mers of the reads, up to 32 bases long, and print the most
frequent or a histogram of k-mer counts. Windows with ambiguous bases are
skipped.`,
}

// set flags
func init() {
	kmersCmd.Flags().StringP("in", "i", "", "input reads")
	kmersCmd.Flags().IntP("k", "k", 31, "k-mer length")
	kmersCmd.Flags().IntP("top", "t", 20, "number of k-mers to print, 0 for all")
	kmersCmd.Flags().BoolP("canonical", "c", false, "count k-mers with their reverse complements")
	kmersCmd.Flags().Bool("histogram", false, "print the k-mer count histogram")

	RootCmd.AddCommand(kmersCmd)
}
