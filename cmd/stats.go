package cmd

import (
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/spf13/cobra"
)

// statsCmd summarizes contig files
var statsCmd = &cobra.Command{
	Use:                        "stats [contigs.fasta] ... [contigsN.fasta]",
	Short:                      "Print the count, length, N50 and GC content of contig files",
	Run:                        assemble.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"n50"},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
