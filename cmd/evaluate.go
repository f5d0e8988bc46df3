package cmd

import (
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// evaluateCmd runs QUAST on assemblies
var evaluateCmd = &cobra.Command{
	Use:                        "evaluate",
	Short:                      "Compare assemblies with QUAST",
	Run:                        assemble.EvaluateCmd,
	PreRun:                     bindFlags,
	SuggestionsMinimumDistance: 3,
	Long: `Run QUAST on each assembly, against a reference if one is given, and write
a table comparing their reports to <out>/assembly_comparison.tsv.

With --spades the reads are also assembled by SPAdes, and with --canu long
reads are assembled by Canu, and compared with the rest. QUAST, SPAdes and
Canu are found through --quast, --spades-path and --canu-path, the QUAST_PATH,
SPADES_PATH and CANU_PATH environment variables, or the PATH.`,
	Example: `  contig evaluate -a reads_dbg_k31.fasta -a reads_olc_o20.fasta -r ref.fasta -o quast_results`,
}

// set flags
func init() {
	evaluateCmd.Flags().StringSliceP("assembly", "a", nil, "assembly FASTA files")
	evaluateCmd.Flags().StringP("reference", "r", "", "reference genome")
	evaluateCmd.Flags().StringP("out", "o", "quast_results", "output directory")
	evaluateCmd.Flags().String("spades", "", "reads to assemble with SPAdes and compare")
	evaluateCmd.Flags().String("quast", "", "path to quast.py")
	evaluateCmd.Flags().String("spades-path", "spades.py", "path to spades.py")
	evaluateCmd.Flags().String("canu", "", "long reads to assemble with Canu and compare")
	evaluateCmd.Flags().String("canu-path", "canu", "path to canu")
	evaluateCmd.Flags().String("genome-size", "30k", "genome size estimate for Canu")
	evaluateCmd.Flags().Bool("nanopore", false, "pass Canu reads as raw nanopore rather than raw PacBio")
	evaluateCmd.Flags().Int("min-contig", 100, "shortest contig QUAST counts")
	viper.BindPFlag("quast-path", evaluateCmd.Flags().Lookup("quast"))

	RootCmd.AddCommand(evaluateCmd)
}
