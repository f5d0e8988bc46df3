package assemble

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashhadm/CS-249/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags are the parsed cobra flags of an assembly run.
type Flags struct {
	// the path to the reads
	in string

	// the directory to write outputs to
	out string

	// the name outputs start with, the input's name without extensions
	base string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string) *Flags {
	if out == "" {
		out = filepath.Dir(in)
	}
	return &Flags{in: in, out: out, base: baseName(in)}
}

// Cmd takes a cobra command (with its flags) and assembles the reads
// with the algorithm named by the command.
func Cmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	conf.Algorithm = strings.ToLower(cmd.Name())

	out, err := Run(context.Background(), flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	for _, a := range out.Assemblies {
		fmt.Printf("%s: %d contigs, %d bp, N50 %d -> %s\n", a.Algorithm, a.Stats.Count, a.Stats.TotalLength, a.Stats.N50, a.Contigs)
	}
	if conf.Verbose {
		fmt.Printf("%.3fs\n", out.Execution)
	}
}

// parseCmdFlags gathers the in path and out dir from a cobra cmd object.
// The input can also be the first argument.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	in, err := cmd.Flags().GetString("in")
	if (in == "" || err != nil) && len(args) > 0 {
		in = args[0]
	}
	if in == "" {
		cmd.Help()
		stderr.Fatalln("\nno input reads passed.")
	}

	out, _ := cmd.Flags().GetString("out")
	return NewFlags(in, out), config.New()
}

// baseName is the file name of path without its directory, compression
// and format extensions, ex: "data/reads.fastq.gz" is "reads".
func baseName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".gz", ".zst", ".zstd", ".sz"} {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
