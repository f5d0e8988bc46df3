package exec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// canuPrefix names the files Canu writes in its output dir
const canuPrefix = "canu"

// Canu assembles long reads with Canu and returns the path to the
// canu.contigs.fasta it writes in outDir. genomeSize is Canu's estimate,
// ex: "30k" or "4.8m". Reads are taken as raw nanopore reads, or raw
// PacBio reads if nanopore is false.
func Canu(ctx context.Context, tool Tool, reads, outDir, genomeSize string, nanopore bool) (string, error) {
	technology := "-pacbio-raw"
	if nanopore {
		technology = "-nanopore-raw"
	}

	args := []string{
		"-p", canuPrefix,
		"-d", outDir,
		"genomeSize=" + genomeSize,
		"minReadLength=100",
		"minOverlapLength=50",
		"stopOnLowCoverage=1",
		"minInputCoverage=0",
		"maxThreads=" + threads(),
		"useGrid=false",
		"-fast",
		technology, reads,
	}

	if _, err := Run(ctx, tool, args...); err != nil {
		return "", err
	}

	contigs := filepath.Join(outDir, canuPrefix+".contigs.fasta")
	if _, err := os.Stat(contigs); err != nil {
		return "", fmt.Errorf("%s didn't write contigs: %w", tool.Name, err)
	}
	return contigs, nil
}
