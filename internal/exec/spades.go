package exec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Spades assembles single-end reads with SPAdes in isolate mode and
// returns the path to the contigs.fasta it writes in outDir.
func Spades(ctx context.Context, tool Tool, reads, outDir string) (string, error) {
	args := []string{
		"-s", reads,
		"-o", outDir,
		"--isolate",
		"--phred-offset", "33",
		"-t", threads(),
	}

	if _, err := Run(ctx, tool, args...); err != nil {
		return "", err
	}

	contigs := filepath.Join(outDir, "contigs.fasta")
	if _, err := os.Stat(contigs); err != nil {
		return "", fmt.Errorf("%s didn't write contigs: %w", tool.Name, err)
	}
	return contigs, nil
}
