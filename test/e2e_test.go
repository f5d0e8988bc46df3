package test

import (
	"context"
	"os"
	"path"
	"reflect"
	"testing"

	"github.com/ashhadm/CS-249/config"
	"github.com/ashhadm/CS-249/internal/assemble"
	"github.com/ashhadm/CS-249/internal/seqio"
)

func Test_Assemble(t *testing.T) {
	type testFlags struct {
		in   string
		conf config.Config
	}

	base := config.Config{K: 21, MinOverlap: 25, Algorithm: config.Both, Workers: 1, ReduceTransitive: true}
	with := func(modify func(*config.Config)) config.Config {
		c := base
		modify(&c)
		return c
	}

	tests := []testFlags{
		{path.Join("input", "reads.fq"), base},
		{path.Join("input", "reads.fa"), base},
		{path.Join("input", "reads.fq"), with(func(c *config.Config) { c.Workers = 4 })},
		{path.Join("input", "reads.fq"), with(func(c *config.Config) { c.SeedLength = 12 })},
		{path.Join("input", "reads.fq"), with(func(c *config.Config) { c.ReverseComplement = true })},
		{path.Join("input", "reads.fq"), with(func(c *config.Config) { c.Wrap = 60; c.SkipAmbiguous = true })},
	}

	var first [][]string
	for _, tt := range tests {
		out, err := os.MkdirTemp("", "contig-e2e-")
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(out)

		conf := tt.conf
		output, err := assemble.Run(context.Background(), assemble.NewFlags(tt.in, out), &conf)
		if err != nil {
			t.Fatalf("failed assembling %s with %+v: %v", tt.in, tt.conf, err)
		}

		var seqs [][]string
		for _, a := range output.Assemblies {
			contigs, err := seqio.ReadFile(a.Contigs)
			if err != nil {
				t.Fatal(err)
			}

			var s []string
			for _, c := range contigs {
				s = append(s, c.Seq)
			}
			seqs = append(seqs, s)
		}

		if first == nil {
			first = seqs
			continue
		}
		if !reflect.DeepEqual(seqs, first) {
			t.Errorf("%s with %+v assembled %v, want %v", tt.in, tt.conf, seqs, first)
		}
	}
}
