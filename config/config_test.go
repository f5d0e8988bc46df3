package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func Test_Load_defaults(t *testing.T) {
	c, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}

	if c.K != 31 || c.MinOverlap != 20 || c.Algorithm != Both {
		t.Errorf("Load() = k %d, min-overlap %d, algorithm %s", c.K, c.MinOverlap, c.Algorithm)
	}
	if c.Workers < 1 {
		t.Errorf("Load() workers = %d, want >= 1", c.Workers)
	}
	if !c.ReduceTransitive {
		t.Error("expected transitive reduction to be on by default")
	}
	if c.CanuPath != "canu" || c.GenomeSize != "30k" || c.Nanopore {
		t.Errorf("Load() = canu-path %s, genome-size %s, nanopore %v", c.CanuPath, c.GenomeSize, c.Nanopore)
	}
}

func Test_Load_env(t *testing.T) {
	t.Setenv("CONTIG_K", "21")
	t.Setenv("CONTIG_MIN_OVERLAP", "7")
	t.Setenv("QUAST_PATH", "/opt/quast/quast.py")
	t.Setenv("CANU_PATH", "/opt/canu/bin/canu")

	c, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}

	if c.K != 21 {
		t.Errorf("k = %d, want 21", c.K)
	}
	if c.MinOverlap != 7 {
		t.Errorf("min-overlap = %d, want 7", c.MinOverlap)
	}
	if c.QuastPath != "/opt/quast/quast.py" {
		t.Errorf("quast-path = %s", c.QuastPath)
	}
	if c.CanuPath != "/opt/canu/bin/canu" {
		t.Errorf("canu-path = %s", c.CanuPath)
	}
}

func Test_Load_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	yaml := "k: 45\nalgorithm: DBG\nwrap: 60\n"
	if err := os.WriteFile(settings, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set("settings", settings)

	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}

	if c.K != 45 || c.Algorithm != DBG || c.Wrap != 60 {
		t.Errorf("Load() = k %d, algorithm %s, wrap %d", c.K, c.Algorithm, c.Wrap)
	}
	if !c.RunDBG() || c.RunOLC() {
		t.Errorf("expected only the dbg assembler to be selected")
	}
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{
			"both assemblers",
			Config{K: 31, MinOverlap: 20, Algorithm: Both},
			false,
		},
		{
			"unknown algorithm",
			Config{K: 31, MinOverlap: 20, Algorithm: "spades"},
			true,
		},
		{
			"k too small",
			Config{K: 1, MinOverlap: 20, Algorithm: DBG},
			true,
		},
		{
			"k ignored for olc",
			Config{K: 1, MinOverlap: 20, Algorithm: OLC},
			false,
		},
		{
			"min-overlap too small",
			Config{K: 31, MinOverlap: 0, Algorithm: OLC},
			true,
		},
		{
			"negative wrap",
			Config{K: 31, MinOverlap: 20, Algorithm: Both, Wrap: -1},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.conf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
