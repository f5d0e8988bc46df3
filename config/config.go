// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DBG runs only the De Bruijn graph assembler
	DBG = "dbg"

	// OLC runs only the overlap-layout-consensus assembler
	OLC = "olc"

	// Both runs the two assemblers side by side
	Both = "both"

	// EnvPrefix is prepended to settings read from the environment, ex: CONTIG_K=31
	EnvPrefix = "CONTIG"

	// DotEnvFile is loaded, if present, before the environment is read
	DotEnvFile = ".env"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// errAlgorithm is returned for an unrecognized algorithm setting
	errAlgorithm = errors.New("unknown algorithm")
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment, and those
// available from the command line
type Config struct {
	// K is the k-mer length of the De Bruijn graph
	K int `mapstructure:"k"`

	// MinOverlap is the shortest suffix-prefix match between two reads that is an overlap
	MinOverlap int `mapstructure:"min-overlap"`

	// Algorithm is one of dbg, olc or both
	Algorithm string `mapstructure:"algorithm"`

	// Workers is the number of goroutines for k-mer extraction and overlap detection
	Workers int `mapstructure:"workers"`

	// Wrap is the line width of output FASTA sequence. 0 leaves sequences unwrapped
	Wrap int `mapstructure:"wrap"`

	// FailOnEmpty turns an input file without reads into an error
	FailOnEmpty bool `mapstructure:"fail-on-empty"`

	// SkipAmbiguous drops k-mers with bases other than A, C, G, T from the graph
	SkipAmbiguous bool `mapstructure:"skip-ambiguous"`

	// SeedLength, when > 0, filters overlap candidates through a prefix seed index
	SeedLength int `mapstructure:"seed-length"`

	// ReverseComplement also detects overlaps against the reverse complement of reads
	ReverseComplement bool `mapstructure:"reverse-complement"`

	// ReduceTransitive removes overlap edges implied by two shorter overlaps before layout
	ReduceTransitive bool `mapstructure:"reduce-transitive"`

	// DOT writes Graphviz files next to the GFA graphs
	DOT bool `mapstructure:"dot"`

	// Verbose logs progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// QuastPath is the path to the quast.py executable
	QuastPath string `mapstructure:"quast-path"`

	// SpadesPath is the path to the spades.py executable
	SpadesPath string `mapstructure:"spades-path"`

	// CanuPath is the path to the canu executable
	CanuPath string `mapstructure:"canu-path"`

	// GenomeSize is Canu's estimate of the genome size, ex: 30k
	GenomeSize string `mapstructure:"genome-size"`

	// Nanopore has Canu take reads as raw nanopore reads rather than raw PacBio
	Nanopore bool `mapstructure:"nanopore"`

	// MinContig is passed to QUAST as --min-contig
	MinContig int `mapstructure:"min-contig"`
}

// New returns a new Config struct populated by Viper settings (from the
// settings file, the environment and/or command line arguments)
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		stderr.Fatalf("unable to decode into struct, %v", err)
	}
	return c
}

// Load reads the .env file, sets defaults on v and unmarshals it into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// the external tools are also found through their conventional env vars
	if err := v.BindEnv("quast-path", EnvPrefix+"_QUAST_PATH", "QUAST_PATH"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("spades-path", EnvPrefix+"_SPADES_PATH", "SPADES_PATH"); err != nil {
		return nil, err
	}

	if err := v.BindEnv("canu-path", EnvPrefix+"_CANU_PATH", "CANU_PATH"); err != nil {
		return nil, err
	}

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))

	return &c, nil
}

// SetDefaults sets the fallback value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("k", 31)
	v.SetDefault("min-overlap", 20)
	v.SetDefault("algorithm", Both)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("wrap", 0)
	v.SetDefault("fail-on-empty", false)
	v.SetDefault("skip-ambiguous", false)
	v.SetDefault("seed-length", 0)
	v.SetDefault("reverse-complement", false)
	v.SetDefault("reduce-transitive", true)
	v.SetDefault("dot", false)
	v.SetDefault("verbose", false)
	v.SetDefault("quast-path", "quast.py")
	v.SetDefault("spades-path", "spades.py")
	v.SetDefault("canu-path", "canu")
	v.SetDefault("genome-size", "30k")
	v.SetDefault("nanopore", false)
	v.SetDefault("min-contig", 100)
}

// RunDBG returns whether the De Bruijn graph assembler is selected.
func (c *Config) RunDBG() bool {
	return c.Algorithm == DBG || c.Algorithm == Both
}

// RunOLC returns whether the overlap-layout-consensus assembler is selected.
func (c *Config) RunOLC() bool {
	return c.Algorithm == OLC || c.Algorithm == Both
}

// Validate checks the settings that don't depend on the reads.
// k and min-overlap are checked again against the reads before assembly.
func (c *Config) Validate() error {
	switch c.Algorithm {
	case DBG, OLC, Both:
	default:
		return fmt.Errorf("%w %q: expected one of %s, %s, %s", errAlgorithm, c.Algorithm, DBG, OLC, Both)
	}

	if c.RunDBG() && c.K < 2 {
		return fmt.Errorf("k must be at least 2, got %d", c.K)
	}

	if c.RunOLC() && c.MinOverlap < 1 {
		return fmt.Errorf("min-overlap must be at least 1, got %d", c.MinOverlap)
	}

	if c.Wrap < 0 {
		return fmt.Errorf("wrap must not be negative, got %d", c.Wrap)
	}

	return nil
}
