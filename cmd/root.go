// Package cmd is for command line interactions with the contig assembler
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "contig",
	Short: `Assemble contigs from short reads with a De Bruijn graph
or by overlap-layout-consensus`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// bindFlags binds the flags of the command being run to their settings,
// so a flag that's set overrides the settings file and environment.
func bindFlags(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (YAML, TOML or JSON)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	RootCmd.PersistentFlags().IntP("workers", "w", 0, "goroutines for k-mer counting and overlap detection (default # of CPUs)")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
}
