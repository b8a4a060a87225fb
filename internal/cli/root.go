// Package cli implements the cobra-based commands of huffcode.
//
// Each subcommand (compress, decompress, table, dump) is defined in its own
// file within this package.  This file defines the root command, which owns
// the global flags and loads the configuration before any subcommand runs.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/log"
)

// Version is the version string shown by --version.  It is set from main.
var Version = "dev"

// app holds the state shared by all subcommands of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	cfg        config.Config
}

// NewRootCommand creates the root command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "huffcode",
		Short: "Huffman compression with a persisted code table",
		Long: `huffcode compresses a file with a Huffman code built from the file's own
byte frequencies.  The code is saved as a text table of (symbol, path) pairs
next to the compressed bits, and decompression rebuilds the tree from that
table alone.`,

		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show debug messages")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Show warnings only")

	rootCmd.AddCommand(newCompressCommand(a))
	rootCmd.AddCommand(newDecompressCommand(a))
	rootCmd.AddCommand(newTableCommand(a))
	rootCmd.AddCommand(newDumpCommand(a))

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	switch {
	case a.verbose:
		level = log.LevelDebug
	case a.quiet:
		level = log.LevelWarn
	}
	log.Current = level
	if a.verbose && a.quiet {
		log.Warnf("both --verbose and --quiet given; using --verbose")
	}
	return nil
}

// Execute runs the root command and exits with status 1 on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
