// Package main provides the biobase command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "biobase",
		Short:   "Toolkit for biological sequence files and analysis",
		Long:    "biobase parses FASTA, FASTQ and GenBank files and runs sequence analyses: motif search, codon adaptation index, substitution matrices.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("building logger: %w", err)
				}
				logger = l
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newMotifCmd())
	root.AddCommand(newCaiCmd())
	root.AddCommand(newToFastaCmd())
	root.AddCommand(newGenbankCmd())
	root.AddCommand(newMatrixCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig reads ~/.biobase.yaml if present. A missing config file is
// not an error.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".biobase")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("biobase")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
