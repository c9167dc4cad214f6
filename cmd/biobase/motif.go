package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lignum-vitae/biobase/internal/fasta"
	"github.com/lignum-vitae/biobase/internal/motif"
)

func newMotifCmd() *cobra.Command {
	var (
		pattern  string
		extended bool
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "motif <fasta-file>",
		Short: "Find motif occurrences in protein sequences",
		Long:  "Search every record of a FASTA file for a motif pattern. Patterns are regular expressions; overlapping matches are all reported.",
		Example: `  biobase motif --pattern "N[^P][ST]" proteins.fasta
  biobase motif --pattern DEF --extended proteins.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--pattern is required")
			}
			if !cmd.Flags().Changed("workers") {
				workers = viper.GetInt("motif.workers")
			}
			return runMotif(args[0], pattern, extended, workers)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Motif pattern (regular expression)")
	cmd.Flags().BoolVar(&extended, "extended", false, "Allow extended amino acids O and U")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count (0 = all CPUs)")

	return cmd
}

func runMotif(path, pattern string, extended bool, workers int) error {
	records, err := fasta.ParseFile(path)
	if err != nil {
		return err
	}

	scanner, err := motif.NewScanner(pattern, extended)
	if err != nil {
		return err
	}
	scanner.SetLogger(logger)
	scanner.SetWorkers(workers)

	result := scanner.ScanRecords(records)

	for _, r := range records {
		spans, ok := result.Matches[r.ID]
		if !ok {
			continue
		}
		for _, s := range spans {
			fmt.Printf("%s\t%d\t%d\t%s\n", r.ID, s.Start, s.End, r.Sequence[s.Start:s.End])
		}
	}
	for _, id := range result.NoMatch {
		logger.Info("no match", zap.String("id", id))
	}
	for id, reason := range result.Invalid {
		fmt.Fprintf(os.Stderr, "Warning: skipped %s: %s\n", id, reason)
	}

	return nil
}
