package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lignum-vitae/biobase/internal/cai"
	"github.com/lignum-vitae/biobase/internal/fasta"
)

func newCaiCmd() *cobra.Command {
	var refPath string

	cmd := &cobra.Command{
		Use:   "cai <fasta-file>",
		Short: "Compute the codon adaptation index of coding sequences",
		Long:  "Compute the codon adaptation index (CAI) for every record of a FASTA file against codon usage derived from a reference set of highly expressed genes.",
		Example: `  biobase cai --reference highly_expressed.fasta genes.fasta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if refPath == "" {
				return fmt.Errorf("--reference is required")
			}
			return runCai(args[0], refPath)
		},
	}

	cmd.Flags().StringVarP(&refPath, "reference", "r", "", "FASTA file of reference coding sequences")

	return cmd
}

func runCai(path, refPath string) error {
	refRecords, err := fasta.ParseFile(refPath)
	if err != nil {
		return fmt.Errorf("reading reference: %w", err)
	}
	refSeqs := make([]string, 0, len(refRecords))
	for _, r := range refRecords {
		refSeqs = append(refSeqs, r.Sequence)
	}
	ref := cai.RefFreqsFromSequences(refSeqs)
	if len(ref) == 0 {
		return fmt.Errorf("reference %s yields no codon frequencies", refPath)
	}
	logger.Info("reference codon usage built",
		zap.String("file", refPath),
		zap.Int("sequences", len(refSeqs)),
		zap.Int("codons", len(ref)))

	records, err := fasta.ParseFile(path)
	if err != nil {
		return err
	}

	for _, r := range records {
		index, err := cai.CAI(r.Sequence, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipped %s: %v\n", r.ID, err)
			continue
		}
		fmt.Printf("%s\t%.4f\n", r.ID, index)
	}

	return nil
}
