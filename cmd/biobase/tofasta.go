package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lignum-vitae/biobase/internal/fastq"
)

func newToFastaCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "tofasta <fastq-file>",
		Short: "Convert a FASTQ file to FASTA",
		Long:  "Convert FASTQ records to FASTA, dropping the quality strings. Gzipped input is detected automatically.",
		Example: `  biobase tofasta reads.fastq.gz -o reads.fasta
  biobase tofasta reads.fastq   # writes to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToFasta(args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runToFasta(path, outputPath string) error {
	parser, err := fastq.NewParser(path)
	if err != nil {
		return err
	}
	defer parser.Close()

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := parser.WriteFasta(out); err != nil {
		return err
	}
	logger.Info("converted file", zap.String("input", path), zap.Int("lines", parser.LineNumber()))

	return nil
}
