package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lignum-vitae/biobase/internal/genbank"
)

func newGenbankCmd() *cobra.Command {
	var showFeatures bool

	cmd := &cobra.Command{
		Use:   "genbank <genbank-file>",
		Short: "Summarize records of a GenBank flat file",
		Long:  "Parse a GenBank flat file and print per-record summaries: accession, definition, sequence length and annotated features.",
		Example: `  biobase genbank sequence.gb
  biobase genbank --features sequence.gb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenbank(args[0], showFeatures)
		},
	}

	cmd.Flags().BoolVar(&showFeatures, "features", false, "List each record's annotated features")

	return cmd
}

func runGenbank(path string, showFeatures bool) error {
	parser, err := genbank.NewParser(path)
	if err != nil {
		return err
	}
	defer parser.Close()

	for {
		record, err := parser.Next()
		if err != nil {
			return err
		}
		if record == nil {
			break
		}

		fmt.Printf("%s\t%s\t%d bp\n", record.ID, record.Name, len(record.Sequence))

		if !showFeatures {
			continue
		}
		features, ok := record.Entries["FEATURES"].(*genbank.Features)
		if !ok {
			continue
		}
		for _, f := range features.Entries {
			fmt.Printf("  %s\t%s", f.Key, f.Location)
			if gene, ok := f.Qualifiers.Get("gene"); ok {
				fmt.Printf("\tgene=%s", gene)
			}
			fmt.Println()
		}
	}

	return nil
}
