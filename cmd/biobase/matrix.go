package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lignum-vitae/biobase/internal/matrix"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Work with substitution scoring matrices",
	}

	cmd.AddCommand(newMatrixListCmd())
	cmd.AddCommand(newMatrixScoreCmd())
	cmd.AddCommand(newMatrixConvertCmd())

	return cmd
}

func newMatrixListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range matrix.Available() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newMatrixScoreCmd() *cobra.Command {
	var (
		name    string
		version int
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "score <residue-a> <residue-b>",
		Short: "Look up a substitution score",
		Example: `  biobase matrix score --name BLOSUM --version 62 A W
  biobase matrix score --name PAM --version 250 --dir ./matrices R K`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dir") {
				if d := viper.GetString("matrix.dir"); d != "" {
					dir = d
				}
			}
			store := matrix.NewStore(dir)
			m, err := store.Select(name, version)
			if err != nil {
				return err
			}
			a := strings.ToUpper(args[0])
			b := strings.ToUpper(args[1])
			score, ok := m.Score(a, b)
			if !ok {
				return fmt.Errorf("pair (%s, %s) not present in %s", a, b, m)
			}
			fmt.Printf("%s\t%s\t%s\t%d\n", m, a, b, score)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "BLOSUM", "Matrix family: BLOSUM or PAM")
	cmd.Flags().IntVar(&version, "version", 62, "Matrix version")
	cmd.Flags().StringVar(&dir, "dir", "matrices", "Folder holding the matrix JSON files")

	return cmd
}

func newMatrixConvertCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <text-matrix-file>",
		Short: "Convert a text matrix distribution to JSON",
		Long:  "Convert a whitespace-delimited text substitution matrix (the NCBI distribution format) into the JSON layout the matrix store loads.",
		Example: `  biobase matrix convert BLOSUM62.txt -o BLOSUM62.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return fmt.Errorf("--output is required")
			}
			if err := matrix.TextToJSON(args[0], outputPath); err != nil {
				return err
			}
			fmt.Printf("JSON file created at: %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file path")

	return cmd
}
