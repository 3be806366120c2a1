package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/clean"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input.csv]",
	Short: "Report missing data and write a cleaned CSV",
	Long: `Clean analyzes a raw penguins CSV for missing values, then writes a
cleaned copy with snake_case headers and incomplete rows removed.
Defaults to penguins.csv in the data directory, producing
penguins_data.csv.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "penguins.csv"
		if len(args) == 1 {
			input = args[0]
		}
		s, err := openStore()
		if err != nil {
			return err
		}

		rep, err := clean.AnalyzeMissing(s.Path(input))
		if err != nil {
			return err
		}
		fmt.Println("\nMissing Data Analysis:")
		for _, col := range rep.Columns {
			if n := rep.Missing[col]; n > 0 {
				fmt.Printf("  - %s: %d missing\n", col, n)
			}
		}
		fmt.Printf("Total rows: %d\n", rep.TotalRows)

		output := "penguins_data.csv"
		kept, err := clean.Preprocess(s.Path(input), s.Path(output))
		if err != nil {
			return err
		}
		fmt.Printf("✓ Cleaned data saved to %s. Rows: %d\n", output, kept)
		return nil
	},
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List CSV files in the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		files, err := s.ListCSV()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No CSV files found in the data directory.")
			return nil
		}
		fmt.Println("\nAvailable CSV files:")
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(filesCmd)
}
