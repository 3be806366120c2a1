package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// sampleRows is a tiny built-in dataset for first runs and demos.
var sampleRows = [][]string{
	{"Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"},
	{"Adelie", "Torgersen", "39.5", "17.4", "186", "3800", "FEMALE"},
	{"Gentoo", "Biscoe", "46.1", "13.2", "211", "4500", "FEMALE"},
	{"Chinstrap", "Dream", "46.5", "17.9", "192", "3500", "FEMALE"},
}

var sampleHeader = []string{
	"Species", "Island", "Culmen Length (mm)", "Culmen Depth (mm)",
	"Flipper Length (mm)", "Body Mass (g)", "Sex",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a small sample penguins.csv into the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		rows := make([]map[string]string, 0, len(sampleRows))
		for _, vals := range sampleRows {
			row := make(map[string]string, len(sampleHeader))
			for i, col := range sampleHeader {
				row[col] = vals[i]
			}
			rows = append(rows, row)
		}
		if err := s.Save("penguins.csv", sampleHeader, dataset.New(rows)); err != nil {
			return err
		}
		fmt.Printf("✓ Sample data created at %s\n", s.Path("penguins.csv"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
