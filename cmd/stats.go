package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file> <attribute>",
	Short: "Show min, max, and mean of a numeric attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		st, err := e.Describe(ds, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s: min = %.1f max = %.1f mean = %.1f\n", args[1], st.Min, st.Max, st.Mean)
		return nil
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique <file> <attribute>",
	Short: "Show distinct values of an attribute with their counts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		counts, err := e.UniqueCounts(ds, args[1])
		if err != nil {
			return err
		}
		displayCounts(counts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(uniqueCmd)
}
