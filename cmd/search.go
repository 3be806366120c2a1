package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups <file> <k>",
	Short: "Enumerate research groups of size k covering every species",
	Long: `Groups enumerates every size-k combination of records and keeps those
containing at least one penguin of every species present in the dataset.
The dataset may hold at most 10 records.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("k must be an integer, got %q", args[1])
		}
		ds, _, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		groups, err := e.ResearchGroups(ds, k)
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Println("No research groups satisfying the criteria could be generated.")
			return nil
		}
		displayGroups(groups, k)
		return nil
	},
}

var splitCmd = &cobra.Command{
	Use:   "split <file> <threshold>",
	Short: "Enumerate two-way splits bounded by total body mass",
	Long: `Split enumerates every way to divide the dataset into two groups of at
least two penguins each where neither group's total body mass exceeds
the threshold. The dataset may hold at most 10 records.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("threshold must be a number, got %q", args[1])
		}
		ds, _, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		parts, err := e.Partitions(ds, threshold)
		if err != nil {
			return err
		}
		if len(parts) == 0 {
			fmt.Printf("No valid splits found where both groups have mass <= %.1f.\n", threshold)
			return nil
		}
		displayPartitions(parts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(splitCmd)
}
