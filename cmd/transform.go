package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

var (
	sortAlgo   string
	sortSaveTo string

	filterSaveTo string
)

var sortCmd = &cobra.Command{
	Use:   "sort <file> <attribute> <asc|desc>",
	Short: "Sort a dataset by attribute and log the run",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, columns, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		algo := sortAlgo
		if algo == "" {
			algo = cfg.DefaultAlgorithm
		}

		sorted, elapsed, err := timed(func() (dataset.Dataset, error) {
			return e.Sort(algo, ds, args[1], args[2])
		})
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		if err := s.LogSort(len(ds), algo, elapsed); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: failed to log sort run: %v\n", err)
		}
		fmt.Printf("Data sorted by %s (%s) using %s sort.\n", args[1], args[2], algo)
		fmt.Printf("Execution time: %.6f seconds\n", elapsed.Seconds())

		if sortSaveTo != "" {
			if err := s.Save(ensureCSV(sortSaveTo), columns, sorted); err != nil {
				return err
			}
			fmt.Printf("✓ Saved to: %s\n", ensureCSV(sortSaveTo))
			return nil
		}
		displayRows(sorted, columns, cfg.SampleDisplayRows)
		return nil
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter <file> <attribute> <value>",
	Short: "Filter rows by attribute value",
	Long: `Filter keeps rows whose attribute matches the value. Numeric attributes
keep rows strictly greater than the value; categorical attributes match
exactly, case-sensitively.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, columns, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		filtered, err := e.Filter(ds, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Matches found: %d.\n", len(filtered))

		if filterSaveTo != "" {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.Save(ensureCSV(filterSaveTo), columns, filtered); err != nil {
				return err
			}
			fmt.Printf("✓ Saved to: %s\n", ensureCSV(filterSaveTo))
			return nil
		}
		displayRows(filtered, columns, cfg.SampleDisplayRows)
		return nil
	},
}

// ensureCSV appends the .csv extension when missing.
func ensureCSV(name string) string {
	if len(name) < 4 || name[len(name)-4:] != ".csv" {
		return name + ".csv"
	}
	return name
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringVar(&sortAlgo, "algo", "", "sort algorithm: bubble, insertion, selection, merge, quick (default from config)")
	sortCmd.Flags().StringVar(&sortSaveTo, "save", "", "save the sorted dataset to this CSV file instead of printing")

	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVar(&filterSaveTo, "save", "", "save the filtered dataset to this CSV file instead of printing")
}
