package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/engine"
)

var augmentCmd = &cobra.Command{
	Use:   "augment <file> <percent> <duplicate|create>",
	Short: "Grow a dataset by duplicating or synthesizing rows",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("percent must be a number, got %q", args[1])
		}
		method := args[2]
		if method != engine.MethodDuplicate && method != engine.MethodCreate {
			return fmt.Errorf("method must be 'duplicate' or 'create', got %q", method)
		}

		ds, columns, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		augmented, err := e.Augment(ds, percent, method)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("augmented_%s_%dpct_%s.csv", method, percent, time.Now().Format("20060102_150405"))
		if err := s.Save(filename, columns, augmented); err != nil {
			return err
		}
		fmt.Printf("✓ Dataset augmented and saved to: %s\n", filename)
		fmt.Printf("New size: %d rows\n", len(augmented))
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample <file> <k> <output>",
	Short: "Save k random penguins to a new CSV file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("k must be an integer, got %q", args[1])
		}
		ds, columns, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		subset, err := e.Sample(ds, k)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		out := ensureCSV(args[2])
		if err := s.Save(out, columns, subset); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %d random penguins to %s.\n", k, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(augmentCmd)
	rootCmd.AddCommand(sampleCmd)
}
