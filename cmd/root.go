package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/pygoscelis/penguin-cli/internal/config"
	"github.com/pygoscelis/penguin-cli/internal/dataset"
	"github.com/pygoscelis/penguin-cli/internal/engine"
	"github.com/pygoscelis/penguin-cli/internal/store"
)

var (
	// Global flags
	cfgFile     string
	flagDataDir string
	debug       bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "penguin",
	Short: "Penguin CLI: explore, sort, and slice penguin measurement data",
	Long: `Penguin is an interactive data-exploration tool for penguin measurement
CSV files: filtering, descriptive statistics, five comparison sorts,
dataset augmentation, and combinatorial group search.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.penguin/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so read-only commands still work.
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DataDir: "./data", DefaultAlgorithm: "merge", SampleDisplayRows: 20}
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
}

// openStore builds the CSV store rooted at the configured data directory.
func openStore() (*store.Store, error) {
	return store.New(cfg.DataDir)
}

// newEngine builds the processing engine from the configured schema and
// random seed. A zero seed leaves seeding to the engine.
func newEngine() (*engine.Engine, error) {
	schema := dataset.DefaultSchema()
	if cfg.SchemaFile != "" {
		s, err := dataset.LoadSchema(cfg.SchemaFile)
		if err != nil {
			return nil, err
		}
		schema = s
	}
	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RandomSeed))
	}
	return engine.New(schema, rng), nil
}

// loadDataset opens the store and loads a CSV file, honoring the
// raw-to-clean redirect.
func loadDataset(filename string) (dataset.Dataset, []string, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	resolved := s.ResolveLoad(filename)
	if resolved != filename {
		fmt.Printf("Notice: loading preprocessed %q instead of raw %q.\n", resolved, filename)
	}
	return s.Load(resolved)
}

// timed runs fn and returns its result with the elapsed wall time.
func timed(fn func() (dataset.Dataset, error)) (dataset.Dataset, time.Duration, error) {
	start := time.Now()
	ds, err := fn()
	return ds, time.Since(start), err
}
