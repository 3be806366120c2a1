package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pygoscelis/penguin-cli/internal/clean"
	"github.com/pygoscelis/penguin-cli/internal/dataset"
	"github.com/pygoscelis/penguin-cli/internal/engine"
	"github.com/pygoscelis/penguin-cli/internal/fun"
	"github.com/pygoscelis/penguin-cli/internal/store"
)

const shellHelp = `
Available Commands:
-------------------
files                             - List all CSV files in the data directory
load <filename>                   - Load data from a CSV file
filter <attribute> <value>        - Filter data based on attribute and value
describe <attribute>              - Show min, max, mean for numeric attribute
unique <attribute>                - Show unique values and their counts
sort <attribute> <asc|desc>       - Sort data by attribute
augment <percent> <method>        - Augment data (method: duplicate or create)
save_random <k> <filename>        - Save k random penguins to a new CSV file
groups <k>                        - Generate groups of size k with all species (max 10 loaded)
split <threshold>                 - Split penguins into 2 groups by mass (max 10 loaded)
clean                             - Report missing data and write a cleaned CSV
fact                              - Display a random penguin fact
art                               - Draw an ASCII penguin
ascii [image]                     - Convert an image to ASCII art
help                              - Show this help message
quit                              - Exit the shell
`

// session holds the state of one interactive run: the loaded dataset,
// its column order, and the shared store and engine.
type session struct {
	store    *store.Store
	engine   *engine.Engine
	in       *bufio.Scanner
	out      io.Writer
	data     dataset.Dataset
	columns  []string
	filename string
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive penguin analyzer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		sess := &session{
			store:  s,
			engine: e,
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    cmd.OutOrStdout(),
		}
		sess.run()
		return nil
	},
}

func (s *session) run() {
	banner := strings.Repeat("_-", 40)
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, "PENGUIN DATA ANALYZER")
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, "Type 'help' for available commands or 'quit' to exit.")
	fmt.Fprintln(s.out)

	for {
		fmt.Fprint(s.out, ">>> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out, "\nExiting...")
			return
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			fmt.Fprintln(s.out, "Goodbye!")
			return
		}
		if err := s.dispatch(line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) dispatch(line string) error {
	parts := strings.Fields(line)
	action := strings.ToLower(parts[0])
	args := parts[1:]

	switch action {
	case "help":
		fmt.Fprint(s.out, shellHelp)
	case "files":
		return s.listFiles()
	case "load":
		if len(args) < 1 {
			return fmt.Errorf("usage: load <filename>")
		}
		return s.load(args[0])
	case "filter":
		if len(args) < 2 {
			return fmt.Errorf("usage: filter <attribute> <value>")
		}
		return s.filter(args[0], strings.Join(args[1:], " "))
	case "describe":
		if len(args) < 1 {
			return fmt.Errorf("usage: describe <attribute>")
		}
		return s.describe(args[0])
	case "unique":
		if len(args) < 1 {
			return fmt.Errorf("usage: unique <attribute>")
		}
		return s.unique(args[0])
	case "sort":
		if len(args) < 2 {
			return fmt.Errorf("usage: sort <attribute> <asc|desc>")
		}
		return s.sort(args[0], args[1])
	case "augment":
		if len(args) < 2 {
			return fmt.Errorf("usage: augment <percent> <duplicate|create>")
		}
		return s.augment(args[0], args[1])
	case "save_random":
		if len(args) < 2 {
			return fmt.Errorf("usage: save_random <k> <filename>")
		}
		return s.saveRandom(args[0], args[1])
	case "groups":
		if len(args) < 1 {
			return fmt.Errorf("usage: groups <k>")
		}
		return s.groups(args[0])
	case "split":
		if len(args) < 1 {
			return fmt.Errorf("usage: split <threshold>")
		}
		return s.split(args[0])
	case "clean":
		return s.clean()
	case "fact":
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		fmt.Fprintf(s.out, "\nPenguin Fact: %s\n\n", fun.RandomFact(rng))
	case "art":
		fmt.Fprint(s.out, fun.Penguin, "\n")
	case "ascii":
		path := cfg.ImagePath
		if len(args) >= 1 {
			path = args[0]
		}
		art, err := fun.ImageToASCII(path, 100)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, art)
	default:
		fmt.Fprintln(s.out, "Unknown command. Type 'help' for available commands.")
	}
	return nil
}

func (s *session) listFiles() error {
	files, err := s.store.ListCSV()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(s.out, "No CSV files found in the data directory.")
		return nil
	}
	fmt.Fprintln(s.out, "\nAvailable CSV files:")
	for _, f := range files {
		fmt.Fprintf(s.out, "  - %s\n", f)
	}
	return nil
}

func (s *session) load(filename string) error {
	resolved := s.store.ResolveLoad(filename)
	if resolved != filename {
		fmt.Fprintf(s.out, "Notice: loading preprocessed %q instead of raw %q.\n", resolved, filename)
	}
	ds, columns, err := s.store.Load(resolved)
	if err != nil {
		return err
	}
	s.data = ds
	s.columns = columns
	s.filename = resolved
	fmt.Fprintf(s.out, "Loaded %d rows.\n", len(ds))
	return nil
}

func (s *session) filter(attribute, value string) error {
	filtered, err := s.engine.Filter(s.data, attribute, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Matches found: %d.\n", len(filtered))

	if s.prompt("Do you want to save this data to a new file? (y/n) ") {
		filename := ensureCSV(s.promptLine("Please give the filename: "))
		if err := s.store.Save(filename, s.columns, filtered); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "✓ Saved to: %s\n", filename)
		return nil
	}
	displayRows(filtered, s.columns, cfg.SampleDisplayRows)
	return nil
}

func (s *session) describe(attribute string) error {
	st, err := s.engine.Describe(s.data, attribute)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: min = %.1f max = %.1f mean = %.1f\n", attribute, st.Min, st.Max, st.Mean)
	return nil
}

func (s *session) unique(attribute string) error {
	counts, err := s.engine.UniqueCounts(s.data, attribute)
	if err != nil {
		return err
	}
	displayCounts(counts)
	return nil
}

func (s *session) sort(attribute, order string) error {
	algo := cfg.DefaultAlgorithm
	sorted, elapsed, err := timed(func() (dataset.Dataset, error) {
		return s.engine.Sort(algo, s.data, attribute, order)
	})
	if err != nil {
		return err
	}
	if err := s.store.LogSort(len(s.data), algo, elapsed); err != nil {
		fmt.Fprintf(s.out, "⚠ Warning: failed to log sort run: %v\n", err)
	}
	s.data = sorted
	fmt.Fprintf(s.out, "Data sorted by %s (%s) using %s sort.\n", attribute, order, algo)
	fmt.Fprintf(s.out, "Execution time: %.6f seconds\n", elapsed.Seconds())
	displayRows(sorted, s.columns, cfg.SampleDisplayRows)
	return nil
}

func (s *session) augment(percentArg, method string) error {
	percent, err := strconv.Atoi(percentArg)
	if err != nil {
		return fmt.Errorf("percent must be a number, got %q", percentArg)
	}
	if method != engine.MethodDuplicate && method != engine.MethodCreate {
		return fmt.Errorf("method must be 'duplicate' or 'create', got %q", method)
	}
	augmented, err := s.engine.Augment(s.data, percent, method)
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("augmented_%s_%dpct_%s.csv", method, percent, time.Now().Format("20060102_150405"))
	if err := s.store.Save(filename, s.columns, augmented); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ Dataset augmented and saved to: %s\n", filename)
	fmt.Fprintf(s.out, "New size: %d rows\n", len(augmented))
	return nil
}

func (s *session) saveRandom(kArg, filename string) error {
	k, err := strconv.Atoi(kArg)
	if err != nil {
		return fmt.Errorf("k must be an integer, got %q", kArg)
	}
	subset, err := s.engine.Sample(s.data, k)
	if err != nil {
		return err
	}
	out := ensureCSV(filename)
	if err := s.store.Save(out, s.columns, subset); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ Saved %d random penguins to %s.\n", k, out)
	return nil
}

func (s *session) groups(kArg string) error {
	k, err := strconv.Atoi(kArg)
	if err != nil {
		return fmt.Errorf("k must be an integer, got %q", kArg)
	}
	groups, err := s.engine.ResearchGroups(s.data, k)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(s.out, "No research groups satisfying the criteria could be generated.")
		return nil
	}
	displayGroups(groups, k)
	return nil
}

func (s *session) split(thresholdArg string) error {
	threshold, err := strconv.ParseFloat(thresholdArg, 64)
	if err != nil {
		return fmt.Errorf("threshold must be a number, got %q", thresholdArg)
	}
	parts, err := s.engine.Partitions(s.data, threshold)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		fmt.Fprintf(s.out, "No valid splits found where both groups have mass <= %.1f.\n", threshold)
		return nil
	}
	displayPartitions(parts)
	return nil
}

func (s *session) clean() error {
	rep, err := clean.AnalyzeMissing(s.store.Path("penguins.csv"))
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nMissing Data Analysis:")
	for _, col := range rep.Columns {
		if n := rep.Missing[col]; n > 0 {
			fmt.Fprintf(s.out, "  - %s: %d missing\n", col, n)
		}
	}
	fmt.Fprintf(s.out, "Total rows: %d\n", rep.TotalRows)

	kept, err := clean.Preprocess(s.store.Path("penguins.csv"), s.store.Path("penguins_data.csv"))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ Cleaned data saved to penguins_data.csv. Rows: %d\n", kept)
	return nil
}

// prompt asks a yes/no question and reads one line of input.
func (s *session) prompt(question string) bool {
	answer := strings.ToLower(s.promptLine(question))
	return answer == "y" || answer == "yes"
}

func (s *session) promptLine(question string) string {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
