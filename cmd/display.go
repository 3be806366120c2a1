package cmd

import (
	"fmt"
	"sort"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
	"github.com/pygoscelis/penguin-cli/internal/engine"
)

// displayRows prints up to maxRows records, one field per line.
func displayRows(ds dataset.Dataset, columns []string, maxRows int) {
	if len(ds) == 0 {
		fmt.Println("No data to display.")
		return
	}
	if maxRows <= 0 {
		maxRows = 20
	}
	shown := len(ds)
	if shown > maxRows {
		shown = maxRows
	}
	fmt.Printf("\nDisplaying first %d of %d rows:\n\n", shown, len(ds))
	for i, r := range ds[:shown] {
		fmt.Printf("Penguin %d:\n", i+1)
		for _, col := range orderedColumns(r, columns) {
			fmt.Printf("  %s: %s\n", col, r.Get(col))
		}
		fmt.Println()
	}
	if len(ds) > maxRows {
		fmt.Printf("... and %d more rows\n", len(ds)-maxRows)
	}
}

// orderedColumns returns the load-order header when available, otherwise
// the record's keys sorted for a stable display.
func orderedColumns(r dataset.Record, columns []string) []string {
	if len(columns) > 0 {
		return columns
	}
	cols := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// displayCounts prints value counts sorted by value for a deterministic
// listing; the engine's map carries no order of its own.
func displayCounts(counts map[string]int) {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		fmt.Printf("%s: %d penguins\n", v, counts[v])
	}
}

// displayGroups prints research groups with species info per member.
func displayGroups(groups []engine.Group, k int) {
	fmt.Printf("\nFound %d possible research groups of size %d:\n\n", len(groups), k)
	for i, g := range groups {
		fmt.Printf("Group %d:\n", i+1)
		for _, r := range g {
			fmt.Printf("  - %s\n", r.Lookup("species", "Species"))
		}
		fmt.Println("--------------------")
	}
}

// displayPartitions prints mass-bounded splits with per-side totals.
func displayPartitions(parts []engine.Partition) {
	fmt.Printf("\nFound %d valid ways to split the penguins:\n\n", len(parts))
	for i, p := range parts {
		fmt.Printf("Split %d:\n", i+1)
		fmt.Printf("  Group A: %d penguins, Total Mass: %.1f\n", len(p.A), engine.MassSum(p.A))
		fmt.Printf("  Group B: %d penguins, Total Mass: %.1f\n", len(p.B), engine.MassSum(p.B))
		fmt.Println("--------------------")
	}
}
