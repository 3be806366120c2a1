package engine

import (
	"errors"
	"testing"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// fivePenguins has three distinct species across five records.
func fivePenguins() dataset.Dataset {
	return dataset.New([]map[string]string{
		penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("Gentoo", "Biscoe", "46.1", "13.2", "211", "5000", "FEMALE"),
		penguin("Chinstrap", "Dream", "46.5", "17.9", "192", "3500", "FEMALE"),
		penguin("Adelie", "Dream", "38.8", "17.2", "180", "3200", "FEMALE"),
		penguin("Gentoo", "Biscoe", "48.2", "14.1", "214", "4800", "MALE"),
	})
}

func TestResearchGroupsCoverAllSpecies(t *testing.T) {
	e := testEngine(1)
	ds := fivePenguins()

	groups, err := e.ResearchGroups(ds, 3)
	if err != nil {
		t.Fatalf("research groups: %v", err)
	}
	// Of the C(5,3)=10 combinations, only those containing one record of
	// each species qualify: indices {0,3} x {1,4} x {2} = 4 groups.
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}
	for _, g := range groups {
		if len(g) != 3 {
			t.Fatalf("group size = %d, want 3", len(g))
		}
		seen := make(map[string]bool)
		for _, r := range g {
			seen[r.Get("species")] = true
		}
		for _, sp := range []string{"Adelie", "Gentoo", "Chinstrap"} {
			if !seen[sp] {
				t.Fatalf("group missing species %s", sp)
			}
		}
	}
}

func TestResearchGroupsSupersetNotExactMatch(t *testing.T) {
	e := testEngine(1)
	// Two distinct species; k=3 groups qualify as long as both appear.
	ds := dataset.New([]map[string]string{
		penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("Gentoo", "Biscoe", "46.1", "13.2", "211", "5000", "FEMALE"),
		penguin("Adelie", "Dream", "38.8", "17.2", "180", "3200", "FEMALE"),
		penguin("Gentoo", "Biscoe", "48.2", "14.1", "214", "4800", "MALE"),
	})

	groups, err := e.ResearchGroups(ds, 3)
	if err != nil {
		t.Fatalf("research groups: %v", err)
	}
	// Every C(4,3)=4 combination necessarily contains both species.
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}
}

func TestResearchGroupsEnumerationOrder(t *testing.T) {
	e := testEngine(1)
	ds := fivePenguins()

	groups, err := e.ResearchGroups(ds, 3)
	if err != nil {
		t.Fatalf("research groups: %v", err)
	}
	// Lexicographic by index: {0,1,2} first, {2,3,4} last among qualifiers.
	if groups[0][0].ID != ds[0].ID || groups[0][1].ID != ds[1].ID || groups[0][2].ID != ds[2].ID {
		t.Fatalf("first group is not the lexicographically first qualifier")
	}
	last := groups[len(groups)-1]
	if last[0].ID != ds[2].ID || last[1].ID != ds[3].ID || last[2].ID != ds[4].ID {
		t.Fatalf("last group is not the lexicographically last qualifier")
	}
}

func TestResearchGroupsValidation(t *testing.T) {
	e := testEngine(1)

	if _, err := e.ResearchGroups(nil, 3); !errors.Is(err, dataset.ErrNotLoaded) {
		t.Fatalf("empty: err = %v, want ErrNotLoaded", err)
	}

	var dataErr *dataset.DataError
	if _, err := e.ResearchGroups(fivePenguins(), 2); !errors.As(err, &dataErr) {
		t.Fatalf("k < 3: err = %v, want DataError", err)
	}
	if _, err := e.ResearchGroups(fivePenguins(), 6); !errors.As(err, &dataErr) {
		t.Fatalf("k > n: err = %v, want DataError", err)
	}

	// The ceiling is enforced before any enumeration begins.
	big := make([]map[string]string, 11)
	for i := range big {
		big[i] = penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE")
	}
	if _, err := e.ResearchGroups(dataset.New(big), 3); !errors.As(err, &dataErr) {
		t.Fatalf("n > 10: err = %v, want DataError", err)
	}

	// No species values at all.
	blank := dataset.New([]map[string]string{
		penguin("", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("", "Biscoe", "46.1", "13.2", "211", "5000", "FEMALE"),
		penguin("", "Dream", "46.5", "17.9", "192", "3500", "FEMALE"),
	})
	if _, err := e.ResearchGroups(blank, 3); !errors.As(err, &dataErr) {
		t.Fatalf("no species: err = %v, want DataError", err)
	}
}

func TestPartitionsDisjointCover(t *testing.T) {
	e := testEngine(1)
	ds := fivePenguins()

	parts, err := e.Partitions(ds, 100000)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	// n=5: subsets of the remaining 4 of size 1..2 → C(4,1)+C(4,2) = 10.
	if len(parts) != 10 {
		t.Fatalf("got %d partitions, want 10", len(parts))
	}
	all := ds.IDSet()
	for _, p := range parts {
		if len(p.A) < 2 || len(p.B) < 2 {
			t.Fatalf("side smaller than 2: %d/%d", len(p.A), len(p.B))
		}
		if p.A[0].ID != ds[0].ID {
			t.Fatalf("first record not pinned to group A")
		}
		seen := make(map[int64]int)
		for _, r := range p.A {
			seen[r.ID]++
		}
		for _, r := range p.B {
			seen[r.ID]++
		}
		if len(seen) != len(all) {
			t.Fatalf("partition does not cover the dataset")
		}
		for id, n := range seen {
			if n != 1 || !all[id] {
				t.Fatalf("record %d appears %d times", id, n)
			}
		}
	}
}

func TestPartitionsMassThreshold(t *testing.T) {
	e := testEngine(1)
	// Masses 3750, 5000, 3200, 3750: total 15700.
	ds := fourPenguins()

	parts, err := e.Partitions(ds, 8750)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	for _, p := range parts {
		if MassSum(p.A) > 8750 || MassSum(p.B) > 8750 {
			t.Fatalf("partition exceeds threshold: %v / %v", MassSum(p.A), MassSum(p.B))
		}
	}
	// n=4: only splits 2/2, with record 0 pinned: pairs {0,1},{0,2},{0,3}.
	// Sums: 8750/6950, 6950/8750, 7500/8200 — all qualify at 8750.
	if len(parts) != 3 {
		t.Fatalf("got %d partitions, want 3", len(parts))
	}

	parts, err = e.Partitions(ds, 8000)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	// Every split has a side above 8000 (8750, 8750, 8200), so none qualify.
	for _, p := range parts {
		if MassSum(p.A) > 8000 || MassSum(p.B) > 8000 {
			t.Fatalf("unqualified partition returned")
		}
	}
	if len(parts) != 0 {
		t.Fatalf("got %d partitions, want 0 at threshold 8000", len(parts))
	}
}

func TestPartitionsDistinguishValueDuplicatesByIdentity(t *testing.T) {
	e := testEngine(1)
	row := penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE")
	ds := dataset.New([]map[string]string{row, row, row, row})

	parts, err := e.Partitions(ds, 100000)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("got %d partitions, want 3", len(parts))
	}
	for _, p := range parts {
		if len(p.A)+len(p.B) != 4 {
			t.Fatalf("value-duplicate rows collapsed: %d + %d", len(p.A), len(p.B))
		}
	}
}

func TestPartitionsValidation(t *testing.T) {
	e := testEngine(1)

	if _, err := e.Partitions(nil, 1000); !errors.Is(err, dataset.ErrNotLoaded) {
		t.Fatalf("empty: err = %v, want ErrNotLoaded", err)
	}

	var dataErr *dataset.DataError
	small := dataset.New([]map[string]string{
		penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("Gentoo", "Biscoe", "46.1", "13.2", "211", "5000", "FEMALE"),
		penguin("Chinstrap", "Dream", "46.5", "17.9", "192", "3500", "FEMALE"),
	})
	if _, err := e.Partitions(small, 1000); !errors.As(err, &dataErr) {
		t.Fatalf("n < 4: err = %v, want DataError", err)
	}

	big := make([]map[string]string, 11)
	for i := range big {
		big[i] = penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE")
	}
	if _, err := e.Partitions(dataset.New(big), 1000); !errors.As(err, &dataErr) {
		t.Fatalf("n > 10: err = %v, want DataError", err)
	}
}

func TestPartitionsMassIgnoresUnparsableCells(t *testing.T) {
	e := testEngine(1)
	ds := dataset.New([]map[string]string{
		penguin("Adelie", "Torgersen", "39.1", "18.7", "181", "3750", "MALE"),
		penguin("Gentoo", "Biscoe", "46.1", "13.2", "211", "??", "FEMALE"),
		penguin("Chinstrap", "Dream", "46.5", "17.9", "192", "3500", "FEMALE"),
		penguin("Adelie", "Dream", "38.8", "17.2", "180", "3200", "FEMALE"),
	})

	// Total parsable mass is 10450; a threshold above that admits every split.
	parts, err := e.Partitions(ds, 11000)
	if err != nil {
		t.Fatalf("partitions: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("got %d partitions, want 3", len(parts))
	}
}
