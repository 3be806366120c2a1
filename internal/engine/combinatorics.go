package engine

import (
	"strconv"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// maxSearchRecords is the hard admission-control ceiling on both
// combinatorial procedures. Combination count grows combinatorially with
// dataset size, so the bound is enforced before any enumeration begins.
const maxSearchRecords = 10

// Group is a subset of records produced by combinatorial search, in
// selection order.
type Group = dataset.Dataset

// Partition is an ordered pair of groups that disjointly covers a dataset.
type Partition struct {
	A Group
	B Group
}

// ResearchGroups enumerates every size-k combination of records (index
// lexicographic) and keeps those whose species set covers every species
// present in the dataset. The superset criterion means a group may
// contain more species variety than required but never less.
func (e *Engine) ResearchGroups(ds dataset.Dataset, k int) ([]Group, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	if len(ds) > maxSearchRecords {
		return nil, dataset.NewDataError("dataset too large for group search: %d records (max %d)", len(ds), maxSearchRecords)
	}
	if k < 3 {
		return nil, dataset.NewDataError("group size must be at least 3, got %d", k)
	}
	if k > len(ds) {
		return nil, dataset.NewDataError("group size %d exceeds dataset size %d", k, len(ds))
	}

	required := make(map[string]bool)
	for _, r := range ds {
		if sp := r.Lookup(speciesColumns...); sp != "" {
			required[sp] = true
		}
	}
	if len(required) == 0 {
		return nil, dataset.NewDataError("no species values found in dataset")
	}

	var groups []Group
	forEachCombination(len(ds), k, func(indices []int) {
		seen := make(map[string]bool, len(required))
		for _, idx := range indices {
			if sp := ds[idx].Lookup(speciesColumns...); sp != "" {
				seen[sp] = true
			}
		}
		for sp := range required {
			if !seen[sp] {
				return
			}
		}
		group := make(Group, 0, k)
		for _, idx := range indices {
			group = append(group, ds[idx])
		}
		groups = append(groups, group)
	})
	return groups, nil
}

// Partitions enumerates every unordered two-way split of the dataset with
// at least two records per side where both sides' body-mass sums stay at
// or under the threshold. The first record is pinned to group A so each
// unordered split appears exactly once; the remaining records join A by
// index subsets of size 1..n-3, and B is the identity complement.
func (e *Engine) Partitions(ds dataset.Dataset, threshold float64) ([]Partition, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	if len(ds) > maxSearchRecords {
		return nil, dataset.NewDataError("dataset too large for partition search: %d records (max %d)", len(ds), maxSearchRecords)
	}
	if len(ds) < 4 {
		return nil, dataset.NewDataError("need at least 4 records to split, got %d", len(ds))
	}

	rest := ds[1:]
	var parts []Partition
	for size := 1; size <= len(ds)-3; size++ {
		forEachCombination(len(rest), size, func(indices []int) {
			groupA := make(Group, 0, size+1)
			groupA = append(groupA, ds[0])
			for _, idx := range indices {
				groupA = append(groupA, rest[idx])
			}

			inA := groupA.IDSet()
			groupB := make(Group, 0, len(ds)-len(groupA))
			for _, r := range ds {
				if !inA[r.ID] {
					groupB = append(groupB, r)
				}
			}

			if massSum(groupA) <= threshold && massSum(groupB) <= threshold {
				parts = append(parts, Partition{A: groupA, B: groupB})
			}
		})
	}
	return parts, nil
}

// MassSum totals the body-mass column across a group; unparsable cells
// count as zero.
func MassSum(g Group) float64 { return massSum(g) }

func massSum(g Group) float64 {
	var total float64
	for _, r := range g {
		v, err := strconv.ParseFloat(r.Lookup(massColumns...), 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}

// forEachCombination visits every k-subset of {0..n-1} in lexicographic
// index order. The callback must not retain the indices slice.
func forEachCombination(n, k int, visit func(indices []int)) {
	if k < 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		visit(indices)
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
