package engine

import (
	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// SortFunc is the shared contract of all five algorithms: produce a
// permutation of the input ordered by the comparable key of the column,
// without mutating the input.
type SortFunc func(ds dataset.Dataset, key string, descending bool) dataset.Dataset

// AlgorithmNames lists the selectable sort algorithms in display order.
var AlgorithmNames = []string{"bubble", "insertion", "selection", "merge", "quick"}

// Algorithm resolves a sort algorithm by name.
func (e *Engine) Algorithm(name string) (SortFunc, bool) {
	switch name {
	case "bubble":
		return e.BubbleSort, true
	case "insertion":
		return e.InsertionSort, true
	case "selection":
		return e.SelectionSort, true
	case "merge":
		return e.MergeSort, true
	case "quick":
		return e.QuickSort, true
	}
	return nil, false
}

// ParseOrder validates a sort direction token.
func ParseOrder(order string) (descending bool, err error) {
	switch order {
	case "asc":
		return false, nil
	case "desc":
		return true, nil
	}
	return false, &dataset.InvalidSortOrderError{Order: order}
}

// Sort runs the named algorithm after validating the direction token.
func (e *Engine) Sort(algorithm string, ds dataset.Dataset, key, order string) (dataset.Dataset, error) {
	if len(ds) == 0 {
		return nil, dataset.ErrNotLoaded
	}
	descending, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	fn, ok := e.Algorithm(algorithm)
	if !ok {
		return nil, dataset.NewDataError("unknown sort algorithm %q", algorithm)
	}
	return fn(ds, key, descending), nil
}

// outOfOrder is the adjacent-pair exchange predicate shared by the
// comparison sorts: true when a should come after b for the direction.
func (e *Engine) outOfOrder(a, b Key, descending bool) bool {
	if descending {
		return a.Less(b)
	}
	return a.Greater(b)
}

// BubbleSort performs adjacent-pair exchange with descending outer passes
// and early exit when a full pass performs no swap. Stable.
func (e *Engine) BubbleSort(ds dataset.Dataset, key string, descending bool) dataset.Dataset {
	result := ds.Copy()
	n := len(result)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			a := e.Coerce(result[j], key)
			b := e.Coerce(result[j+1], key)
			if e.outOfOrder(a, b, descending) {
				result[j], result[j+1] = result[j+1], result[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return result
}

// InsertionSort shifts elements right until the insertion point for each
// item is found. Stable: equal keys never shift past each other.
func (e *Engine) InsertionSort(ds dataset.Dataset, key string, descending bool) dataset.Dataset {
	result := ds.Copy()
	for i := 1; i < len(result); i++ {
		item := result[i]
		itemKey := e.Coerce(item, key)
		j := i - 1
		for j >= 0 {
			if !e.outOfOrder(e.Coerce(result[j], key), itemKey, descending) {
				break
			}
			result[j+1] = result[j]
			j--
		}
		result[j+1] = item
	}
	return result
}

// SelectionSort repeatedly picks the extremum of the unsorted suffix (max
// when descending, min when ascending) and swaps it into position. The
// strict comparison keeps the earliest occurrence among equal keys, so
// relative order of ties is preserved.
func (e *Engine) SelectionSort(ds dataset.Dataset, key string, descending bool) dataset.Dataset {
	result := ds.Copy()
	for i := 0; i < len(result); i++ {
		extremeIdx := i
		extremeKey := e.Coerce(result[i], key)
		for j := i + 1; j < len(result); j++ {
			currKey := e.Coerce(result[j], key)
			better := currKey.Less(extremeKey)
			if descending {
				better = currKey.Greater(extremeKey)
			}
			if better {
				extremeIdx = j
				extremeKey = currKey
			}
		}
		result[i], result[extremeIdx] = result[extremeIdx], result[i]
	}
	return result
}

// MergeSort divides at the midpoint, sorts the halves recursively, and
// merges keeping the left element on ties — equal elements from the left
// half precede those from the right, which is what makes it stable.
func (e *Engine) MergeSort(ds dataset.Dataset, key string, descending bool) dataset.Dataset {
	if len(ds) <= 1 {
		return ds
	}
	mid := len(ds) / 2
	left := e.MergeSort(ds[:mid], key, descending)
	right := e.MergeSort(ds[mid:], key, descending)
	return e.merge(left, right, key, descending)
}

func (e *Engine) merge(left, right dataset.Dataset, key string, descending bool) dataset.Dataset {
	result := make(dataset.Dataset, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		lk := e.Coerce(left[i], key)
		rk := e.Coerce(right[j], key)
		takeLeft := !lk.Greater(rk) // l <= r
		if descending {
			takeLeft = !lk.Less(rk) // l >= r
		}
		if takeLeft {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// QuickSort partitions three ways around the middle-index element's key
// (strictly less, equal, strictly greater), recurses on the extremes, and
// splices the equal bucket in the middle; the recursive calls swap sides
// when descending. Order within each partition is preserved, but global
// stability across equal keys from different partition steps is not part
// of the contract.
func (e *Engine) QuickSort(ds dataset.Dataset, key string, descending bool) dataset.Dataset {
	if len(ds) <= 1 {
		return ds
	}
	pivotKey := e.Coerce(ds[len(ds)/2], key)

	var less, equal, greater dataset.Dataset
	for _, r := range ds {
		k := e.Coerce(r, key)
		switch {
		case k.Less(pivotKey):
			less = append(less, r)
		case k.Greater(pivotKey):
			greater = append(greater, r)
		default:
			equal = append(equal, r)
		}
	}

	if descending {
		result := e.QuickSort(greater, key, descending)
		result = append(result, equal...)
		return append(result, e.QuickSort(less, key, descending)...)
	}
	result := e.QuickSort(less, key, descending)
	result = append(result, equal...)
	return append(result, e.QuickSort(greater, key, descending)...)
}
