package allocate

import "sort"

// Next returns n new identifiers given the union of identifiers already
// used across both datasets. Gaps below the current maximum are filled
// first, in ascending order; the remainder extends sequentially above the
// maximum. The result is strictly increasing and disjoint from used.
//
// With an empty used set the result is 1..n. n <= 0 yields an empty slice.
func Next(n int, used map[int]struct{}) []int {
	if n <= 0 {
		return nil
	}

	ids := make([]int, 0, n)

	if len(used) == 0 {
		for i := 1; i <= n; i++ {
			ids = append(ids, i)
		}
		return ids
	}

	maxID := 0
	for id := range used {
		if id > maxID {
			maxID = id
		}
	}

	// Fill gaps below the maximum first to keep the namespace dense.
	for i := 1; i < maxID && len(ids) < n; i++ {
		if _, ok := used[i]; !ok {
			ids = append(ids, i)
		}
	}

	// Extend sequentially above the maximum for the remainder.
	for next := maxID + 1; len(ids) < n; next++ {
		ids = append(ids, next)
	}

	sort.Ints(ids)
	return ids
}
