package classify

import (
	"sort"

	"cleantab/domain/core"
	"cleantab/domain/table"
)

// FindDuplicates returns the stable identifiers of every row that has at
// least one element-wise identical sibling. All copies of a repeated row
// are flagged, not just the second and later ones.
func FindDuplicates(t *table.Table) []int64 {
	groups := make(map[core.RowHash][]int64)
	ids := t.RowIDs()
	for pos, id := range ids {
		h := core.ComputeRowHash(t.RowKeys(pos))
		groups[h] = append(groups[h], id)
	}

	var dups []int64
	for _, members := range groups {
		if len(members) > 1 {
			dups = append(dups, members...)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}

// DuplicateSurplus returns, for every duplicate group, all row identifiers
// but the first occurrence. Clean drops exactly these rows, so detection
// (all copies) and cleaning (keep first) stay deliberately distinct.
func DuplicateSurplus(t *table.Table) []int64 {
	groups := make(map[core.RowHash][]int64)
	ids := t.RowIDs()
	for pos, id := range ids {
		h := core.ComputeRowHash(t.RowKeys(pos))
		groups[h] = append(groups[h], id)
	}

	var surplus []int64
	for _, members := range groups {
		if len(members) > 1 {
			surplus = append(surplus, members[1:]...)
		}
	}
	sort.Slice(surplus, func(i, j int) bool { return surplus[i] < surplus[j] })
	return surplus
}
