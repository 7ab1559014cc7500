package hashing

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortByKeys stably sorts items in place by two ascending ordered keys,
// primary first then secondary — the (nameHash, value) ordering the variant
// hash computer (C9) requires and the (keyHash, stage) ordering the
// library TOC (C13) requires. Using a generic comparator here keeps both
// call sites byte-for-byte identical in tie-breaking behaviour.
func SortByKeys[T any, K1 constraints.Ordered, K2 constraints.Ordered](items []T, primary func(T) K1, secondary func(T) K2) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := primary(items[i]), primary(items[j])
		if pi != pj {
			return pi < pj
		}
		return secondary(items[i]) < secondary(items[j])
	})
}
