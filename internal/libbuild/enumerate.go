// Package libbuild implements the library build orchestrator (C14): for
// each input shader it enumerates the Cartesian product of permutation
// keyword values, prunes variants whose `only_if` constraints fail,
// builds each surviving variant via the build driver (C11), deduplicates
// by (keyHash, stage), and finally writes a `.vshlib` (C13).
package libbuild

import (
	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/variant"
)

// enumerate produces the ordered list of define-sets for the Cartesian
// product of the given keywords' possible values (spec §4.11 step 3):
// bool -> {"0","1"}; enum -> each enumerant name in declaration order.
// Recursion follows keyword declaration order, so the result is
// deterministic. With zero keywords it yields a single empty list.
func enumerate(decls []keyword.Decl) [][]variant.Define {
	if len(decls) == 0 {
		return [][]variant.Define{{}}
	}
	return enumerateFrom(decls, 0, nil)
}

func enumerateFrom(decls []keyword.Decl, i int, prefix []variant.Define) [][]variant.Define {
	if i == len(decls) {
		out := make([]variant.Define, len(prefix))
		copy(out, prefix)
		return [][]variant.Define{out}
	}
	d := &decls[i]
	var values []string
	switch d.ValueKind {
	case keyword.ValueBool:
		values = []string{"0", "1"}
	case keyword.ValueEnum:
		values = d.Enumerants
	}

	var results [][]variant.Define
	for _, v := range values {
		next := append(append([]variant.Define{}, prefix...), variant.Define{Name: d.Name, Value: v})
		results = append(results, enumerateFrom(decls, i+1, next)...)
	}
	return results
}

// permutationKeywords returns the subset of decls that participate in
// build-time enumeration (spec §4.11 step 2).
func permutationKeywords(decls []keyword.Decl) []keyword.Decl {
	var out []keyword.Decl
	for _, d := range decls {
		if d.IsPermutation() {
			out = append(out, d)
		}
	}
	return out
}
