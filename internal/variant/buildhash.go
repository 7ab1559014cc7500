package variant

import (
	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// ComputeBuildHash implements the variant-hash computer (C9): a 64-bit
// hash over the declared permutation-dispatch keywords only, resolved
// through defines/engine-keywords/default precedence (spec §4.6). With no
// permutation keywords it returns 0, so the variant hash is 0 iff there
// are no permutation keywords.
func ComputeBuildHash(decls []keyword.Decl, defines []Define, engineSet map[string]string, stage vstypes.Stage, sourceHash uint64) (uint64, error) {
	var entries []entry
	for i := range decls {
		d := &decls[i]
		if !d.IsPermutation() {
			continue
		}
		v, err := ResolveValue(d, defines, engineSet)
		if err != nil {
			return 0, err
		}
		entries = append(entries, entry{nameHash: hashing.HashString(d.Name), value: uint32(v)})
	}
	if len(entries) == 0 {
		return 0, nil
	}
	return serializeAndHash(sourceHash, stage, entries), nil
}
