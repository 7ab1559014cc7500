// Package cache implements the content-addressed build cache (C10): a
// build-input hash that determines a deterministic on-disk path for a
// shader binary, so identical inputs always hit the same cache file.
package cache

import (
	"math"
	"sort"

	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// metadataFingerprint folds the parsed metadata into the running hash in
// the exact order spec §4.7 names: the hasMaterialDecl flag, every
// render-state field in the .vshbin field order (§4.9), then each
// metadata param sorted by name (semantic, default bytes if any, range
// if any), then each texture sorted by name (semantic).
func metadataFingerprint(h uint64, meta *metaparse.ParsedMetadata) uint64 {
	h = hashing.Bytes(h, []byte{boolByte(meta.HasMaterialDecl)})
	h = renderStateFingerprint(h, meta.RenderState)

	names := make([]string, 0, len(meta.Params))
	for name := range meta.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := meta.Params[name]
		h = hashing.String(h, name)
		h = hashing.Uint32(h, uint32(p.Semantic))
		h = hashing.Bytes(h, []byte{boolByte(p.HasDefault)})
		if p.HasDefault {
			h = hashing.Bytes(h, p.Default[:])
		}
		h = hashing.Bytes(h, []byte{boolByte(p.HasRange)})
		if p.HasRange {
			h = hashing.Uint64(h, math.Float64bits(p.Range.Min))
			h = hashing.Uint64(h, math.Float64bits(p.Range.Max))
		}
	}

	texNames := make([]string, 0, len(meta.Textures))
	for name := range meta.Textures {
		texNames = append(texNames, name)
	}
	sort.Strings(texNames)
	for _, name := range texNames {
		t := meta.Textures[name]
		h = hashing.String(h, name)
		h = hashing.Uint32(h, uint32(t.Semantic))
	}

	return h
}

func renderStateFingerprint(h uint64, rs vstypes.RenderState) uint64 {
	h = hashing.Bytes(h, []byte{
		boolByte(rs.DepthTest),
		boolByte(rs.DepthWrite),
		byte(rs.DepthFunc),
		byte(rs.Cull),
		boolByte(rs.BlendEnable),
		byte(rs.SrcColor),
		byte(rs.DstColor),
		byte(rs.ColorOp),
		byte(rs.SrcAlpha),
		byte(rs.DstAlpha),
		byte(rs.AlphaOp),
		rs.ColorMask,
		boolByte(rs.AlphaToCoverage),
	})
	h = hashing.Uint32(h, math.Float32bits(rs.DepthBiasFactor))
	h = hashing.Uint32(h, math.Float32bits(rs.DepthBiasUnits))
	return h
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// BuildInputHash computes the §4.7 build-input hash: source text, virtual
// path, stage, sorted defines, include directories in declared order, and
// the metadata fingerprint.
func BuildInputHash(sourceText, virtualPath string, stage vstypes.Stage, defines []variant.Define, includeDirs []string, meta *metaparse.ParsedMetadata) uint64 {
	h := hashing.Seed()
	h = hashing.String(h, sourceText)
	h = hashing.String(h, virtualPath)
	h = hashing.Uint32(h, uint32(stage))

	sorted := make([]variant.Define, len(defines))
	copy(sorted, defines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, d := range sorted {
		h = hashing.String(h, d.Name)
		h = hashing.String(h, d.Value)
	}

	for _, dir := range includeDirs {
		h = hashing.String(h, dir)
	}

	if meta != nil {
		h = metadataFingerprint(h, meta)
	}

	return h
}
