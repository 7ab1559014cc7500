package variant

import (
	"path"
	"strings"

	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// KeyBuilder reconstructs the exact variant hash at runtime from a
// shader id, stage, and keyword name->value pairs (C15). It must produce
// byte-identical output to ComputeBuildHash for the same logical inputs
// (spec §8 property 4).
type KeyBuilder struct {
	shaderIDHash uint64
	stage        vstypes.Stage
	entries      []entry
}

// NewKeyBuilder starts a builder for the given shader id and stage. The
// shader id is hashed with the same 64-bit hash used for source hashing
// at build time, so it substitutes directly for the source hash in the
// canonical buffer (spec §4.12).
func NewKeyBuilder(shaderID string, stage vstypes.Stage) *KeyBuilder {
	return &KeyBuilder{shaderIDHash: hashing.HashString(shaderID), stage: stage}
}

// Set records one keyword's resolved value, hashing its name the same
// way the build-time computer does.
func (b *KeyBuilder) Set(name string, value int) *KeyBuilder {
	b.entries = append(b.entries, entry{nameHash: hashing.HashString(name), value: uint32(value)})
	return b
}

// Build produces the 64-bit variant hash. With zero entries set it
// returns 0, matching the build-time "no permutation keywords" case.
func (b *KeyBuilder) Build() uint64 {
	if len(b.entries) == 0 {
		return 0
	}
	return serializeAndHash(b.shaderIDHash, b.stage, b.entries)
}

// ShaderID derives the shader id from a virtual path by taking the
// filename without its final extension, e.g.
// "shaders/pbr.frag.vshader" -> "pbr.frag" (spec §4.12).
func ShaderID(virtualPath string) string {
	base := path.Base(virtualPath)
	ext := path.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// ShaderIDHash is a convenience for hashing a shader id the same way
// NewKeyBuilder does, for callers that need the hash without building a
// key (e.g. to stamp ShaderBinary.ShaderIDHash during a library build).
func ShaderIDHash(shaderID string) uint64 { return hashing.HashString(shaderID) }
