// Package metaparse implements the metadata mini-language parser (C4): a
// line-oriented recogniser for `#pragma vultra ...` directives that
// populates a ParsedMetadata record.
package metaparse

import (
	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// ParamMeta is the metadata declared for one material parameter by name:
// semantic, an optional packed default (up to 16 f32 values in a 64-byte
// buffer), and an optional (min, max) range. The param's final ParamType
// is deferred to the material synthesiser (C8), which learns it from
// reflection.
type ParamMeta struct {
	Semantic   vstypes.Semantic
	HasDefault bool
	Default    [vstypes.DefaultValueSize]byte
	HasRange   bool
	Range      vstypes.ParamRange
}

// TextureMeta is the metadata declared for one material texture by name.
type TextureMeta struct {
	Semantic vstypes.Semantic
}

// ParsedMetadata is the output of scanning one shader source file for
// `#pragma vultra ...` directives (spec §3, §4.1).
type ParsedMetadata struct {
	HasMaterialDecl bool
	Params          map[string]ParamMeta
	Textures        map[string]TextureMeta
	Keywords        []keyword.Decl
	RenderState     vstypes.RenderState
}

// New returns an empty ParsedMetadata with its render state at the spec
// §3 documented defaults and Explicit unset.
func New() *ParsedMetadata {
	return &ParsedMetadata{
		Params:      map[string]ParamMeta{},
		Textures:    map[string]TextureMeta{},
		RenderState: vstypes.DefaultRenderState(),
	}
}
