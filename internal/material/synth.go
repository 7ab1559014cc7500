// Package material implements the material-description synthesiser (C8):
// it joins a shader's normalised reflection with its parsed metadata,
// validates that every metadata-declared name actually exists in the
// compiled module, and produces the MaterialDescription artifact field.
package material

import (
	"sort"

	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// Synthesize implements the v1 policy of spec §4.5.
func Synthesize(reflection vstypes.ShaderReflection, meta *metaparse.ParsedMetadata) (vstypes.MaterialDescription, error) {
	desc := vstypes.MaterialDescription{
		MaterialBlockName: vstypes.DefaultMaterialBlockName,
		RenderState:       meta.RenderState,
	}

	block := findMaterialBlock(reflection, desc.MaterialBlockName)
	if block == nil {
		if len(meta.Params) > 0 {
			return desc, vserr.New(vserr.ParseError,
				"material block %q not found but metadata declares parameters", desc.MaterialBlockName)
		}
		// Legitimate for compute/fullscreen/ray-tracing shaders (spec §4.5).
		desc.Textures = synthesizeTextures(reflection, meta)
		if err := validateTextures(meta, desc.Textures); err != nil {
			return desc, err
		}
		return desc, nil
	}

	desc.MaterialParamSize = block.Size
	seen := map[string]bool{}
	for _, m := range block.Members {
		seen[m.Name] = true
		pd := vstypes.MaterialParamDesc{
			Name:   m.Name,
			Type:   m.Type,
			Offset: m.Offset,
			Size:   m.Size,
		}
		if pm, ok := meta.Params[m.Name]; ok {
			pd.Semantic = pm.Semantic
			if pm.HasDefault {
				pd.HasDefault = true
				pd.DefaultValue = vstypes.DefaultValue{Type: m.Type, Buffer: pm.Default}
			}
			if pm.HasRange {
				pd.HasRange = true
				pd.Range = pm.Range
			}
		}
		desc.Params = append(desc.Params, pd)
	}

	for name := range meta.Params {
		if !seen[name] {
			return desc, vserr.New(vserr.ParseError,
				"metadata declares param %q which is absent from material block %q", name, desc.MaterialBlockName)
		}
	}

	desc.Textures = synthesizeTextures(reflection, meta)
	if err := validateTextures(meta, desc.Textures); err != nil {
		return desc, err
	}

	return desc, nil
}

func findMaterialBlock(r vstypes.ShaderReflection, name string) *vstypes.BlockLayout {
	for i := range r.Blocks {
		b := &r.Blocks[i]
		if !b.IsPushConstant && b.Name == name {
			return b
		}
	}
	return nil
}

// synthesizeTextures emits one MaterialTextureDesc per descriptor whose
// kind is combined-image-sampler or sampled-image, in reflected order,
// merging in the metadata semantic by name (spec §4.5). The reflection
// data model carries no view-dimensionality field, so Type is always
// TextureUnknown here — a real dimensionality would require extending the
// descriptor record, which would break the vshbin round-trip invariant
// since the codec (§4.9) only serialises the fields spec §3 names.
func synthesizeTextures(r vstypes.ShaderReflection, meta *metaparse.ParsedMetadata) []vstypes.MaterialTextureDesc {
	var out []vstypes.MaterialTextureDesc
	for _, d := range r.Descriptors {
		if d.Kind != vstypes.DescriptorCombinedImageSampler && d.Kind != vstypes.DescriptorSampledImage {
			continue
		}
		td := vstypes.MaterialTextureDesc{
			Name:    d.Name,
			Type:    vstypes.TextureUnknown,
			Set:     d.Set,
			Binding: d.Binding,
			Count:   d.Count,
		}
		if tm, ok := meta.Textures[d.Name]; ok {
			td.Semantic = tm.Semantic
		}
		out = append(out, td)
	}
	return out
}

func validateTextures(meta *metaparse.ParsedMetadata, textures []vstypes.MaterialTextureDesc) error {
	present := map[string]bool{}
	for _, t := range textures {
		present[t.Name] = true
	}
	names := make([]string, 0, len(meta.Textures))
	for name := range meta.Textures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !present[name] {
			return vserr.New(vserr.ParseError, "metadata declares texture %q which is absent from reflected descriptors", name)
		}
	}
	return nil
}
