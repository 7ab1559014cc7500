package material

import (
	"testing"

	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

func TestSynthesizeBasic(t *testing.T) {
	refl := vstypes.ShaderReflection{
		Blocks: []vstypes.BlockLayout{
			{
				Name: "Material", Size: 16,
				Members: []vstypes.BlockMember{{Name: "BaseColor", Offset: 0, Size: 16, Type: vstypes.ParamVec4}},
			},
		},
		Descriptors: []vstypes.DescriptorBinding{
			{Name: "albedoTex", Kind: vstypes.DescriptorCombinedImageSampler, Set: 1, Binding: 0, Count: 1},
		},
	}
	meta := metaparse.New()
	meta.Params["BaseColor"] = metaparse.ParamMeta{Semantic: vstypes.SemanticBaseColor, HasDefault: true}
	meta.Textures["albedoTex"] = metaparse.TextureMeta{Semantic: vstypes.SemanticBaseColor}

	desc, err := Synthesize(refl, meta)
	if err != nil {
		t.Fatal(err)
	}
	if desc.MaterialParamSize != 16 || len(desc.Params) != 1 {
		t.Fatalf("got %+v", desc)
	}
	if desc.Params[0].Semantic != vstypes.SemanticBaseColor || !desc.Params[0].HasDefault {
		t.Fatalf("got %+v", desc.Params[0])
	}
	if len(desc.Textures) != 1 || desc.Textures[0].Semantic != vstypes.SemanticBaseColor {
		t.Fatalf("got %+v", desc.Textures)
	}
}

func TestSynthesizeNoMaterialBlockNoParams(t *testing.T) {
	refl := vstypes.ShaderReflection{}
	meta := metaparse.New()
	desc, err := Synthesize(refl, meta)
	if err != nil {
		t.Fatal(err)
	}
	if desc.MaterialParamSize != 0 || len(desc.Params) != 0 {
		t.Fatalf("got %+v", desc)
	}
}

func TestSynthesizeMissingBlockWithParamsFails(t *testing.T) {
	refl := vstypes.ShaderReflection{}
	meta := metaparse.New()
	meta.Params["BaseColor"] = metaparse.ParamMeta{}
	_, err := Synthesize(refl, meta)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSynthesizeParamAbsentFromBlockFails(t *testing.T) {
	refl := vstypes.ShaderReflection{
		Blocks: []vstypes.BlockLayout{{Name: "Material", Size: 4, Members: []vstypes.BlockMember{{Name: "Other", Size: 4}}}},
	}
	meta := metaparse.New()
	meta.Params["Missing"] = metaparse.ParamMeta{}
	_, err := Synthesize(refl, meta)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSynthesizeTextureAbsentFails(t *testing.T) {
	refl := vstypes.ShaderReflection{}
	meta := metaparse.New()
	meta.Textures["missingTex"] = metaparse.TextureMeta{}
	_, err := Synthesize(refl, meta)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSynthesizeSkipsPushConstantBlockWithSameName(t *testing.T) {
	refl := vstypes.ShaderReflection{
		Blocks: []vstypes.BlockLayout{
			{Name: "Material", IsPushConstant: true, Size: 8},
			{Name: "Material", Size: 16, Members: []vstypes.BlockMember{{Name: "X", Size: 4}}},
		},
	}
	meta := metaparse.New()
	desc, err := Synthesize(refl, meta)
	if err != nil {
		t.Fatal(err)
	}
	if desc.MaterialParamSize != 16 {
		t.Fatalf("expected to skip the push-constant block, got size %d", desc.MaterialParamSize)
	}
}
