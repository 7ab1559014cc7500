package vstypes

// DefaultValueSize-sized buffer holding a material parameter's packed
// little-endian default value. Zero-padded when the ParamType's
// ComponentCount()*4 bytes don't fill it.
type DefaultValue struct {
	Type   ParamType
	Buffer [DefaultValueSize]byte
}

// ParamRange is an optional (min, max) bound on a material parameter.
type ParamRange struct {
	Min, Max float64
}

// MaterialParamDesc is one member of the material block, reconciled with
// any metadata the shader source declared for it by name (spec §4.5).
type MaterialParamDesc struct {
	Name         string
	Type         ParamType
	Offset       uint32
	Size         uint32
	Semantic     Semantic
	HasDefault   bool
	DefaultValue DefaultValue
	HasRange     bool
	Range        ParamRange
}

// MaterialTextureDesc is one combined-image-sampler/sampled-image
// descriptor exposed as a material texture slot.
type MaterialTextureDesc struct {
	Name     string
	Type     TextureType
	Set      uint32
	Binding  uint32
	Count    uint32
	Semantic Semantic
}

// MaterialDescription is the synthesised join of reflection and metadata
// (spec §3, §4.5).
type MaterialDescription struct {
	MaterialBlockName string
	MaterialParamSize uint32
	Params            []MaterialParamDesc
	Textures          []MaterialTextureDesc
	RenderState       RenderState
}

// DefaultMaterialBlockName is the material-block name used for every
// shader (spec §4.5); the metadata has no directive that overrides it.
const DefaultMaterialBlockName = "Material"
