package vstypes

// RenderState is the fixed-point render state a material carries: depth
// test/write, blending, culling, color mask, alpha-to-coverage, and depth
// bias. Explicit records whether any `state` directive was ever seen for
// the owning shader (spec §3), distinguishing "defaulted" from "declared
// default".
type RenderState struct {
	DepthTest       bool
	DepthWrite      bool
	DepthFunc       CompareOp
	Cull            CullMode
	BlendEnable     bool
	SrcColor        BlendFactor
	DstColor        BlendFactor
	ColorOp         BlendOp
	SrcAlpha        BlendFactor
	DstAlpha        BlendFactor
	AlphaOp         BlendOp
	ColorMask       uint8
	AlphaToCoverage bool
	DepthBiasFactor float32
	DepthBiasUnits  float32
	Explicit        bool
}

// DefaultRenderState returns the documented spec §3 defaults: depth
// test/write on, depth function <=, cull back, blend off, full color
// mask, alpha-to-coverage off, zero biases.
func DefaultRenderState() RenderState {
	return RenderState{
		DepthTest:  true,
		DepthWrite: true,
		DepthFunc:  CompareLessEqual,
		Cull:       CullBack,
		ColorMask:  ColorMaskRGBA,
	}
}
