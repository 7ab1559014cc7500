package vstypes

// DescriptorKind is the closed set of descriptor binding kinds a
// reflection can report (spec §3).
type DescriptorKind uint8

const (
	DescriptorUniformBuffer DescriptorKind = iota
	DescriptorStorageBuffer
	DescriptorSampledImage
	DescriptorStorageImage
	DescriptorSampler
	DescriptorCombinedImageSampler
	DescriptorAccelerationStructure
	DescriptorUnknown
)

func (k DescriptorKind) String() string {
	switch k {
	case DescriptorUniformBuffer:
		return "uniform-buffer"
	case DescriptorStorageBuffer:
		return "storage-buffer"
	case DescriptorSampledImage:
		return "sampled-image"
	case DescriptorStorageImage:
		return "storage-image"
	case DescriptorSampler:
		return "sampler"
	case DescriptorCombinedImageSampler:
		return "combined-image-sampler"
	case DescriptorAccelerationStructure:
		return "acceleration-structure"
	default:
		return "unknown"
	}
}

// ParamType is the closed set of material parameter / reflected member
// types (spec §3). The on-disk default-value buffer is always 64 bytes
// regardless of ParamType, zero-padded — enough to hold a 4x4 f32 matrix.
type ParamType uint8

const (
	ParamF32 ParamType = iota
	ParamVec2
	ParamVec3
	ParamVec4
	ParamI32
	ParamU32
	ParamBool
	ParamMat3
	ParamMat4
)

// DefaultValueSize is the fixed size, in bytes, of a material parameter's
// on-disk default-value buffer (spec §3).
const DefaultValueSize = 64

func (t ParamType) String() string {
	switch t {
	case ParamF32:
		return "f32"
	case ParamVec2:
		return "vec2"
	case ParamVec3:
		return "vec3"
	case ParamVec4:
		return "vec4"
	case ParamI32:
		return "i32"
	case ParamU32:
		return "u32"
	case ParamBool:
		return "bool"
	case ParamMat3:
		return "mat3"
	case ParamMat4:
		return "mat4"
	default:
		return "unknown"
	}
}

// ComponentCount returns how many f32/i32/u32 scalar lanes ParamType holds,
// used to decode/encode default-value byte buffers. Matrices are reported
// in column-major scalar count (mat3=9, mat4=16).
func (t ParamType) ComponentCount() int {
	switch t {
	case ParamF32, ParamI32, ParamU32, ParamBool:
		return 1
	case ParamVec2:
		return 2
	case ParamVec3:
		return 3
	case ParamVec4:
		return 4
	case ParamMat3:
		return 9
	case ParamMat4:
		return 16
	default:
		return 0
	}
}

// Semantic is the closed set of material-parameter/texture semantic tags
// (spec §3).
type Semantic uint8

const (
	SemanticUnknown Semantic = iota
	SemanticBaseColor
	SemanticMetallic
	SemanticRoughness
	SemanticNormal
	SemanticEmissive
	SemanticOcclusion
	SemanticOpacity
	SemanticAlphaClip
	SemanticCustom
)

var semanticNames = map[string]Semantic{
	"BaseColor": SemanticBaseColor,
	"Metallic":  SemanticMetallic,
	"Roughness": SemanticRoughness,
	"Normal":    SemanticNormal,
	"Emissive":  SemanticEmissive,
	"Occlusion": SemanticOcclusion,
	"Opacity":   SemanticOpacity,
	"AlphaClip": SemanticAlphaClip,
	"Custom":    SemanticCustom,
}

func (s Semantic) String() string {
	for name, v := range semanticNames {
		if v == s {
			return name
		}
	}
	return "Unknown"
}

// SemanticFromName parses the payload of a `semantic(<Sem>)` attribute.
// Unknown names fail the caller's parse (spec §4.1: unknown attribute
// values are strict failures).
func SemanticFromName(name string) (Semantic, bool) {
	s, ok := semanticNames[name]
	return s, ok
}

// TextureType is the closed set of material texture dimensionalities.
type TextureType uint8

const (
	TextureUnknown TextureType = iota
	Texture2D
	TextureCube
	Texture3D
	Texture2DArray
)

func (t TextureType) String() string {
	switch t {
	case Texture2D:
		return "2D"
	case TextureCube:
		return "Cube"
	case Texture3D:
		return "3D"
	case Texture2DArray:
		return "2DArray"
	default:
		return "unknown"
	}
}

// CompareOp is the depth/stencil comparison function enumeration.
type CompareOp uint8

const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// CullMode is the closed face-culling enumeration.
type CullMode uint8

const (
	CullBack CullMode = iota
	CullNone
	CullFront
)

func CullModeFromName(name string) (CullMode, bool) {
	switch name {
	case "None":
		return CullNone, true
	case "Back":
		return CullBack, true
	case "Front":
		return CullFront, true
	default:
		return 0, false
	}
}

// BlendFactor is the closed blend-factor enumeration used for both color
// and alpha blend factors.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

var blendFactorNames = map[string]BlendFactor{
	"Zero":             BlendZero,
	"One":              BlendOne,
	"SrcColor":         BlendSrcColor,
	"OneMinusSrcColor": BlendOneMinusSrcColor,
	"DstColor":         BlendDstColor,
	"OneMinusDstColor": BlendOneMinusDstColor,
	"SrcAlpha":         BlendSrcAlpha,
	"OneMinusSrcAlpha": BlendOneMinusSrcAlpha,
	"DstAlpha":         BlendDstAlpha,
	"OneMinusDstAlpha": BlendOneMinusDstAlpha,
}

func BlendFactorFromName(name string) (BlendFactor, bool) {
	f, ok := blendFactorNames[name]
	return f, ok
}

// BlendOp is the closed blend-operation enumeration.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

var blendOpNames = map[string]BlendOp{
	"Add":             BlendOpAdd,
	"Subtract":        BlendOpSubtract,
	"ReverseSubtract": BlendOpReverseSubtract,
	"Min":             BlendOpMin,
	"Max":             BlendOpMax,
}

func BlendOpFromName(name string) (BlendOp, bool) {
	op, ok := blendOpNames[name]
	return op, ok
}

func CompareOpFromName(name string) (CompareOp, bool) {
	switch name {
	case "Never":
		return CompareNever, true
	case "Less":
		return CompareLess, true
	case "Equal":
		return CompareEqual, true
	case "LessEqual":
		return CompareLessEqual, true
	case "Greater":
		return CompareGreater, true
	case "NotEqual":
		return CompareNotEqual, true
	case "GreaterEqual":
		return CompareGreaterEqual, true
	case "Always":
		return CompareAlways, true
	default:
		return 0, false
	}
}

// ColorMask bits, per spec §3 "four-bit color mask (R,G,B,A)".
const (
	ColorMaskR uint8 = 1 << iota
	ColorMaskG
	ColorMaskB
	ColorMaskA
	ColorMaskRGBA = ColorMaskR | ColorMaskG | ColorMaskB | ColorMaskA
)

// ColorMaskFromLetters parses a subset of "RGBA" letters into a mask,
// failing (false) on any other rune (spec §4.1 `ColorMask` directive).
func ColorMaskFromLetters(letters string) (uint8, bool) {
	var mask uint8
	for _, r := range letters {
		switch r {
		case 'R':
			mask |= ColorMaskR
		case 'G':
			mask |= ColorMaskG
		case 'B':
			mask |= ColorMaskB
		case 'A':
			mask |= ColorMaskA
		default:
			return 0, false
		}
	}
	return mask, true
}
