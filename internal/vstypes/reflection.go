package vstypes

// DescriptorBinding is one binding reported by the external reflector
// (spec §3, §4.4): a count of 0 means runtime-sized.
type DescriptorBinding struct {
	Name         string
	Set          uint32
	Binding      uint32
	Count        uint32
	Kind         DescriptorKind
	StageFlags   uint32
	RuntimeSized bool
}

// BlockMember is one member of a uniform/storage/push-constant block.
type BlockMember struct {
	Name   string
	Offset uint32
	Size   uint32
	Type   ParamType
}

// BlockLayout is one uniform/storage/push-constant block. Push-constant
// blocks carry IsPushConstant=true and have no meaningful (Set, Binding).
type BlockLayout struct {
	Name           string
	Set            uint32
	Binding        uint32
	Size           uint32
	IsPushConstant bool
	StageFlags     uint32
	Members        []BlockMember
}

// LocalSize holds the compute/task/mesh workgroup size (spec §4.4).
type LocalSize struct {
	X, Y, Z uint32
}

// ShaderReflection is the normalised reflection of one compiled SPIR-V
// module (spec §3): ordered descriptor bindings and blocks, with an
// optional local workgroup size for compute-like stages.
type ShaderReflection struct {
	Descriptors  []DescriptorBinding
	Blocks       []BlockLayout
	HasLocalSize bool
	LocalSize    LocalSize
}
