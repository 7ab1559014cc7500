package vstypes

// ShaderBinary is the in-memory, fully-built artifact one (source,
// options, metadata) tuple produces (spec §3). It is immutable once
// constructed. VariantHash is left at 0 when the shader declares no
// permutation keywords; ShaderIdHash is populated by the library build
// orchestrator (C14), not by a single `compile` invocation.
type ShaderBinary struct {
	ContentHash  uint64
	SpirvHash    uint64
	ShaderIDHash uint64
	VariantHash  uint64
	Stage        Stage
	Reflection   ShaderReflection
	MaterialDesc MaterialDescription
	Spirv        []uint32
}
