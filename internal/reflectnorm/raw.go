// Package reflectnorm implements the reflection consumer (C7): it accepts
// the opaque reflection record the external SPIR-V reflector (§6.2)
// produces and normalises it into the vstypes records the rest of the
// pipeline shares.
package reflectnorm

import "github.com/vultra-engine/shaderc/internal/vstypes"

// RawBasicType is the scalar basic type the external reflector reports
// for a block member, before column/row expansion into a ParamType.
type RawBasicType uint8

const (
	RawFloat RawBasicType = iota
	RawInt
	RawUint
	RawBool
)

// RawMemberType is "basic-type x (columns x rows)" as described in spec
// §4.4: a scalar has columns=rows=1, a vecN has columns=1, rows=N, a
// matrix has columns=rows=3 or 4.
type RawMemberType struct {
	Basic   RawBasicType
	Columns int
	Rows    int
}

// RawMember is one raw block member as the external reflector reports it.
type RawMember struct {
	Name   string
	Offset uint32
	Size   uint32
	Type   RawMemberType
}

// RawBlock is one raw uniform/storage/push-constant block.
type RawBlock struct {
	Name           string
	Set            uint32
	Binding        uint32
	Size           uint32
	IsPushConstant bool
	StageFlags     uint32
	Members        []RawMember
}

// RawDescriptor is one raw descriptor binding. Count==0 means
// runtime-sized (spec §4.4).
type RawDescriptor struct {
	Name       string
	Set        uint32
	Binding    uint32
	Count      uint32
	Kind       vstypes.DescriptorKind
	StageFlags uint32
}

// ExecutionModel distinguishes whether the raw reflection carries a local
// workgroup size (compute, task, mesh — spec §4.4).
type ExecutionModel uint8

const (
	ExecGraphics ExecutionModel = iota
	ExecComputeLike
)

// Raw is the opaque reflection record accepted from the external
// reflector (§6.2) before normalisation.
type Raw struct {
	Descriptors []RawDescriptor
	Blocks      []RawBlock
	Execution   ExecutionModel
	LocalSizeX  uint32
	LocalSizeY  uint32
	LocalSizeZ  uint32
}
