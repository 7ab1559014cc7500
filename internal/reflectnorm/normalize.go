package reflectnorm

import "github.com/vultra-engine/shaderc/internal/vstypes"

// Normalize converts a Raw reflection record into the ShaderReflection
// shape the rest of the pipeline consumes (spec §4.4).
func Normalize(raw Raw) vstypes.ShaderReflection {
	out := vstypes.ShaderReflection{}

	for _, d := range raw.Descriptors {
		out.Descriptors = append(out.Descriptors, vstypes.DescriptorBinding{
			Name:         d.Name,
			Set:          d.Set,
			Binding:      d.Binding,
			Count:        d.Count,
			Kind:         d.Kind,
			StageFlags:   d.StageFlags,
			RuntimeSized: d.Count == 0,
		})
	}

	for _, b := range raw.Blocks {
		block := vstypes.BlockLayout{
			Name:           b.Name,
			Size:           b.Size,
			IsPushConstant: b.IsPushConstant,
			StageFlags:     b.StageFlags,
		}
		if !b.IsPushConstant {
			block.Set = b.Set
			block.Binding = b.Binding
		}
		for _, m := range b.Members {
			block.Members = append(block.Members, vstypes.BlockMember{
				Name:   m.Name,
				Offset: m.Offset,
				Size:   m.Size,
				Type:   mapMemberType(m.Type),
			})
		}
		out.Blocks = append(out.Blocks, block)
	}

	if raw.Execution == ExecComputeLike {
		out.HasLocalSize = true
		out.LocalSize = vstypes.LocalSize{X: raw.LocalSizeX, Y: raw.LocalSizeY, Z: raw.LocalSizeZ}
	}

	return out
}

// mapMemberType maps basic-type x (columns x rows) to the ParamType
// enum (spec §4.4): scalar -> f32/i32/u32/bool; 1-column vectors of
// length 2/3/4 -> vec2/3/4; matrices -> mat3/mat4. Unknown shapes fall
// back to f32.
func mapMemberType(t RawMemberType) vstypes.ParamType {
	if t.Columns >= 3 && t.Columns == t.Rows {
		switch t.Columns {
		case 3:
			return vstypes.ParamMat3
		case 4:
			return vstypes.ParamMat4
		}
	}
	if t.Columns == 1 {
		switch t.Rows {
		case 1:
			switch t.Basic {
			case RawInt:
				return vstypes.ParamI32
			case RawUint:
				return vstypes.ParamU32
			case RawBool:
				return vstypes.ParamBool
			default:
				return vstypes.ParamF32
			}
		case 2:
			return vstypes.ParamVec2
		case 3:
			return vstypes.ParamVec3
		case 4:
			return vstypes.ParamVec4
		}
	}
	return vstypes.ParamF32
}
