package vshbin

import (
	"math"

	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int { return len(r.data) - r.pos }

func (r *reader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, vserr.New(vserr.DeserializeError, "truncated: need %d bytes, have %d", n, r.remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint64(b), nil
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *reader) string() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	b, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) byteVal() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func boolVal(b byte) bool { return b != 0 }

// Decode parses a .vshbin byte image into a ShaderBinary, enforcing every
// read-side guarantee named in spec §4.9: magic, version, required
// chunks, chunk size sanity, and spirvHash verification.
func Decode(data []byte) (vstypes.ShaderBinary, error) {
	var bin vstypes.ShaderBinary

	if len(data) < headerSize || string(data[:8]) != magic {
		return bin, vserr.New(vserr.DeserializeError, "bad magic")
	}
	r := &reader{data: data, pos: 8}

	ver, err := r.u32()
	if err != nil {
		return bin, err
	}
	if ver != version {
		return bin, vserr.New(vserr.DeserializeError, "unsupported version %d", ver)
	}

	flags, err := r.u32()
	if err != nil {
		return bin, err
	}
	bin.Stage = vstypes.Stage(flags & 0xFF)

	bin.ContentHash, err = r.u64()
	if err != nil {
		return bin, err
	}
	bin.SpirvHash, err = r.u64()
	if err != nil {
		return bin, err
	}

	var haveSpirv, haveRefl, haveMdes bool
	for r.remaining() > 0 {
		if r.remaining() < 8 {
			return bin, vserr.New(vserr.DeserializeError, "truncated chunk header")
		}
		tagBytes, _ := r.bytes(4)
		tag := string(tagBytes)
		size, err := r.u32()
		if err != nil {
			return bin, err
		}
		payload, err := r.bytes(int(size))
		if err != nil {
			return bin, err
		}

		switch tag {
		case "SIDH":
			if len(payload) != 8 {
				return bin, vserr.New(vserr.DeserializeError, "SIDH: expected 8 bytes, got %d", len(payload))
			}
			bin.ShaderIDHash = byteOrder.Uint64(payload)
		case "VKEY":
			if len(payload) != 8 {
				return bin, vserr.New(vserr.DeserializeError, "VKEY: expected 8 bytes, got %d", len(payload))
			}
			bin.VariantHash = byteOrder.Uint64(payload)
		case "SPRV":
			if len(payload)%4 != 0 {
				return bin, vserr.New(vserr.DeserializeError, "SPRV: size %d not a multiple of 4", len(payload))
			}
			bin.Spirv = make([]uint32, len(payload)/4)
			for i := range bin.Spirv {
				bin.Spirv[i] = byteOrder.Uint32(payload[i*4 : i*4+4])
			}
			haveSpirv = true
		case "REFL":
			bin.Reflection, err = decodeReflection(payload)
			if err != nil {
				return bin, err
			}
			haveRefl = true
		case "MDES":
			bin.MaterialDesc, err = decodeMaterialDesc(payload)
			if err != nil {
				return bin, err
			}
			haveMdes = true
		default:
			// unknown tag: skip (forward compatibility)
		}
	}

	if !haveSpirv {
		return bin, vserr.New(vserr.DeserializeError, "missing SPRV chunk")
	}
	if !haveRefl {
		return bin, vserr.New(vserr.DeserializeError, "missing REFL chunk")
	}
	if !haveMdes {
		return bin, vserr.New(vserr.DeserializeError, "missing MDES chunk")
	}

	if bin.SpirvHash != 0 {
		if hashing.HashWords(bin.Spirv) != bin.SpirvHash {
			return bin, vserr.New(vserr.DeserializeError, "spirvHash mismatch")
		}
	}

	return bin, nil
}

func decodeReflection(payload []byte) (vstypes.ShaderReflection, error) {
	r := &reader{data: payload}
	var refl vstypes.ShaderReflection

	descCount, err := r.u32()
	if err != nil {
		return refl, err
	}
	refl.Descriptors = make([]vstypes.DescriptorBinding, descCount)
	for i := range refl.Descriptors {
		d := &refl.Descriptors[i]
		if d.Name, err = r.string(); err != nil {
			return refl, err
		}
		if d.Set, err = r.u32(); err != nil {
			return refl, err
		}
		if d.Binding, err = r.u32(); err != nil {
			return refl, err
		}
		if d.Count, err = r.u32(); err != nil {
			return refl, err
		}
		kindByte, err := r.byteVal()
		if err != nil {
			return refl, err
		}
		d.Kind = vstypes.DescriptorKind(kindByte)
		if d.StageFlags, err = r.u32(); err != nil {
			return refl, err
		}
		runtimeByte, err := r.byteVal()
		if err != nil {
			return refl, err
		}
		d.RuntimeSized = boolVal(runtimeByte)
	}

	blockCount, err := r.u32()
	if err != nil {
		return refl, err
	}
	refl.Blocks = make([]vstypes.BlockLayout, blockCount)
	for i := range refl.Blocks {
		b := &refl.Blocks[i]
		if b.Name, err = r.string(); err != nil {
			return refl, err
		}
		if b.Set, err = r.u32(); err != nil {
			return refl, err
		}
		if b.Binding, err = r.u32(); err != nil {
			return refl, err
		}
		if b.Size, err = r.u32(); err != nil {
			return refl, err
		}
		pcByte, err := r.byteVal()
		if err != nil {
			return refl, err
		}
		b.IsPushConstant = boolVal(pcByte)
		if b.StageFlags, err = r.u32(); err != nil {
			return refl, err
		}
		memberCount, err := r.u32()
		if err != nil {
			return refl, err
		}
		b.Members = make([]vstypes.BlockMember, memberCount)
		for j := range b.Members {
			m := &b.Members[j]
			if m.Name, err = r.string(); err != nil {
				return refl, err
			}
			if m.Offset, err = r.u32(); err != nil {
				return refl, err
			}
			if m.Size, err = r.u32(); err != nil {
				return refl, err
			}
		}
	}

	return refl, nil
}

func decodeMaterialDesc(payload []byte) (vstypes.MaterialDescription, error) {
	r := &reader{data: payload}
	var m vstypes.MaterialDescription
	var err error

	if m.MaterialBlockName, err = r.string(); err != nil {
		return m, err
	}
	if m.MaterialParamSize, err = r.u32(); err != nil {
		return m, err
	}

	fields, err := r.bytes(13)
	if err != nil {
		return m, err
	}
	rs := &m.RenderState
	rs.DepthTest = boolVal(fields[0])
	rs.DepthWrite = boolVal(fields[1])
	rs.DepthFunc = vstypes.CompareOp(fields[2])
	rs.Cull = vstypes.CullMode(fields[3])
	rs.BlendEnable = boolVal(fields[4])
	rs.SrcColor = vstypes.BlendFactor(fields[5])
	rs.DstColor = vstypes.BlendFactor(fields[6])
	rs.ColorOp = vstypes.BlendOp(fields[7])
	rs.SrcAlpha = vstypes.BlendFactor(fields[8])
	rs.DstAlpha = vstypes.BlendFactor(fields[9])
	rs.AlphaOp = vstypes.BlendOp(fields[10])
	rs.ColorMask = fields[11]
	rs.AlphaToCoverage = boolVal(fields[12])

	if rs.DepthBiasFactor, err = r.f32(); err != nil {
		return m, err
	}
	if rs.DepthBiasUnits, err = r.f32(); err != nil {
		return m, err
	}

	paramCount, err := r.u32()
	if err != nil {
		return m, err
	}
	m.Params = make([]vstypes.MaterialParamDesc, paramCount)
	for i := range m.Params {
		p := &m.Params[i]
		if p.Name, err = r.string(); err != nil {
			return m, err
		}
		typeByte, err := r.byteVal()
		if err != nil {
			return m, err
		}
		p.Type = vstypes.ParamType(typeByte)
		if p.Offset, err = r.u32(); err != nil {
			return m, err
		}
		if p.Size, err = r.u32(); err != nil {
			return m, err
		}
		semantic, err := r.u32()
		if err != nil {
			return m, err
		}
		p.Semantic = vstypes.Semantic(semantic)
		hasDefaultByte, err := r.byteVal()
		if err != nil {
			return m, err
		}
		p.HasDefault = boolVal(hasDefaultByte)
		if p.HasDefault {
			dtByte, err := r.byteVal()
			if err != nil {
				return m, err
			}
			p.DefaultValue.Type = vstypes.ParamType(dtByte)
			buf, err := r.bytes(vstypes.DefaultValueSize)
			if err != nil {
				return m, err
			}
			copy(p.DefaultValue.Buffer[:], buf)
		}
		hasRangeByte, err := r.byteVal()
		if err != nil {
			return m, err
		}
		p.HasRange = boolVal(hasRangeByte)
		if p.HasRange {
			if p.Range.Min, err = r.f64(); err != nil {
				return m, err
			}
			if p.Range.Max, err = r.f64(); err != nil {
				return m, err
			}
		}
	}

	texCount, err := r.u32()
	if err != nil {
		return m, err
	}
	m.Textures = make([]vstypes.MaterialTextureDesc, texCount)
	for i := range m.Textures {
		t := &m.Textures[i]
		if t.Name, err = r.string(); err != nil {
			return m, err
		}
		typeByte, err := r.byteVal()
		if err != nil {
			return m, err
		}
		t.Type = vstypes.TextureType(typeByte)
		if t.Set, err = r.u32(); err != nil {
			return m, err
		}
		if t.Binding, err = r.u32(); err != nil {
			return m, err
		}
		if t.Count, err = r.u32(); err != nil {
			return m, err
		}
		semantic, err := r.u32()
		if err != nil {
			return m, err
		}
		t.Semantic = vstypes.Semantic(semantic)
	}

	return m, nil
}
