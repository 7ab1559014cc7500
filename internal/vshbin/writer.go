// Package vshbin implements the .vshbin single-artifact binary codec
// (C12): a fixed 32-byte header followed by tagged chunks carrying the
// SPIR-V words, reflection, and material description of one built shader
// variant (spec §4.9).
package vshbin

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/vultra-engine/shaderc/internal/vstypes"
)

const (
	magic          = "VSHBIN00"
	version uint32 = 2
	headerSize     = 32
)

var byteOrder = binary.LittleEndian

type chunkWriter struct {
	buf bytes.Buffer
}

func (w *chunkWriter) writeChunk(tag string, payload []byte) {
	var tagBytes [4]byte
	copy(tagBytes[:], tag)
	w.buf.Write(tagBytes[:])
	var sizeBytes [4]byte
	byteOrder.PutUint32(sizeBytes[:], uint32(len(payload)))
	w.buf.Write(sizeBytes[:])
	w.buf.Write(payload)
}

func putString(buf *bytes.Buffer, s string) {
	var lenBytes [4]byte
	byteOrder.PutUint32(lenBytes[:], uint32(len(s)))
	buf.Write(lenBytes[:])
	buf.WriteString(s)
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	byteOrder.PutUint64(b[:], v)
	buf.Write(b[:])
}

func putF32(buf *bytes.Buffer, v float32) {
	putU32(buf, math.Float32bits(v))
}

func putF64(buf *bytes.Buffer, v float64) {
	putU64(buf, math.Float64bits(v))
}

// Encode serialises a ShaderBinary into its .vshbin byte image.
func Encode(bin vstypes.ShaderBinary) []byte {
	var w chunkWriter

	if bin.ShaderIDHash != 0 {
		var b bytes.Buffer
		putU64(&b, bin.ShaderIDHash)
		w.writeChunk("SIDH", b.Bytes())
	}
	if bin.VariantHash != 0 {
		var b bytes.Buffer
		putU64(&b, bin.VariantHash)
		w.writeChunk("VKEY", b.Bytes())
	}

	var spirv bytes.Buffer
	for _, word := range bin.Spirv {
		putU32(&spirv, word)
	}
	w.writeChunk("SPRV", spirv.Bytes())

	w.writeChunk("REFL", encodeReflection(bin.Reflection))
	w.writeChunk("MDES", encodeMaterialDesc(bin.MaterialDesc))

	var out bytes.Buffer
	out.WriteString(magic)
	putU32(&out, version)
	putU32(&out, uint32(bin.Stage))
	putU64(&out, bin.ContentHash)
	putU64(&out, bin.SpirvHash)
	out.Write(w.buf.Bytes())
	return out.Bytes()
}

func encodeReflection(r vstypes.ShaderReflection) []byte {
	var buf bytes.Buffer
	putU32(&buf, uint32(len(r.Descriptors)))
	for _, d := range r.Descriptors {
		putString(&buf, d.Name)
		putU32(&buf, d.Set)
		putU32(&buf, d.Binding)
		putU32(&buf, d.Count)
		buf.WriteByte(byte(d.Kind))
		putU32(&buf, d.StageFlags)
		buf.WriteByte(boolByte(d.RuntimeSized))
	}

	putU32(&buf, uint32(len(r.Blocks)))
	for _, blk := range r.Blocks {
		putString(&buf, blk.Name)
		putU32(&buf, blk.Set)
		putU32(&buf, blk.Binding)
		putU32(&buf, blk.Size)
		buf.WriteByte(boolByte(blk.IsPushConstant))
		putU32(&buf, blk.StageFlags)
		putU32(&buf, uint32(len(blk.Members)))
		for _, m := range blk.Members {
			putString(&buf, m.Name)
			putU32(&buf, m.Offset)
			putU32(&buf, m.Size)
		}
	}
	return buf.Bytes()
}

func encodeMaterialDesc(m vstypes.MaterialDescription) []byte {
	var buf bytes.Buffer
	putString(&buf, m.MaterialBlockName)
	putU32(&buf, m.MaterialParamSize)

	rs := m.RenderState
	buf.Write([]byte{
		boolByte(rs.DepthTest),
		boolByte(rs.DepthWrite),
		byte(rs.DepthFunc),
		byte(rs.Cull),
		boolByte(rs.BlendEnable),
		byte(rs.SrcColor),
		byte(rs.DstColor),
		byte(rs.ColorOp),
		byte(rs.SrcAlpha),
		byte(rs.DstAlpha),
		byte(rs.AlphaOp),
		rs.ColorMask,
		boolByte(rs.AlphaToCoverage),
	})
	putF32(&buf, rs.DepthBiasFactor)
	putF32(&buf, rs.DepthBiasUnits)

	putU32(&buf, uint32(len(m.Params)))
	for _, p := range m.Params {
		putString(&buf, p.Name)
		buf.WriteByte(byte(p.Type))
		putU32(&buf, p.Offset)
		putU32(&buf, p.Size)
		putU32(&buf, uint32(p.Semantic))
		buf.WriteByte(boolByte(p.HasDefault))
		if p.HasDefault {
			buf.WriteByte(byte(p.DefaultValue.Type))
			buf.Write(p.DefaultValue.Buffer[:])
		}
		buf.WriteByte(boolByte(p.HasRange))
		if p.HasRange {
			putF64(&buf, p.Range.Min)
			putF64(&buf, p.Range.Max)
		}
	}

	putU32(&buf, uint32(len(m.Textures)))
	for _, t := range m.Textures {
		putString(&buf, t.Name)
		buf.WriteByte(byte(t.Type))
		putU32(&buf, t.Set)
		putU32(&buf, t.Binding)
		putU32(&buf, t.Count)
		putU32(&buf, uint32(t.Semantic))
	}

	return buf.Bytes()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
