package metaparse

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/vultra-engine/shaderc/internal/vstypes"
)

const s1Source = `#pragma vultra material
#pragma vultra param BaseColor semantic(BaseColor) default(1,1,1,1)
#pragma vultra texture albedoTex semantic(BaseColor)
#pragma vultra state Cull None
#pragma vultra state Blend SrcAlpha OneMinusSrcAlpha
`

func TestParseS1(t *testing.T) {
	meta, err := Parse(s1Source)
	if err != nil {
		t.Fatal(err)
	}
	if !meta.HasMaterialDecl {
		t.Fatal("expected HasMaterialDecl=true")
	}
	bc, ok := meta.Params["BaseColor"]
	if !ok {
		t.Fatal("expected BaseColor param")
	}
	if bc.Semantic != vstypes.SemanticBaseColor || !bc.HasDefault {
		t.Fatalf("got %+v", bc)
	}
	for i := 0; i < 4; i++ {
		f := math.Float32frombits(binary.LittleEndian.Uint32(bc.Default[i*4:]))
		if f != 1.0 {
			t.Fatalf("component %d: got %v want 1.0", i, f)
		}
	}
	tex, ok := meta.Textures["albedoTex"]
	if !ok || tex.Semantic != vstypes.SemanticBaseColor {
		t.Fatalf("got %+v ok=%v", tex, ok)
	}
	rs := meta.RenderState
	if rs.Cull != vstypes.CullNone || !rs.BlendEnable {
		t.Fatalf("got %+v", rs)
	}
	if rs.SrcColor != vstypes.BlendSrcAlpha || rs.DstColor != vstypes.BlendOneMinusSrcAlpha {
		t.Fatalf("got %+v", rs)
	}
	if rs.SrcAlpha != vstypes.BlendSrcAlpha || rs.DstAlpha != vstypes.BlendOneMinusSrcAlpha {
		t.Fatalf("got %+v", rs)
	}
	if !rs.Explicit {
		t.Fatal("expected Explicit=true")
	}
}

func TestParseIgnoresOrdinaryCode(t *testing.T) {
	src := "#version 450\nvoid main() {}\n// #pragma vultra material does not count, '//' leads the line\n"
	meta, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if meta.HasMaterialDecl {
		t.Fatal("a line not starting with '#pragma vultra' must be ignored")
	}
}

func TestParseCRLF(t *testing.T) {
	src := "#pragma vultra material\r\n#pragma vultra texture foo\r\n"
	meta, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if !meta.HasMaterialDecl {
		t.Fatal("expected material decl")
	}
	if _, ok := meta.Textures["foo"]; !ok {
		t.Fatal("expected texture foo")
	}
}

func TestParseUnknownDirectiveFails(t *testing.T) {
	_, err := Parse("#pragma vultra bogus\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseUnknownAttributeFails(t *testing.T) {
	_, err := Parse("#pragma vultra param Foo bogus(1)\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseNonNumericRangeFails(t *testing.T) {
	_, err := Parse("#pragma vultra param Foo range(a,b)\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRangeRequiresTwo(t *testing.T) {
	_, err := Parse("#pragma vultra param Foo range(1)\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseKeywordDirective(t *testing.T) {
	meta, err := Parse("#pragma vultra keyword permute USE_SHADOW=0\n#pragma vultra keyword permute PASS=A|B only_if(USE_SHADOW)\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(meta.Keywords) != 2 {
		t.Fatalf("got %d keywords", len(meta.Keywords))
	}
	if meta.Keywords[0].Name != "USE_SHADOW" || meta.Keywords[1].Name != "PASS" {
		t.Fatalf("got %+v", meta.Keywords)
	}
	if meta.Keywords[1].Constraint != "USE_SHADOW" {
		t.Fatalf("got constraint %q", meta.Keywords[1].Constraint)
	}
}

func TestParseColorMaskDirective(t *testing.T) {
	meta, err := Parse("#pragma vultra state ColorMask RGBA\n")
	if err != nil {
		t.Fatal(err)
	}
	if meta.RenderState.ColorMask != 0b1111 {
		t.Fatalf("got %b", meta.RenderState.ColorMask)
	}

	meta, err = Parse("#pragma vultra state ColorMask R\n")
	if err != nil {
		t.Fatal(err)
	}
	if meta.RenderState.ColorMask != 0b0001 {
		t.Fatalf("got %b", meta.RenderState.ColorMask)
	}
}
