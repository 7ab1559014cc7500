package cache

import (
	"path/filepath"
	"testing"

	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

func TestBuildInputHashDeterministic(t *testing.T) {
	meta := metaparse.New()
	meta.HasMaterialDecl = true
	meta.Params["baseColor"] = metaparse.ParamMeta{Semantic: vstypes.SemanticBaseColor}

	defines := []variant.Define{{Name: "USE_SHADOW", Value: "1"}, {Name: "PASS", Value: "0"}}
	includeDirs := []string{"shaders/include", "common"}

	h1 := BuildInputHash("void main() {}", "shaders/pbr.frag.vshader", vstypes.StageFragment, defines, includeDirs, meta)
	h2 := BuildInputHash("void main() {}", "shaders/pbr.frag.vshader", vstypes.StageFragment, defines, includeDirs, meta)
	if h1 != h2 {
		t.Fatal("expected identical inputs to hash identically")
	}

	reordered := []variant.Define{{Name: "PASS", Value: "0"}, {Name: "USE_SHADOW", Value: "1"}}
	h3 := BuildInputHash("void main() {}", "shaders/pbr.frag.vshader", vstypes.StageFragment, reordered, includeDirs, meta)
	if h3 != h1 {
		t.Fatal("define order must not affect the build-input hash (sorted before folding)")
	}
}

func TestBuildInputHashSensitiveToEverySpecifiedInput(t *testing.T) {
	meta := metaparse.New()
	base := BuildInputHash("src", "a.vshader", vstypes.StageVertex, nil, nil, meta)

	if BuildInputHash("src2", "a.vshader", vstypes.StageVertex, nil, nil, meta) == base {
		t.Fatal("source text must affect the hash")
	}
	if BuildInputHash("src", "b.vshader", vstypes.StageVertex, nil, nil, meta) == base {
		t.Fatal("virtual path must affect the hash")
	}
	if BuildInputHash("src", "a.vshader", vstypes.StageFragment, nil, nil, meta) == base {
		t.Fatal("stage must affect the hash")
	}
	if BuildInputHash("src", "a.vshader", vstypes.StageVertex, []variant.Define{{Name: "X", Value: "1"}}, nil, meta) == base {
		t.Fatal("defines must affect the hash")
	}
	if BuildInputHash("src", "a.vshader", vstypes.StageVertex, nil, []string{"inc"}, meta) == base {
		t.Fatal("include dirs must affect the hash")
	}

	other := metaparse.New()
	other.HasMaterialDecl = true
	if BuildInputHash("src", "a.vshader", vstypes.StageVertex, nil, nil, other) == base {
		t.Fatal("metadata fingerprint must affect the hash")
	}
}

func TestPathIsSixteenHexDigits(t *testing.T) {
	p := Path("/cache", 0xDEADBEEF)
	want := filepath.Join("/cache", "00000000deadbeef.vshbin")
	if p != want {
		t.Fatalf("got %s want %s", p, want)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Lookup(dir, 12345); ok {
		t.Fatal("expected miss on empty cache dir")
	}
}

func TestStoreThenLookupHits(t *testing.T) {
	dir := t.TempDir()
	bin := vstypes.ShaderBinary{
		ContentHash: 1,
		Stage:       vstypes.StageVertex,
		Spirv:       []uint32{1, 2, 3},
		MaterialDesc: vstypes.MaterialDescription{
			MaterialBlockName: "Material",
			RenderState:       vstypes.DefaultRenderState(),
		},
	}
	Store(dir, 42, bin)
	got, ok := Lookup(dir, 42)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.ContentHash != bin.ContentHash || got.Stage != bin.Stage {
		t.Fatal("round-tripped binary mismatch")
	}
}
