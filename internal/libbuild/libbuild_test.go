package libbuild

import (
	"context"
	"reflect"
	"testing"

	"github.com/vultra-engine/shaderc/internal/build"
	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/reflectnorm"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vshlib"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

func TestEnumerateBoolCrossEnum(t *testing.T) {
	decls := []keyword.Decl{
		{Name: "USE_SHADOW", ValueKind: keyword.ValueBool},
		{Name: "SURFACE", ValueKind: keyword.ValueEnum, Enumerants: []string{"OPAQUE", "CUTOUT"}},
	}
	got := enumerate(decls)
	want := [][]variant.Define{
		{{Name: "USE_SHADOW", Value: "0"}, {Name: "SURFACE", Value: "OPAQUE"}},
		{{Name: "USE_SHADOW", Value: "0"}, {Name: "SURFACE", Value: "CUTOUT"}},
		{{Name: "USE_SHADOW", Value: "1"}, {Name: "SURFACE", Value: "OPAQUE"}},
		{{Name: "USE_SHADOW", Value: "1"}, {Name: "SURFACE", Value: "CUTOUT"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}

func TestEnumerateNoKeywordsYieldsSingleEmptySet(t *testing.T) {
	got := enumerate(nil)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestEnumerateDeterministicAcrossRuns(t *testing.T) {
	decls := []keyword.Decl{
		{Name: "A", ValueKind: keyword.ValueEnum, Enumerants: []string{"X", "Y", "Z"}},
		{Name: "B", ValueKind: keyword.ValueBool},
	}
	first := enumerate(decls)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(enumerate(decls), first) {
			t.Fatal("enumeration must be deterministic across repeated runs")
		}
	}
}

func TestPruneCandidateSkipInvalid(t *testing.T) {
	decls := []keyword.Decl{
		{Name: "SURFACE", ValueKind: keyword.ValueEnum, Enumerants: []string{"OPAQUE", "CUTOUT"}},
		{Name: "USE_SHADOW", ValueKind: keyword.ValueBool, Constraint: "only_if(SURFACE==CUTOUT)"},
	}
	// SURFACE=OPAQUE, USE_SHADOW=1 violates the constraint.
	defines := []variant.Define{{Name: "SURFACE", Value: "OPAQUE"}, {Name: "USE_SHADOW", Value: "1"}}

	valid, err := pruneCandidate(decls, defines, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("expected invalid candidate to be pruned")
	}

	_, err = pruneCandidate(decls, defines, nil, false)
	if err == nil {
		t.Fatal("expected hard failure when skipInvalid is off")
	}
}

func TestPruneCandidateValidPasses(t *testing.T) {
	decls := []keyword.Decl{
		{Name: "SURFACE", ValueKind: keyword.ValueEnum, Enumerants: []string{"OPAQUE", "CUTOUT"}},
		{Name: "USE_SHADOW", ValueKind: keyword.ValueBool, Constraint: "only_if(SURFACE==CUTOUT)"},
	}
	defines := []variant.Define{{Name: "SURFACE", Value: "CUTOUT"}, {Name: "USE_SHADOW", Value: "1"}}
	valid, err := pruneCandidate(decls, defines, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Fatal("expected valid candidate to pass")
	}
}

// fixedCompiler/fixedReflector are minimal build.Compiler/build.Reflector
// implementations for exercising the orchestrator end-to-end without a
// real GLSL compiler or SPIR-V reflector.
type fixedCompiler struct{ spirv []uint32 }

func (fixedCompiler) Init(ctx context.Context) error { return nil }
func (f fixedCompiler) Compile(ctx context.Context, req build.CompileRequest) (build.CompileResult, error) {
	return build.CompileResult{Spirv: f.spirv}, nil
}

type fixedReflector struct{}

func (fixedReflector) Reflect(ctx context.Context, spirv []uint32, opts build.ReflectOptions) (reflectnorm.Raw, error) {
	return reflectnorm.Raw{Execution: reflectnorm.ExecGraphics}, nil
}

const noKeywordSrc = "void main() {}\n"

func TestBuildDedupsIdenticalContentHashVariants(t *testing.T) {
	// Two identical shader inputs with no permutation keywords: the
	// resulting entries are content-hash keyed, so they dedup to one.
	inputs := []ShaderInput{
		{VirtualPath: "shaders/a.vert.vshader", SourceText: noKeywordSrc, Stage: vstypes.StageVertex},
		{VirtualPath: "shaders/a.vert.vshader", SourceText: noKeywordSrc, Stage: vstypes.StageVertex},
	}
	compiler := fixedCompiler{spirv: []uint32{0x07230203, 1}}
	res, err := Build(context.Background(), compiler, fixedReflector{}, inputs, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.EntryCount != 1 {
		t.Fatalf("expected dedup to 1 entry, got %d", res.EntryCount)
	}

	lib, err := vshlib.Decode(res.Bytes)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Entries) != 1 {
		t.Fatalf("decoded library has %d entries, want 1", len(lib.Entries))
	}
}

const shadowKeywordSrc = `#pragma vultra keyword permute USE_SHADOW=0
void main() {}
`

func TestBuildEnumeratesPermutationsIntoDistinctEntries(t *testing.T) {
	inputs := []ShaderInput{
		{VirtualPath: "shaders/b.frag.vshader", SourceText: shadowKeywordSrc, Stage: vstypes.StageFragment},
	}
	compiler := fixedCompiler{spirv: []uint32{0x07230203, 7}}
	res, err := Build(context.Background(), compiler, fixedReflector{}, inputs, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.EntryCount != 2 {
		t.Fatalf("expected 2 variant entries (USE_SHADOW=0/1), got %d", res.EntryCount)
	}
}
