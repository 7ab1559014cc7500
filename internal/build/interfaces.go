// Package build implements the build driver (C11): the orchestration
// step that ties metadata parsing, the external compiler and reflector,
// material synthesis, variant hashing, and the build cache into the
// single parse->compile->reflect->synthesise->hash->cache pipeline (spec
// §4.8). The external compiler and reflector are out-of-scope
// collaborators (spec §6.1, §6.2); this package only defines the
// interfaces a caller must supply.
package build

import (
	"context"

	"github.com/vultra-engine/shaderc/internal/reflectnorm"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// CompileRequest is the input to the external GLSL->SPIR-V compiler
// (spec §6.1).
type CompileRequest struct {
	VirtualPath    string
	SourceText     string
	Stage          vstypes.Stage
	Defines        []variant.Define
	IncludeDirs    []string
	Optimize       bool
	DebugInfo      bool
	StripDebugInfo bool
}

// CompileResult is the external compiler's successful output.
type CompileResult struct {
	Spirv        []uint32
	InfoLog      string
	Dependencies []string
}

// Compiler is implemented by the external GLSL->SPIR-V front end. A
// failure should return a CompileError-flavoured error carrying the info
// and debug logs (spec §6.1, §7).
type Compiler interface {
	Compile(ctx context.Context, req CompileRequest) (CompileResult, error)
	// Init performs any required one-time, process-wide setup. It must
	// be safe to call more than once (spec §5 "guaranteed-once
	// semantics"); the driver calls it idempotently before the first
	// compile.
	Init(ctx context.Context) error
}

// ReflectOptions mirrors the external reflector's input options (spec
// §6.2).
type ReflectOptions struct {
	IncludeBlockMembers  bool
	IncludePushConstants bool
}

// Reflector is implemented by the external SPIR-V reflector. Its output
// is the pre-normalisation raw shape; Normalize (C7) maps it into
// ShaderReflection.
type Reflector interface {
	Reflect(ctx context.Context, spirv []uint32, opts ReflectOptions) (reflectnorm.Raw, error)
}
