package build

import (
	"context"

	"github.com/vultra-engine/shaderc/internal/cache"
	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/hashing"
	"github.com/vultra-engine/shaderc/internal/material"
	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/reflectnorm"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// Request is one (source, options) tuple to build (spec §4.8).
type Request struct {
	VirtualPath string
	SourceText  string
	Stage       vstypes.Stage
	Defines     []variant.Define
	IncludeDirs []string
	EngineSet   map[string]string

	Optimize       bool
	DebugInfo      bool
	StripDebugInfo bool

	CacheDir     string
	CacheEnabled bool
}

// Result wraps the built (or cached) binary with its provenance and the
// compiler's info log.
type Result struct {
	Binary    vstypes.ShaderBinary
	FromCache bool
	InfoLog   string
}

// Build runs the full parse->compile->reflect->synthesise->hash->cache
// pipeline for one shader variant (spec §4.8, steps 1-9).
func Build(ctx context.Context, compiler Compiler, reflector Reflector, req Request) (Result, error) {
	// 1. Parse metadata.
	meta, err := metaparse.Parse(req.SourceText)
	if err != nil {
		return Result{}, err
	}

	// 2. Compute build-input hash; check cache.
	inputHash := cache.BuildInputHash(req.SourceText, req.VirtualPath, req.Stage, req.Defines, req.IncludeDirs, meta)
	if req.CacheEnabled {
		if bin, ok := cache.Lookup(req.CacheDir, inputHash); ok {
			corelog.Debug("cache hit for %s (%016x)", req.VirtualPath, inputHash)
			return Result{Binary: bin, FromCache: true}, nil
		}
	}

	if err := compiler.Init(ctx); err != nil {
		return Result{}, vserr.Wrap(vserr.CompileError, err, "compiler initialisation failed")
	}

	// 3. Invoke the external compiler.
	compileResult, err := compiler.Compile(ctx, CompileRequest{
		VirtualPath:    req.VirtualPath,
		SourceText:     req.SourceText,
		Stage:          req.Stage,
		Defines:        req.Defines,
		IncludeDirs:    req.IncludeDirs,
		Optimize:       req.Optimize,
		DebugInfo:      req.DebugInfo,
		StripDebugInfo: req.StripDebugInfo,
	})
	if err != nil {
		return Result{}, vserr.Wrap(vserr.CompileError, err, "compiling %s", req.VirtualPath)
	}

	// 4. Reflect the produced SPIR-V.
	raw, err := reflector.Reflect(ctx, compileResult.Spirv, ReflectOptions{IncludeBlockMembers: true, IncludePushConstants: true})
	if err != nil {
		return Result{}, vserr.Wrap(vserr.ReflectError, err, "reflecting %s", req.VirtualPath)
	}
	reflection := reflectnorm.Normalize(raw)

	// 5. Populate ShaderBinary fields.
	bin := vstypes.ShaderBinary{
		Stage:       req.Stage,
		Spirv:       compileResult.Spirv,
		SpirvHash:   hashing.HashWords(compileResult.Spirv),
		ContentHash: hashing.HashString(req.SourceText),
		Reflection:  reflection,
	}

	// 6. Compute variant hash, seeded with the shader id hash so that the
	// runtime KeyBuilder reproduces it from the shader id alone.
	shaderIDHash := variant.ShaderIDHash(variant.ShaderID(req.VirtualPath))
	bin.VariantHash, err = variant.ComputeBuildHash(meta.Keywords, req.Defines, req.EngineSet, req.Stage, shaderIDHash)
	if err != nil {
		return Result{}, err
	}

	// 7. Synthesise material description.
	bin.MaterialDesc, err = material.Synthesize(reflection, meta)
	if err != nil {
		return Result{}, err
	}

	// 8. Best-effort cache write.
	if req.CacheEnabled {
		cache.Store(req.CacheDir, inputHash, bin)
	}

	// 9. Return binary and compiler log.
	return Result{Binary: bin, InfoLog: compileResult.InfoLog}, nil
}
