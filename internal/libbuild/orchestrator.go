package libbuild

import (
	"context"

	"github.com/vultra-engine/shaderc/internal/build"
	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/metaparse"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vshbin"
	"github.com/vultra-engine/shaderc/internal/vshlib"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// ShaderInput is one shader file already enumerated by an external
// directory scanner (spec §4.11: out of scope for this package).
type ShaderInput struct {
	VirtualPath string
	SourceText  string
	Stage       vstypes.Stage
	IncludeDirs []string
}

// Options controls one library build run.
type Options struct {
	EngineSet    map[string]string
	SkipInvalid  bool
	CacheDir     string
	CacheEnabled bool

	Optimize       bool
	DebugInfo      bool
	StripDebugInfo bool

	// EngineKeywordsBlob is the raw bytes of the .vkw file to embed
	// alongside the library, if any (spec §4.10).
	EngineKeywordsBlob []byte
}

// Result is one built .vshlib plus bookkeeping about what was skipped.
type Result struct {
	Bytes        []byte
	EntryCount   int
	SkippedCount int
}

// Build runs C14 end-to-end: for each shader, parses metadata, enumerates
// permutation keyword combinations, prunes by constraint, builds each
// surviving variant via C11, deduplicates by (keyHash, stage), then
// writes the sorted .vshlib.
func Build(ctx context.Context, compiler build.Compiler, reflector build.Reflector, inputs []ShaderInput, opts Options) (Result, error) {
	var entries []vshlib.Entry
	seen := map[uint64]bool{}
	skipped := 0

	for _, in := range inputs {
		meta, err := metaparse.Parse(in.SourceText)
		if err != nil {
			return Result{}, err
		}

		perm := permutationKeywords(meta.Keywords)
		candidates := enumerate(perm)

		shaderID := variant.ShaderID(in.VirtualPath)
		shaderIDHash := variant.ShaderIDHash(shaderID)

		for _, defines := range candidates {
			valid, err := pruneCandidate(meta.Keywords, defines, opts.EngineSet, opts.SkipInvalid)
			if err != nil {
				return Result{}, err
			}
			if !valid {
				skipped++
				continue
			}

			res, err := build.Build(ctx, compiler, reflector, build.Request{
				VirtualPath:    in.VirtualPath,
				SourceText:     in.SourceText,
				Stage:          in.Stage,
				Defines:        defines,
				IncludeDirs:    in.IncludeDirs,
				EngineSet:      opts.EngineSet,
				Optimize:       opts.Optimize,
				DebugInfo:      opts.DebugInfo,
				StripDebugInfo: opts.StripDebugInfo,
				CacheDir:       opts.CacheDir,
				CacheEnabled:   opts.CacheEnabled,
			})
			if err != nil {
				return Result{}, err
			}

			bin := res.Binary
			bin.ShaderIDHash = shaderIDHash
			corelog.Debug("variant %s (%s): variant=%016x fromCache=%v", shaderID, bin.Stage, bin.VariantHash, res.FromCache)

			keyHash := bin.VariantHash
			if keyHash == 0 {
				keyHash = bin.ContentHash
			}
			sig := vshlib.DedupSignature(keyHash, bin.Stage)
			if seen[sig] {
				continue
			}
			seen[sig] = true

			entries = append(entries, vshlib.Entry{
				KeyHash: keyHash,
				Stage:   bin.Stage,
				Blob:    vshbin.Encode(bin),
			})
		}
	}

	corelog.Debug("library build: %d entries, %d skipped", len(entries), skipped)

	data, err := vshlib.Encode(entries, opts.EngineKeywordsBlob)
	if err != nil {
		return Result{}, err
	}
	return Result{Bytes: data, EntryCount: len(entries), SkippedCount: skipped}, nil
}
