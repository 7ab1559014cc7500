// Package compilerexec implements the build.Compiler collaborator (§6.1)
// by shelling out to a real glslc binary, the same way the teacher's
// magefiles/utils.go drove glslc for its shader build step. The driver
// package never couples to a process; this is the one concrete binding.
package compilerexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/vultra-engine/shaderc/internal/build"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

var stageShaderStage = map[vstypes.Stage]string{
	vstypes.StageVertex:          "vertex",
	vstypes.StageFragment:        "fragment",
	vstypes.StageCompute:         "compute",
	vstypes.StageTask:            "task",
	vstypes.StageMesh:            "mesh",
	vstypes.StageRayGen:          "rgen",
	vstypes.StageRayMiss:         "rmiss",
	vstypes.StageRayClosestHit:   "rchit",
	vstypes.StageRayAnyHit:       "rahit",
	vstypes.StageRayIntersection: "rint",
}

// Compiler shells out to binary (default "glslc") for each Compile call.
// Init is a no-op: glslc is a stateless one-shot process, so there is no
// process-wide handle to set up once per spec §5.
type Compiler struct {
	Binary string
}

func New(binary string) *Compiler {
	if binary == "" {
		binary = "glslc"
	}
	return &Compiler{Binary: binary}
}

func (c *Compiler) Init(ctx context.Context) error { return nil }

func (c *Compiler) Compile(ctx context.Context, req build.CompileRequest) (build.CompileResult, error) {
	stageName, ok := stageShaderStage[req.Stage]
	if !ok {
		return build.CompileResult{}, vserr.New(vserr.InvalidArgument, "compilerexec: unknown stage %v", req.Stage)
	}

	dir, err := os.MkdirTemp("", "vultrashaderc-")
	if err != nil {
		return build.CompileResult{}, vserr.Wrap(vserr.IO, err, "compilerexec: creating scratch dir")
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "source."+extForStage(req.Stage))
	if err := os.WriteFile(srcPath, []byte(preamble(req)+req.SourceText), 0o644); err != nil {
		return build.CompileResult{}, vserr.Wrap(vserr.IO, err, "compilerexec: writing scratch source")
	}
	outPath := filepath.Join(dir, "out.spv")

	args := []string{
		"-fshader-stage=" + stageName,
		"-fauto-map-locations",
		"-g",
	}
	for _, d := range sortedIncludeDirs(req.IncludeDirs) {
		args = append(args, "-I", d)
	}
	if req.Optimize {
		args = append(args, "-O")
	} else {
		args = append(args, "-O0")
	}
	args = append(args, srcPath, "-o", outPath)

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return build.CompileResult{}, vserr.New(vserr.CompileError, "glslc failed: %v\n%s\n%s", err, stdout.String(), stderr.String())
	}

	spirvBytes, err := os.ReadFile(outPath)
	if err != nil {
		return build.CompileResult{}, vserr.Wrap(vserr.IO, err, "compilerexec: reading compiled SPIR-V")
	}
	words, err := bytesToWords(spirvBytes)
	if err != nil {
		return build.CompileResult{}, err
	}

	return build.CompileResult{
		Spirv:   words,
		InfoLog: stdout.String() + stderr.String(),
	}, nil
}

// preamble emits the `#define NAME [VALUE]` lines the driver is required
// to prepend, in declaration order (spec §6.1).
func preamble(req build.CompileRequest) string {
	var buf bytes.Buffer
	buf.WriteString("#version 450\n")
	for _, d := range req.Defines {
		if d.Value == "" {
			fmt.Fprintf(&buf, "#define %s\n", d.Name)
		} else {
			fmt.Fprintf(&buf, "#define %s %s\n", d.Name, d.Value)
		}
	}
	return buf.String()
}

func sortedIncludeDirs(dirs []string) []string {
	out := append([]string(nil), dirs...)
	sort.Strings(out)
	return out
}

func extForStage(s vstypes.Stage) string {
	switch s {
	case vstypes.StageVertex:
		return "vert"
	case vstypes.StageFragment:
		return "frag"
	case vstypes.StageCompute:
		return "comp"
	case vstypes.StageTask:
		return "task"
	case vstypes.StageMesh:
		return "mesh"
	case vstypes.StageRayGen:
		return "rgen"
	case vstypes.StageRayMiss:
		return "rmiss"
	case vstypes.StageRayClosestHit:
		return "rchit"
	case vstypes.StageRayAnyHit:
		return "rahit"
	case vstypes.StageRayIntersection:
		return "rint"
	default:
		return "glsl"
	}
}

func bytesToWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, vserr.New(vserr.CompileError, "compilerexec: SPIR-V output size %d not a multiple of 4", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words, nil
}
