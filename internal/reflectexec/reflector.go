// Package reflectexec implements the build.Reflector collaborator (§6.2)
// by shelling out to spirv-cross --reflect and parsing its JSON reflection
// dump into the reflectnorm.Raw shape. There is no Go reflection library
// for SPIR-V in the retrieved pack, so this package parses the tool's JSON
// with the standard library encoding/json (recorded as a stdlib exception
// in DESIGN.md).
package reflectexec

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/vultra-engine/shaderc/internal/build"
	"github.com/vultra-engine/shaderc/internal/reflectnorm"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// Reflector shells out to binary (default "spirv-cross") for each Reflect
// call.
type Reflector struct {
	Binary string
}

func New(binary string) *Reflector {
	if binary == "" {
		binary = "spirv-cross"
	}
	return &Reflector{Binary: binary}
}

type reflectionJSON struct {
	EntryPoints []struct {
		Mode          string `json:"mode"`
		WorkgroupSize struct {
			X uint32 `json:"x"`
			Y uint32 `json:"y"`
			Z uint32 `json:"z"`
		} `json:"workgroup_size"`
	} `json:"entryPoints"`
	Textures      []bindingJSON `json:"textures"`
	Images        []bindingJSON `json:"images"`
	SSBOs         []blockJSON   `json:"ssbos"`
	UBOs          []blockJSON   `json:"ubos"`
	PushConstants []struct {
		Name    string       `json:"name"`
		Members []memberJSON `json:"members"`
	} `json:"push_constants"`
}

type bindingJSON struct {
	Name    string `json:"name"`
	Set     uint32 `json:"set"`
	Binding uint32 `json:"binding"`
	Count   uint32 `json:"array,omitempty"`
}

type blockJSON struct {
	Name    string       `json:"name"`
	Set     uint32       `json:"set"`
	Binding uint32       `json:"binding"`
	Size    uint32       `json:"block_size"`
	Members []memberJSON `json:"members"`
}

type memberJSON struct {
	Name    string `json:"name"`
	Offset  uint32 `json:"offset"`
	Size    uint32 `json:"size"`
	Type    string `json:"type"`
	Columns int    `json:"columns"`
	VecSize int    `json:"vecsize"`
}

func (r *Reflector) Reflect(ctx context.Context, spirv []uint32, opts build.ReflectOptions) (reflectnorm.Raw, error) {
	f, err := os.CreateTemp("", "vultrashaderc-refl-*.spv")
	if err != nil {
		return reflectnorm.Raw{}, vserr.Wrap(vserr.IO, err, "reflectexec: creating scratch file")
	}
	defer os.Remove(f.Name())
	if err := writeWords(f, spirv); err != nil {
		f.Close()
		return reflectnorm.Raw{}, err
	}
	f.Close()

	cmd := exec.CommandContext(ctx, r.Binary, "--reflect", f.Name())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return reflectnorm.Raw{}, vserr.New(vserr.ReflectError, "spirv-cross --reflect failed: %v\n%s", err, stderr.String())
	}

	var doc reflectionJSON
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		return reflectnorm.Raw{}, vserr.Wrap(vserr.ReflectError, err, "reflectexec: parsing reflection JSON")
	}

	raw := reflectnorm.Raw{Execution: reflectnorm.ExecGraphics}
	if len(doc.EntryPoints) > 0 {
		ep := doc.EntryPoints[0]
		if ep.Mode == "compute" || ep.Mode == "task" || ep.Mode == "mesh" {
			raw.Execution = reflectnorm.ExecComputeLike
			raw.LocalSizeX = ep.WorkgroupSize.X
			raw.LocalSizeY = ep.WorkgroupSize.Y
			raw.LocalSizeZ = ep.WorkgroupSize.Z
		}
	}

	for _, t := range doc.Textures {
		raw.Descriptors = append(raw.Descriptors, reflectnorm.RawDescriptor{
			Name: t.Name, Set: t.Set, Binding: t.Binding, Count: firstNonZero(t.Count, 1),
			Kind: vstypes.DescriptorSampledImage,
		})
	}
	for _, img := range doc.Images {
		raw.Descriptors = append(raw.Descriptors, reflectnorm.RawDescriptor{
			Name: img.Name, Set: img.Set, Binding: img.Binding, Count: firstNonZero(img.Count, 1),
			Kind: vstypes.DescriptorStorageImage,
		})
	}
	for _, b := range doc.SSBOs {
		raw.Blocks = append(raw.Blocks, toRawBlock(b, false))
	}
	for _, b := range doc.UBOs {
		raw.Blocks = append(raw.Blocks, toRawBlock(b, false))
	}
	if opts.IncludePushConstants {
		for _, pc := range doc.PushConstants {
			raw.Blocks = append(raw.Blocks, reflectnorm.RawBlock{
				Name:           pc.Name,
				IsPushConstant: true,
				Members:        toRawMembers(pc.Members),
			})
		}
	}
	return raw, nil
}

func toRawBlock(b blockJSON, pushConstant bool) reflectnorm.RawBlock {
	return reflectnorm.RawBlock{
		Name: b.Name, Set: b.Set, Binding: b.Binding, Size: b.Size,
		IsPushConstant: pushConstant,
		Members:        toRawMembers(b.Members),
	}
}

func toRawMembers(members []memberJSON) []reflectnorm.RawMember {
	out := make([]reflectnorm.RawMember, 0, len(members))
	for _, m := range members {
		out = append(out, reflectnorm.RawMember{
			Name: m.Name, Offset: m.Offset, Size: m.Size,
			Type: reflectnorm.RawMemberType{
				Basic:   basicFromTypeName(m.Type),
				Columns: int(firstNonZero(uint32(m.Columns), 1)),
				Rows:    int(firstNonZero(uint32(m.VecSize), 1)),
			},
		})
	}
	return out
}

func basicFromTypeName(t string) reflectnorm.RawBasicType {
	switch t {
	case "int", "int32":
		return reflectnorm.RawInt
	case "uint", "uint32":
		return reflectnorm.RawUint
	case "bool":
		return reflectnorm.RawBool
	default:
		return reflectnorm.RawFloat
	}
}

func firstNonZero(v uint32, fallback int) uint32 {
	if v == 0 {
		return uint32(fallback)
	}
	return v
}

func writeWords(f *os.File, words []uint32) error {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		buf[i*4] = byte(w)
		buf[i*4+1] = byte(w >> 8)
		buf[i*4+2] = byte(w >> 16)
		buf[i*4+3] = byte(w >> 24)
	}
	if _, err := f.Write(buf); err != nil {
		return vserr.Wrap(vserr.IO, err, "reflectexec: writing scratch SPIR-V")
	}
	return nil
}
