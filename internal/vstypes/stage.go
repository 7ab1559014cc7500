// Package vstypes holds the core enumerations and plain data records
// shared by every component of the pipeline: shader stage, descriptor
// kind, parameter type, blend/compare/cull state, semantic tags, and the
// reflection / material-description / shader-binary records built from
// them. It deliberately carries no parsing or serialisation logic of its
// own; those live in the components that consume these types.
package vstypes

import "fmt"

// Stage is the closed shader-stage enumeration. Its wire encoding is a
// single byte equal to its index below (spec §3).
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
	StageTask
	StageMesh
	StageRayGen
	StageRayMiss
	StageRayClosestHit
	StageRayAnyHit
	StageRayIntersection
	stageCount
)

var stageNames = [...]string{
	"vertex", "fragment", "compute", "task", "mesh",
	"ray-gen", "ray-miss", "ray-closest-hit", "ray-any-hit", "ray-intersection",
}

// stageExtensions maps the *.vshader filename extension (§6.4) to a Stage.
var stageExtensions = map[string]Stage{
	"vert":  StageVertex,
	"frag":  StageFragment,
	"comp":  StageCompute,
	"task":  StageTask,
	"mesh":  StageMesh,
	"rgen":  StageRayGen,
	"rmiss": StageRayMiss,
	"rchit": StageRayClosestHit,
	"rahit": StageRayAnyHit,
	"rint":  StageRayIntersection,
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the ten closed enumerants.
func (s Stage) Valid() bool { return s < stageCount }

// StageFromName parses a CLI/`-S` stage name (spec §6.4 names), accepting
// either the canonical name ("fragment") or the filename extension
// ("frag").
func StageFromName(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	if s, ok := stageExtensions[name]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown shader stage %q", name)
}

// StageFromExtension maps a *.vshader filename extension to its Stage, as
// used when inferring stage from filenames like "pbr.frag.vshader".
func StageFromExtension(ext string) (Stage, bool) {
	s, ok := stageExtensions[ext]
	return s, ok
}

// IsComputeLike reports whether the stage carries a local workgroup size
// (compute, task, mesh — spec §4.4).
func (s Stage) IsComputeLike() bool {
	return s == StageCompute || s == StageTask || s == StageMesh
}
