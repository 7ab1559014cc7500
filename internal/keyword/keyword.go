// Package keyword holds the keyword declaration record (C3): the shape
// shared by both the `#pragma vultra keyword` directive (C4) and the
// engine-keywords file (C5).
package keyword

// Dispatch controls when a keyword's value is resolved.
type Dispatch uint8

const (
	DispatchPermutation Dispatch = iota
	DispatchRuntime
	DispatchSpecialization
)

func (d Dispatch) String() string {
	switch d {
	case DispatchPermutation:
		return "permutation"
	case DispatchRuntime:
		return "runtime"
	case DispatchSpecialization:
		return "specialization"
	default:
		return "unknown"
	}
}

// DispatchFromToken parses the directive's dispatch token: `permute`,
// `runtime`, or `special` (spec §4.1).
func DispatchFromToken(tok string) (Dispatch, bool) {
	switch tok {
	case "permute":
		return DispatchPermutation, true
	case "runtime":
		return DispatchRuntime, true
	case "special":
		return DispatchSpecialization, true
	default:
		return 0, false
	}
}

// Scope controls a keyword's visibility/update frequency.
type Scope uint8

const (
	ScopeShaderLocal Scope = iota
	ScopeGlobal
	ScopeMaterial
	ScopePass
)

func (s Scope) String() string {
	switch s {
	case ScopeShaderLocal:
		return "shader-local"
	case ScopeGlobal:
		return "global"
	case ScopeMaterial:
		return "material"
	case ScopePass:
		return "pass"
	default:
		return "unknown"
	}
}

// ScopeFromToken parses an optional scope token. "shader-local" is the
// default when no token is present (spec §4.1).
func ScopeFromToken(tok string) (Scope, bool) {
	switch tok {
	case "shader-local":
		return ScopeShaderLocal, true
	case "global":
		return ScopeGlobal, true
	case "material":
		return ScopeMaterial, true
	case "pass":
		return ScopePass, true
	default:
		return 0, false
	}
}

// ValueKind is bool (0/1) or enum (ordered enumerant list).
type ValueKind uint8

const (
	ValueBool ValueKind = iota
	ValueEnum
)

// Decl is one declared keyword: a bool with a 0/1 default, or an enum
// with an ordered enumerant list and a default index into it. Constraint
// is the raw, possibly-empty `only_if(...)` expression text (evaluated by
// the constraint package, not here).
type Decl struct {
	Name       string
	Dispatch   Dispatch
	Scope      Scope
	ValueKind  ValueKind
	Default    int
	Enumerants []string
	Constraint string
}

// EnumerantIndex returns the index of name within Enumerants, or -1.
func (d *Decl) EnumerantIndex(name string) int {
	for i, e := range d.Enumerants {
		if e == name {
			return i
		}
	}
	return -1
}

// IsPermutation reports whether d participates in build-time variant
// enumeration (spec §4.6, §4.11: permutation and specialization keywords
// are tracked the same way for value resolution purposes, but only
// permutation keywords are enumerated into the Cartesian product — see
// libbuild).
func (d *Decl) IsPermutation() bool { return d.Dispatch == DispatchPermutation }
