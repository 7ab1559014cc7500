// Package variant implements the variant-hash computer (C9) and the
// runtime variant-key builder (C15): both produce the same 64-bit hash
// over (shader/source id, stage, permutation keyword assignments), one at
// build time and one at runtime, by construction sharing the same
// serialisation code path (serialize.go).
package variant

import (
	"strconv"

	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vserr"
)

// Define is one `-D NAME[=VALUE]` compile-time define (spec §4.6, §6.1).
type Define struct {
	Name  string
	Value string
}

// ResolveValue resolves one declared keyword's numeric value using the
// spec §4.6 precedence, highest first: an exact-name `-D` define, then
// the engine-keywords `set` map (only if the keyword's scope is global),
// then the declared default.
func ResolveValue(d *keyword.Decl, defines []Define, engineSet map[string]string) (int, error) {
	for _, def := range defines {
		if def.Name == d.Name {
			return parseValue(d, def.Value)
		}
	}
	if d.Scope == keyword.ScopeGlobal {
		if raw, ok := engineSet[d.Name]; ok {
			return parseValue(d, raw)
		}
	}
	return d.Default, nil
}

// parseValue parses a raw textual value per the keyword's value-kind:
// bool keywords require "0" or "1"; enum keywords accept either the
// enumerant name or its numeric index in range (spec §8 boundary
// behaviours: out-of-range numeric index is a ParseError).
func parseValue(d *keyword.Decl, raw string) (int, error) {
	switch d.ValueKind {
	case keyword.ValueBool:
		switch raw {
		case "0":
			return 0, nil
		case "1":
			return 1, nil
		default:
			return 0, vserr.New(vserr.ParseError, "keyword %q: bool value must be 0 or 1, got %q", d.Name, raw)
		}
	case keyword.ValueEnum:
		if idx, err := strconv.Atoi(raw); err == nil {
			if idx < 0 || idx >= len(d.Enumerants) {
				return 0, vserr.New(vserr.ParseError, "keyword %q: index %d out of range [0,%d)", d.Name, idx, len(d.Enumerants))
			}
			return idx, nil
		}
		if idx := d.EnumerantIndex(raw); idx >= 0 {
			return idx, nil
		}
		return 0, vserr.New(vserr.ParseError, "keyword %q: unknown enumerant %q", d.Name, raw)
	default:
		return 0, vserr.New(vserr.ParseError, "keyword %q: unknown value-kind", d.Name)
	}
}
