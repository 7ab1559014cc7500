package libbuild

import (
	"github.com/vultra-engine/shaderc/internal/constraint"
	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/variant"
	"github.com/vultra-engine/shaderc/internal/vserr"
)

// resolveAll resolves every declared keyword (not only the permutation
// ones) to its numeric value for one candidate define-set, so `only_if`
// constraints that reference runtime/specialization/material keywords
// still have a value to read (spec §4.11 step 4).
func resolveAll(decls []keyword.Decl, defines []variant.Define, engineSet map[string]string) (constraint.ValueContext, error) {
	ctx := constraint.ValueContext{
		Decls:  map[string]*keyword.Decl{},
		Values: map[string]int{},
		Order:  make([]string, 0, len(decls)),
	}
	for i := range decls {
		d := &decls[i]
		v, err := variant.ResolveValue(d, defines, engineSet)
		if err != nil {
			return ctx, err
		}
		ctx.Decls[d.Name] = d
		ctx.Values[d.Name] = v
		ctx.Order = append(ctx.Order, d.Name)
	}
	return ctx, nil
}

// evaluateConstraints checks every declared keyword's `only_if`
// constraint against the resolved value context, returning the first
// violated keyword's name (or "" if all pass).
func evaluateConstraints(decls []keyword.Decl, ctx constraint.ValueContext) (string, error) {
	for i := range decls {
		d := &decls[i]
		if d.Constraint == "" {
			continue
		}
		ok, err := constraint.Eval(d.Constraint, ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			return d.Name, nil
		}
	}
	return "", nil
}

// pruneCandidate resolves and constraint-checks one candidate define-set.
// valid=false with a nil error means the candidate failed a constraint
// and should be silently skipped (skipInvalid); valid=false with a
// non-nil error means skipInvalid was off and the caller must fail fast.
func pruneCandidate(decls []keyword.Decl, defines []variant.Define, engineSet map[string]string, skipInvalid bool) (bool, error) {
	ctx, err := resolveAll(decls, defines, engineSet)
	if err != nil {
		return false, err
	}
	violated, err := evaluateConstraints(decls, ctx)
	if err != nil {
		return false, err
	}
	if violated == "" {
		return true, nil
	}
	if skipInvalid {
		return false, nil
	}
	return false, vserr.New(vserr.ParseError, "keyword %q constraint violated for this variant", violated)
}
