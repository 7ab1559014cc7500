package keyword

import (
	"strconv"
	"strings"

	"github.com/vultra-engine/shaderc/internal/vserr"
)

// ParseDirective parses the token stream following `keyword` in either
// the `#pragma vultra keyword ...` directive (C4) or the engine-keywords
// file (C5) — the two grammars are identical (spec §4.2), so both
// components call this one parser.
//
// Expected shape: <dispatch> [<scope>] <NAME>[=<default-or-enumerants>]
// with an optional trailing `only_if(<expr>)` constraint, which may appear
// either as the packed tail of the assignment token or as its own
// trailing attribute token (spec §9 open question (b): accept both).
func ParseDirective(tokens []string, line int) (Decl, error) {
	if len(tokens) == 0 {
		return Decl{}, vserr.AtLine(line, "keyword directive: missing dispatch token")
	}

	dispatch, ok := DispatchFromToken(tokens[0])
	if !ok {
		return Decl{}, vserr.AtLine(line, "keyword directive: unknown dispatch %q", tokens[0])
	}
	rest := tokens[1:]

	scope := ScopeShaderLocal
	if len(rest) > 0 {
		if s, ok := ScopeFromToken(rest[0]); ok {
			scope = s
			rest = rest[1:]
		}
	}

	if len(rest) == 0 {
		return Decl{}, vserr.AtLine(line, "keyword directive: missing name")
	}

	// The assignment token and an optional trailing only_if(...) token.
	assignTok := rest[0]
	constraintTok := ""
	if len(rest) > 1 {
		last := rest[len(rest)-1]
		if strings.HasPrefix(last, "only_if(") && strings.HasSuffix(last, ")") {
			constraintTok = last
		}
	}

	name, rhs, hasRHS := strings.Cut(assignTok, "=")
	if name == "" {
		return Decl{}, vserr.AtLine(line, "keyword directive: empty name")
	}

	// The assignment token itself may carry a packed only_if(...) suffix
	// when the RHS ends with it, e.g. NAME=A|B only_if(...) collapsed into
	// one token by some emitters; accept that too (spec §9 open question).
	if hasRHS && constraintTok == "" {
		if idx := strings.Index(rhs, "only_if("); idx >= 0 && strings.HasSuffix(rhs, ")") {
			constraintTok = rhs[idx:]
			rhs = rhs[:idx]
		}
	}

	decl := Decl{
		Name:       name,
		Dispatch:   dispatch,
		Scope:      scope,
		Constraint: unwrapOnlyIf(constraintTok),
	}

	if !hasRHS {
		return Decl{}, vserr.AtLine(line, "keyword directive: %q missing default/enumerants", name)
	}

	if rhs == "0" || rhs == "1" {
		decl.ValueKind = ValueBool
		decl.Default, _ = strconv.Atoi(rhs)
		return decl, nil
	}

	decl.ValueKind = ValueEnum
	decl.Enumerants = strings.Split(rhs, "|")
	for _, e := range decl.Enumerants {
		if e == "" {
			return Decl{}, vserr.AtLine(line, "keyword directive: %q has an empty enumerant", name)
		}
	}
	decl.Default = 0
	return decl, nil
}

// unwrapOnlyIf strips a surrounding `only_if(...)` wrapper if present,
// leaving the bare expression either way (spec §4.3: the evaluator
// accepts either wrapped or unwrapped forms, so storing it unwrapped lets
// both C4 and C5 feed the same normalised string into C6).
func unwrapOnlyIf(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "only_if(") && strings.HasSuffix(s, ")") {
		return s[len("only_if(") : len(s)-1]
	}
	return s
}
