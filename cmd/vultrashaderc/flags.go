package main

import (
	"strings"

	"github.com/vultra-engine/shaderc/internal/variant"
)

// stringList accumulates repeated -I/-D flag occurrences.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// parseDefines turns "-D NAME=VAL" / "-D NAME" tokens into variant.Defines,
// in the order they were given on the command line (spec §6.1: defines
// are emitted in declared order).
func parseDefines(raw []string) []variant.Define {
	defines := make([]variant.Define, 0, len(raw))
	for _, r := range raw {
		name, value, _ := strings.Cut(r, "=")
		defines = append(defines, variant.Define{Name: name, Value: value})
	}
	return defines
}
