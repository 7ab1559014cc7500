package keyword

import (
	"strings"
	"testing"
)

func TestParseDirectiveBool(t *testing.T) {
	d, err := ParseDirective(strings.Fields("permute USE_SHADOW=0"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Dispatch != DispatchPermutation || d.ValueKind != ValueBool || d.Default != 0 {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDirectiveEnumWithScope(t *testing.T) {
	d, err := ParseDirective(strings.Fields("permute global PASS=A|B|C"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Scope != ScopeGlobal || d.ValueKind != ValueEnum || len(d.Enumerants) != 3 {
		t.Fatalf("got %+v", d)
	}
	if d.EnumerantIndex("B") != 1 {
		t.Fatalf("expected B at index 1, got %d", d.EnumerantIndex("B"))
	}
}

func TestParseDirectiveConstraintTrailingToken(t *testing.T) {
	d, err := ParseDirective(strings.Fields("permute SURFACE=OPAQUE|CUTOUT only_if(USE_SHADOW)"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Constraint != "USE_SHADOW" {
		t.Fatalf("got constraint %q", d.Constraint)
	}
}

func TestParseDirectivePackedConstraint(t *testing.T) {
	d, err := ParseDirective(strings.Fields("permute SURFACE=OPAQUE|CUTOUTonly_if(USE_SHADOW)"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.Constraint != "USE_SHADOW" {
		t.Fatalf("got constraint %q", d.Constraint)
	}
	if len(d.Enumerants) != 2 || d.Enumerants[1] != "CUTOUT" {
		t.Fatalf("got enumerants %v", d.Enumerants)
	}
}

func TestParseDirectiveUnknownDispatch(t *testing.T) {
	_, err := ParseDirective(strings.Fields("bogus NAME=0"), 3)
	if err == nil {
		t.Fatal("expected error for unknown dispatch")
	}
}

func TestParseDirectiveEmptyEnumerant(t *testing.T) {
	_, err := ParseDirective(strings.Fields("permute NAME=A||B"), 1)
	if err == nil {
		t.Fatal("expected error for empty enumerant")
	}
}
