package main

import (
	"reflect"
	"testing"

	"github.com/vultra-engine/shaderc/internal/variant"
)

func TestParseDefinesWithAndWithoutValue(t *testing.T) {
	got := parseDefines([]string{"USE_SHADOW=1", "DEBUG"})
	want := []variant.Define{
		{Name: "USE_SHADOW", Value: "1"},
		{Name: "DEBUG", Value: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStringListAccumulates(t *testing.T) {
	var l stringList
	if err := l.Set("a"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("b"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual([]string(l), []string{"a", "b"}) {
		t.Fatalf("got %+v", l)
	}
}
