package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEngineSetEmptyPath(t *testing.T) {
	set, err := loadEngineSet("")
	if err != nil {
		t.Fatal(err)
	}
	if set != nil {
		t.Fatalf("expected nil set, got %+v", set)
	}
}

func TestLoadEngineSetParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.vkw")
	contents := "keyword runtime global PASS=0\nset PASS=1\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := loadEngineSet(path)
	if err != nil {
		t.Fatal(err)
	}
	if set["PASS"] != "1" {
		t.Fatalf("got %+v", set)
	}
}
