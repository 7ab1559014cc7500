package vconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Fatalf("expected zero Config, got %+v", cfg)
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vultra.toml")
	writeFile(t, path, `
cache_dir = ".vultra-cache"
include_dirs = ["shaders/include", "third_party/shaders"]
engine_keywords = "engine.vkw"
skip_invalid = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		CacheDir:       ".vultra-cache",
		IncludeDirs:    []string{"shaders/include", "third_party/shaders"},
		EngineKeywords: "engine.vkw",
		SkipInvalid:    true,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vultra.toml")
	writeFile(t, path, "cache_dir = [unterminated")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResolvePrefersFlagsOverFile(t *testing.T) {
	cfg := Config{
		CacheDir:       ".file-cache",
		IncludeDirs:    []string{"file/include"},
		EngineKeywords: "file.vkw",
		SkipInvalid:    false,
	}

	r := Resolve(cfg, ".flag-cache", nil, "", true)
	want := Resolved{
		CacheDir:       ".flag-cache",
		IncludeDirs:    []string{"file/include"},
		EngineKeywords: "file.vkw",
		SkipInvalid:    true,
	}
	if !reflect.DeepEqual(r, want) {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestResolveFlagIncludeDirsOverrideFile(t *testing.T) {
	cfg := Config{IncludeDirs: []string{"file/include"}}
	r := Resolve(cfg, "", []string{"flag/include"}, "", false)
	if !reflect.DeepEqual(r.IncludeDirs, []string{"flag/include"}) {
		t.Fatalf("got %+v", r.IncludeDirs)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
