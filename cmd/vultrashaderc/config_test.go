package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vultra-engine/shaderc/internal/vshlib"
)

func TestRunPacklibReadsEngineKeywordsFromConfigFile(t *testing.T) {
	dir := t.TempDir()

	kwPath := filepath.Join(dir, "engine.vkw")
	if err := os.WriteFile(kwPath, []byte("keyword runtime global PASS=0\nset PASS=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "vultra.toml")
	cfgContents := "engine_keywords = \"" + kwPath + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContents), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.vshlib")
	args := []string{"-i", dir, "-o", outPath, "-config", cfgPath}
	if err := runPacklib(args); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	lib, err := vshlib.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.EngineKeywords) == 0 {
		t.Fatal("expected engine-keywords blob from vultra.toml to be embedded, got none")
	}
}
