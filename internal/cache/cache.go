package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/vshbin"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// Path returns the cache file path for a given build-input hash (spec
// §4.7: "<cacheDir>/<16-hex-of-hash>.vshbin").
func Path(cacheDir string, inputHash uint64) string {
	return filepath.Join(cacheDir, fmt.Sprintf("%016x.vshbin", inputHash))
}

// Lookup attempts a cache read. A miss (including any read/decode
// failure) is not an error: the caller falls through to a normal build
// (spec §7: "cache read failure falls through to a normal build").
func Lookup(cacheDir string, inputHash uint64) (vstypes.ShaderBinary, bool) {
	path := Path(cacheDir, inputHash)
	bin, err := vshbin.ReadFile(path)
	if err != nil {
		return vstypes.ShaderBinary{}, false
	}
	return bin, true
}

// Store attempts a best-effort cache write; failures are logged and
// swallowed (spec §7: "cache write failure is ignored").
func Store(cacheDir string, inputHash uint64, bin vstypes.ShaderBinary) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		corelog.Warn("cache: mkdir %s failed: %v", cacheDir, err)
		return
	}
	path := Path(cacheDir, inputHash)
	if err := vshbin.WriteFile(path, bin); err != nil {
		corelog.Warn("cache: write %s failed: %v", path, err)
	}
}
