package libbuild

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// ScanDir walks root for `*.<ext>.vshader` files (spec §6.4), inferring
// each shader's stage from the extension segment before `.vshader`, and
// returns them sorted by virtual path for deterministic build ordering.
// Files whose stage extension is unrecognised are skipped.
func ScanDir(root string) ([]ShaderInput, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".vshader") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, vserr.Wrap(vserr.IO, err, "libbuild: scanning %s", root)
	}
	sort.Strings(paths)

	inputs := make([]ShaderInput, 0, len(paths))
	for _, p := range paths {
		stage, ok := stageFromVshaderPath(p)
		if !ok {
			continue
		}
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, vserr.Wrap(vserr.IO, err, "libbuild: reading %s", p)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			rel = p
		}
		inputs = append(inputs, ShaderInput{
			VirtualPath: filepath.ToSlash(rel),
			SourceText:  string(src),
			Stage:       stage,
		})
	}
	return inputs, nil
}

// stageFromVshaderPath extracts the stage extension from a name like
// "pbr.frag.vshader" -> "frag" -> StageFragment.
func stageFromVshaderPath(p string) (vstypes.Stage, bool) {
	base := filepath.Base(p)
	base = strings.TrimSuffix(base, ".vshader")
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return 0, false
	}
	return vstypes.StageFromExtension(base[idx+1:])
}
