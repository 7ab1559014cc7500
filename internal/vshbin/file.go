package vshbin

import (
	"fmt"
	"os"

	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// WriteFile atomically writes a ShaderBinary to path: write to a
// temporary sibling, then rename over the target, retrying the rename
// once if it loses a race (spec §4.9 file-level write discipline).
func WriteFile(path string, bin vstypes.ShaderBinary) error {
	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	data := Encode(bin)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return vserr.Wrap(vserr.IO, err, "write temp file %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		if rmErr := os.Remove(path); rmErr == nil {
			if err = os.Rename(tmp, path); err == nil {
				return nil
			}
		}
		os.Remove(tmp)
		return vserr.Wrap(vserr.IO, err, "rename %s to %s", tmp, path)
	}
	return nil
}

// ReadFile reads and decodes a .vshbin file.
func ReadFile(path string) (vstypes.ShaderBinary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return vstypes.ShaderBinary{}, vserr.Wrap(vserr.IO, err, "read %s", path)
	}
	return Decode(data)
}
