// Package vconfig loads the optional vultra.toml project file: quality of
// life defaults for the CLI (§6.4) so a project doesn't need to repeat
// -I/--cache/--keywords-file on every invocation. CLI flags always win over
// file values; this package only supplies what a flag left unset.
package vconfig

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/vultra-engine/shaderc/internal/vserr"
)

// DefaultFileName is the project config file name looked up in the
// current directory when no explicit path is given.
const DefaultFileName = "vultra.toml"

// Config is the subset of vultrashaderc's flags that make sense as
// project-wide defaults.
type Config struct {
	CacheDir       string   `toml:"cache_dir"`
	IncludeDirs    []string `toml:"include_dirs"`
	EngineKeywords string   `toml:"engine_keywords"`
	SkipInvalid    bool     `toml:"skip_invalid"`
}

// Load reads and parses path. A missing file is not an error: it returns
// a zero Config, so callers can unconditionally call Load and fall back
// to flag/built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, vserr.Wrap(vserr.IO, err, "vconfig: reading %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, vserr.Wrap(vserr.ParseError, err, "vconfig: parsing %s", path)
	}
	return cfg, nil
}

// Resolved is the result of Resolve, which overlays file defaults
// underneath already-parsed flag values: any flagCacheDir/flagKeywords
// left empty, and an empty flagIncludeDirs, are filled in from the file.
// skipInvalid is only taken from the file when the flag was left at its
// zero value and the file explicitly sets it.
type Resolved struct {
	CacheDir       string
	IncludeDirs    []string
	EngineKeywords string
	SkipInvalid    bool
}

// Resolve combines a loaded Config with CLI-supplied overrides, preferring
// the CLI value whenever it is non-empty/non-nil/true.
func Resolve(cfg Config, flagCacheDir string, flagIncludeDirs []string, flagEngineKeywords string, flagSkipInvalid bool) Resolved {
	r := Resolved{
		CacheDir:       cfg.CacheDir,
		IncludeDirs:    cfg.IncludeDirs,
		EngineKeywords: cfg.EngineKeywords,
		SkipInvalid:    cfg.SkipInvalid,
	}
	if flagCacheDir != "" {
		r.CacheDir = flagCacheDir
	}
	if len(flagIncludeDirs) > 0 {
		r.IncludeDirs = flagIncludeDirs
	}
	if flagEngineKeywords != "" {
		r.EngineKeywords = flagEngineKeywords
	}
	if flagSkipInvalid {
		r.SkipInvalid = true
	}
	return r
}
