package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/vconfig"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vshbin"
	"github.com/vultra-engine/shaderc/internal/vshlib"
)

// runPacklib concatenates already-built .vshbin files into one .vshlib,
// without recompiling anything (spec §6.4 "packlib").
func runPacklib(args []string) error {
	fs := flag.NewFlagSet("packlib", flag.ExitOnError)
	root := fs.String("i", "", "directory containing .vshbin files")
	output := fs.String("o", "", "output .vshlib path")
	keywordsFile := fs.String("keywords-file", "", "engine-keywords (.vkw) file, embedded in the library")
	configPath := fs.String("config", vconfig.DefaultFileName, "project config file")
	verbose := fs.Bool("verbose", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	corelog.SetVerbose(*verbose)

	if *root == "" || *output == "" {
		return vserr.New(vserr.InvalidArgument, "packlib: -i and -o are required")
	}

	cfg, err := vconfig.Load(*configPath)
	if err != nil {
		return err
	}
	resolved := vconfig.Resolve(cfg, "", nil, *keywordsFile, false)

	var paths []string
	err = filepath.WalkDir(*root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".vshbin" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return vserr.Wrap(vserr.IO, err, "packlib: scanning %s", *root)
	}

	var entries []vshlib.Entry
	for _, p := range paths {
		bin, err := vshbin.ReadFile(p)
		if err != nil {
			return err
		}
		keyHash := bin.VariantHash
		if keyHash == 0 {
			keyHash = bin.ContentHash
		}
		entries = append(entries, vshlib.Entry{
			KeyHash: keyHash,
			Stage:   bin.Stage,
			Blob:    vshbin.Encode(bin),
		})
	}

	var engineKeywordsBlob []byte
	if resolved.EngineKeywords != "" {
		if engineKeywordsBlob, err = os.ReadFile(resolved.EngineKeywords); err != nil {
			return vserr.Wrap(vserr.IO, err, "reading %s", resolved.EngineKeywords)
		}
	}

	data, err := vshlib.Encode(entries, engineKeywordsBlob)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return vserr.Wrap(vserr.IO, err, "writing %s", *output)
	}
	corelog.Info("packlib %s: %d entries from %s", *output, len(entries), *root)
	return nil
}
