package main

import (
	"flag"
	"os"

	"github.com/vultra-engine/shaderc/internal/build"
	"github.com/vultra-engine/shaderc/internal/compilerexec"
	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/enginekw"
	"github.com/vultra-engine/shaderc/internal/reflectexec"
	"github.com/vultra-engine/shaderc/internal/vconfig"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vshbin"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

const defaultCacheDir = ".vultra-cache"

func runCompile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	input := fs.String("i", "", "input shader source file")
	output := fs.String("o", "", "output .vshbin path")
	stageName := fs.String("S", "", "shader stage")
	keywordsFile := fs.String("keywords-file", "", "engine-keywords (.vkw) file")
	noCache := fs.Bool("no-cache", false, "disable the build cache")
	cacheDir := fs.String("cache", "", "build cache directory (default from vultra.toml or "+defaultCacheDir+")")
	configPath := fs.String("config", vconfig.DefaultFileName, "project config file")
	verbose := fs.Bool("verbose", false, "verbose logging")
	var includeDirs, defines stringList
	fs.Var(&includeDirs, "I", "include directory (repeatable)")
	fs.Var(&defines, "D", "preprocessor define NAME[=VAL] (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	corelog.SetVerbose(*verbose)

	if *input == "" || *output == "" || *stageName == "" {
		return vserr.New(vserr.InvalidArgument, "compile: -i, -o and -S are required")
	}
	stage, err := vstypes.StageFromName(*stageName)
	if err != nil {
		return vserr.Wrap(vserr.InvalidArgument, err, "compile")
	}

	cfg, err := vconfig.Load(*configPath)
	if err != nil {
		return err
	}
	resolved := vconfig.Resolve(cfg, *cacheDir, includeDirs, *keywordsFile, false)
	if resolved.CacheDir == "" {
		resolved.CacheDir = defaultCacheDir
	}

	src, err := os.ReadFile(*input)
	if err != nil {
		return vserr.Wrap(vserr.IO, err, "compile: reading %s", *input)
	}

	engineSet, err := loadEngineSet(resolved.EngineKeywords)
	if err != nil {
		return err
	}

	req := build.Request{
		VirtualPath:  *input,
		SourceText:   string(src),
		Stage:        stage,
		Defines:      parseDefines(defines),
		IncludeDirs:  resolved.IncludeDirs,
		EngineSet:    engineSet,
		CacheDir:     resolved.CacheDir,
		CacheEnabled: !*noCache,
	}

	res, err := build.Build(newContext(), compilerexec.New(""), reflectexec.New(""), req)
	if err != nil {
		return err
	}
	corelog.Info("compiled %s (%s): variant=%x fromCache=%v", *input, stage, res.Binary.VariantHash, res.FromCache)

	if err := vshbin.WriteFile(*output, res.Binary); err != nil {
		return err
	}
	return nil
}

func loadEngineSet(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vserr.Wrap(vserr.IO, err, "reading engine-keywords file %s", path)
	}
	f, err := enginekw.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return f.Set, nil
}
