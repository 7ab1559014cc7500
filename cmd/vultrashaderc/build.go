package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vultra-engine/shaderc/internal/compilerexec"
	"github.com/vultra-engine/shaderc/internal/corelog"
	"github.com/vultra-engine/shaderc/internal/libbuild"
	"github.com/vultra-engine/shaderc/internal/reflectexec"
	"github.com/vultra-engine/shaderc/internal/vconfig"
	"github.com/vultra-engine/shaderc/internal/vserr"
)

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	root := fs.String("i", "", "directory root to scan for *.vshader files")
	output := fs.String("o", "", "output .vshlib path")
	keywordsFile := fs.String("keywords-file", "", "engine-keywords (.vkw) file, embedded in the library")
	skipInvalid := fs.Bool("skip-invalid", false, "skip variants whose only_if constraints fail instead of erroring")
	noCache := fs.Bool("no-cache", false, "disable the build cache")
	cacheDir := fs.String("cache", "", "build cache directory (default from vultra.toml or "+defaultCacheDir+")")
	configPath := fs.String("config", vconfig.DefaultFileName, "project config file")
	verbose := fs.Bool("verbose", false, "verbose logging")
	watch := fs.Bool("watch", false, "re-run the build sequentially on source changes")
	var includeDirs stringList
	fs.Var(&includeDirs, "I", "include directory (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	corelog.SetVerbose(*verbose)

	if *root == "" || *output == "" {
		return vserr.New(vserr.InvalidArgument, "build: -i and -o are required")
	}

	cfg, err := vconfig.Load(*configPath)
	if err != nil {
		return err
	}
	resolved := vconfig.Resolve(cfg, *cacheDir, includeDirs, *keywordsFile, *skipInvalid)
	if resolved.CacheDir == "" {
		resolved.CacheDir = defaultCacheDir
	}

	var engineKeywordsBlob []byte
	engineSet, err := loadEngineSet(resolved.EngineKeywords)
	if err != nil {
		return err
	}
	if resolved.EngineKeywords != "" {
		if engineKeywordsBlob, err = os.ReadFile(resolved.EngineKeywords); err != nil {
			return vserr.Wrap(vserr.IO, err, "reading %s", resolved.EngineKeywords)
		}
	}

	opts := libbuild.Options{
		EngineSet:          engineSet,
		SkipInvalid:        resolved.SkipInvalid,
		CacheDir:           resolved.CacheDir,
		CacheEnabled:       !*noCache,
		EngineKeywordsBlob: engineKeywordsBlob,
	}

	run := func() error {
		inputs, err := libbuild.ScanDir(*root)
		if err != nil {
			return err
		}
		for i := range inputs {
			inputs[i].IncludeDirs = resolved.IncludeDirs
		}
		res, err := libbuild.Build(newContext(), compilerexec.New(""), reflectexec.New(""), inputs, opts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*output, res.Bytes, 0o644); err != nil {
			return vserr.Wrap(vserr.IO, err, "writing %s", *output)
		}
		corelog.Info("build %s: %d entries, %d skipped", *output, res.EntryCount, res.SkippedCount)
		return nil
	}

	if err := run(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	return watchAndRebuild(*root, resolved.EngineKeywords, run)
}

// watchAndRebuild re-triggers run sequentially on any change under root
// (or to the engine-keywords file), one build at a time: the watcher
// itself introduces no concurrency into the build pipeline (spec §5), it
// only serialises re-invocations of the same synchronous call.
func watchAndRebuild(root, keywordsFile string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return vserr.Wrap(vserr.IO, err, "build --watch: creating watcher")
	}
	defer w.Close()

	if err := addRecursive(w, root); err != nil {
		return err
	}
	if keywordsFile != "" {
		if err := w.Add(filepath.Dir(keywordsFile)); err != nil {
			return vserr.Wrap(vserr.IO, err, "build --watch: watching %s", keywordsFile)
		}
	}

	corelog.Info("build --watch: watching %s for changes", root)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			corelog.Debug("build --watch: change detected (%s), rebuilding", ev.Name)
			if err := run(); err != nil {
				corelog.Error("build --watch: rebuild failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			corelog.Warn("build --watch: watcher error: %v", err)
		}
	}
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if addErr := w.Add(path); addErr != nil {
				return vserr.Wrap(vserr.IO, addErr, "build --watch: watching %s", path)
			}
		}
		return nil
	})
}
