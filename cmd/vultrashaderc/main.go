// Command vultrashaderc is the CLI surface for the shader build pipeline
// (spec §6.4): compile one shader variant, build a whole directory into a
// .vshlib, or pack already-built .vshbin files into one.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compile":
		err = runCompile(os.Args[2:])
	case "build":
		err = runBuild(os.Args[2:])
	case "packlib":
		err = runPacklib(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "vultrashaderc: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "vultrashaderc: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: vultrashaderc <command> [flags]

commands:
  compile   compile one shader, one variant, to a .vshbin
  build     scan a directory root and produce a .vshlib
  packlib   concatenate pre-built .vshbin files into a .vshlib`)
}

// newContext returns a background context; the pipeline has no long-lived
// cancellation source (spec §5: single-threaded, one build at a time).
func newContext() context.Context { return context.Background() }
