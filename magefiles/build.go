//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// CLI builds the vultrashaderc binary.
func (Build) CLI() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/vultrashaderc", "./cmd/vultrashaderc"), withStream()); err != nil {
		return err
	}
	return nil
}

// Fixture regenerates the testdata/fixtures/testlib.vshlib fixture from the
// shaders under testdata/shaders. No test in the repository reads it.
func (Build) Fixture() error {
	mg.Deps(Build.CLI)
	if _, err := executeCmd("./bin/vultrashaderc",
		withArgs("build", "-i", "testdata/shaders", "-o", "testdata/fixtures/testlib.vshlib"),
		withStream()); err != nil {
		return err
	}
	return nil
}
