//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Vet runs go vet across the module.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Test runs the test suite.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// All runs Vet then Test then regenerates the fixture library.
func (Check) All() error {
	mg.Deps(Check.Vet, Check.Test)
	mg.Deps(Build.Fixture)
	return nil
}
