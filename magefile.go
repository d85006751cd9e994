//go:build mage
// +build mage

package main

import (
	"github.com/magefile/mage/sh"
)

const binaryPath = "bin/meeting-authority"

// Build compiles the service binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", binaryPath, "./cmd/meeting-authority")
}

// Run starts the service with the process environment.
func Run() error {
	return sh.RunV("go", "run", "./cmd/meeting-authority")
}

// Test runs the whole suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sqlc regenerates the storage package from schema.sql and query.sql.
func Sqlc() error {
	return sh.RunV("sqlc", "generate")
}
