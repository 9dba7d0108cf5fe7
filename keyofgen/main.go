// keyofgen generates the key set of a Go struct: a string type naming each of its fields, plus
// typed accessors for them. It is Go's answer to TypeScript's keyof.
//
// Add `//go:generate go run github.com/toejough/typetour/keyofgen <Type>` next to a struct
// declaration. The key type is named <Type>Key unless `--name <KeyName>` is given, and is written
// to generated_<KeyName>.go in the same package. `--check` verifies the file instead of writing it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dave/dst"
	"github.com/toejough/typetour/keyofgen/run"
	load "github.com/toejough/typetour/keyofgen/run/1_load"
)

func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{out: os.Stdout}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader by parsing the directory's files directly.
type realPackageLoader struct {
	out io.Writer
}

// Load parses every Go file in dir.
func (pl *realPackageLoader) Load(dir string) ([]*dst.File, error) {
	files, err := load.PackageDST(dir, pl.out)
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}

	return files, nil
}
