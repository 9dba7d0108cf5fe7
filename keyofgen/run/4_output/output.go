// Package output writes generated key sets to disk, or checks that the file on disk is current.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
)

// ErrOutOfDate is returned by CheckGeneratedCode when the file on disk differs from what would be generated.
var ErrOutOfDate = errors.New("generated file is out of date")

// FileSystem is the file access output needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// CheckGeneratedCode compares the file WriteGeneratedCode would write against the one on disk.
// On a difference it prints a unified diff to out and returns ErrOutOfDate.
func CheckGeneratedCode(
	code string, keyName string, pkgName string, getEnv func(string) string, fileSys FileSystem, out io.Writer,
) error {
	filename := Filename(keyName, pkgName, getEnv)
	want := reorderDecls(code, filename, out)

	current, err := fileSys.ReadFile(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", filename, err)
	}

	if string(current) == want {
		_, _ = fmt.Fprintf(out, "%s is up to date.\n", filename)
		return nil
	}

	_, _ = fmt.Fprint(out, textdiff.Unified(filename+" (current)", filename+" (generated)", string(current), want))

	return fmt.Errorf("%w: %s", ErrOutOfDate, filename)
}

// Filename returns the name of the generated file: generated_<keyName>.go, or
// generated_<keyName>_test.go when generating for a test package or from a test file.
func Filename(keyName string, pkgName string, getEnv func(string) string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(keyName, ".go"), "_test")
	goFile := getEnv("GOFILE")

	if strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go") {
		return "generated_" + base + "_test.go"
	}

	return "generated_" + base + ".go"
}

// WriteGeneratedCode reorders the declarations in code and writes it to Filename.
func WriteGeneratedCode(
	code string, keyName string, pkgName string, getEnv func(string) string, fileSys FileSystem, out io.Writer,
) error {
	const generatedFilePermissions = 0o600

	filename := Filename(keyName, pkgName, getEnv)
	reordered := reorderDecls(code, filename, out)

	err := fileSys.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}

// reorderDecls puts declarations in project order; on failure it warns and keeps code as is.
func reorderDecls(code, filename string, out io.Writer) string {
	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)
		return code
	}

	return reordered
}
