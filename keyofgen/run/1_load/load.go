// Package load parses the Go files of a package directory into DST.
package load

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// ErrNoGoFiles is returned when a directory holds no parseable Go files.
var ErrNoGoFiles = errors.New("no go files")

// PackageDST parses every .go file in dir, test files included, in name order.
// Files that fail to parse are skipped with a warning written to out; only a directory with
// nothing parseable is an error.
func PackageDST(dir string, out io.Writer) ([]*dst.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(goFiles)

	dec := decorator.NewDecorator(token.NewFileSet())
	files := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		file, err := dec.ParseFile(goFile, nil, 0)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Warning: skipping %s: %v\n", goFile, err)
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: in %s", ErrNoGoFiles, dir)
	}

	return files, nil
}
