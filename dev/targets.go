//go:build targ

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/file"
	"github.com/toejough/targ/sh"
)

// Build builds the local keyofgen binary.
func Build() error {
	fmt.Println("Building keyofgen...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/keyofgen", "./keyofgen")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,          // clean up the module dependencies
		FixImports,    // fix imports before anything reads them
		Modernize,     // no use doing anything else to old code patterns
		CheckCoverage, // does our code work?
		ReorderDecls,  // linter will yell about declaration order if not correct
		Lint,
	)
}

// CheckCoverage checks that function coverage meets the minimum threshold.
func CheckCoverage() error {
	fmt.Println("Checking coverage...")

	if err := targ.Deps(Test); err != nil {
		return err
	}

	out, err := output("go", "tool", "cover", "-func=coverage.out")
	if err != nil {
		return err
	}

	linesAndCoverage := []lineAndCoverage{}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "main.go") || strings.Contains(line, "generated_") ||
			strings.Contains(line, "total:") {
			continue
		}

		percent, err := strconv.ParseFloat(percentPattern.FindString(line), 64)
		if err != nil {
			return err
		}

		linesAndCoverage = append(linesAndCoverage, lineAndCoverage{line, percent})
	}

	if len(linesAndCoverage) == 0 {
		return errors.New("no coverage data found")
	}

	slices.SortStableFunc(linesAndCoverage, func(a, b lineAndCoverage) int {
		switch {
		case a.coverage < b.coverage:
			return -1
		case a.coverage > b.coverage:
			return 1
		default:
			return 0
		}
	})

	for _, lc := range linesAndCoverage {
		fmt.Println(lc.line)
	}

	const minCoverage = 80.0

	if lowest := linesAndCoverage[0]; lowest.coverage < minCoverage {
		return fmt.Errorf("function coverage was less than the limit of %.1f:\n  %s", minCoverage, lowest.line)
	}

	return nil
}

// CheckForFail runs all checks on the code for determining whether any fail.
func CheckForFail() error {
	fmt.Println("Checking...")

	// Checks from fastest to slowest
	return targ.Deps(
		ReorderDeclsCheck,
		GenerateCheck,
		LintForFail,
		TestForFail,
		CheckCoverage,
	)
}

// Clean cleans up the dev env.
func Clean() {
	fmt.Println("Cleaning...")
	os.Remove("coverage.out")
	os.RemoveAll("bin")
}

// FixImports fixes all imports in the codebase.
func FixImports() error {
	fmt.Println("Fixing imports...")
	return sh.Run("goimports", "-w", ".")
}

// Generate runs go generate on all packages.
func Generate() error {
	fmt.Println("Generating...")
	return sh.Run("go", "generate", "./...")
}

// GenerateCheck verifies every generated key set is current, without writing.
func GenerateCheck() error {
	fmt.Println("Checking generated files...")

	cmd := exec.Command("go", "generate", "./...")
	cmd.Env = append(os.Environ(), "KEYOFGEN_CHECK=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Lint lints the codebase.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "-c", "dev/golangci.toml")
}

// LintForFail lints the codebase purely to find out whether anything fails.
func LintForFail() error {
	fmt.Println("Linting to check for overall pass/fail...")

	return sh.Run(
		"golangci-lint", "run",
		"-c", "dev/golangci.toml",
		"--fix=false",
		"--max-issues-per-linter=1",
		"--max-same-issues=1",
	)
}

// Modernize updates the codebase to use modern Go patterns.
func Modernize() error {
	fmt.Println("Modernizing codebase...")

	return sh.Run("go", "run", "golang.org/x/tools/go/analysis/passes/modernize/cmd/modernize@latest",
		"-fix", "./...")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run("go", "test", "-timeout=6000s", "-tags=mutation", "-ooze.v", "./...", "-run=TestMutation")
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	reorderedCount := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)
			continue
		}

		if string(content) == reordered {
			continue
		}

		err = os.WriteFile(path, []byte(reordered), 0o600)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("  Reordered: %s\n", path)
		reorderedCount++
	}

	fmt.Printf("Reordered %d file(s).\n", reorderedCount)

	return nil
}

// ReorderDeclsCheck checks which files need reordering without modifying them.
func ReorderDeclsCheck() error {
	fmt.Println("Checking declaration order...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	outOfOrderFiles := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)
			continue
		}

		if string(content) == reordered {
			continue
		}

		outOfOrderFiles++

		fmt.Printf("\n%s\n", textdiff.Unified(path+" (current)", path+" (reordered)", string(content), reordered))
	}

	if outOfOrderFiles > 0 {
		return fmt.Errorf("%d file(s) need reordering; run 'targ reorder-decls' to fix", outOfOrderFiles)
	}

	fmt.Printf("All %d files are correctly ordered.\n", len(files))

	return nil
}

// Test runs the unit tests with coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	// Use -count=1 to disable caching so coverage is regenerated
	return sh.Run(
		"go",
		"test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./...",
		"./...",
	)
}

// TestForFail runs the unit tests purely to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for overall pass/fail...")
	return sh.Run("go", "test", "-timeout=30s", "./...", "-failfast")
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// Watch re-runs Check whenever files change.
func Watch(ctx context.Context) error {
	fmt.Println("Watching...")

	return file.Watch(ctx, []string{"**/*.go", "**/*.toml"}, file.WatchOptions{}, func(changes file.ChangeSet) error {
		if !hasRelevantChanges(changes) {
			return nil
		}

		fmt.Println("Change detected...")

		targ.ResetDeps() // Clear execution cache so targets run again

		if err := Check(); err != nil {
			fmt.Println("continuing to watch after check failure (see errors above)")
		} else {
			fmt.Println("continuing to watch after all checks passed!")
		}

		return nil // Don't stop watching on error
	})
}

type lineAndCoverage struct {
	line     string
	coverage float64
}

// hasRelevantChanges returns true if the changeset contains files we care about.
func hasRelevantChanges(changes file.ChangeSet) bool {
	allFiles := slices.Concat(changes.Added, changes.Removed, changes.Modified)

	for _, f := range allFiles {
		if strings.Contains(f, "generated_") || strings.HasSuffix(f, "coverage.out") {
			continue
		}

		return true
	}

	return false
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 200)

	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.Contains(string(buf[:n]), "Code generated"), nil
}

// output runs a command and captures stdout only (stderr goes to os.Stderr).
func output(command string, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	return strings.TrimSuffix(buf.String(), "\n"), err
}

// sourceFiles lists the hand-written Go files in the repo.
func sourceFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("unable to walk %s: %w", path, err)
		}

		if entry.IsDir() {
			if path != "." && (strings.HasPrefix(entry.Name(), ".") || strings.HasPrefix(entry.Name(), "_") ||
				entry.Name() == "vendor") {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || strings.Contains(path, "generated_") {
			return nil
		}

		generated, err := isGeneratedFile(path)
		if err != nil {
			return err
		}

		if !generated {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find Go files: %w", err)
	}

	return files, nil
}

// unexported variables.
var (
	percentPattern = regexp.MustCompile(`\d+\.\d`)
)
