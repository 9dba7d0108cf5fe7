// Package run implements the keyofgen tool in a testable way.
package run

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	detect "github.com/toejough/typetour/keyofgen/run/2_detect"
	generate "github.com/toejough/typetour/keyofgen/run/3_generate"
	output "github.com/toejough/typetour/keyofgen/run/4_output"
)

// FileSystem is the file access the tool needs.
type FileSystem = output.FileSystem

// PackageLoader loads the Go files of the package being generated for.
type PackageLoader interface {
	Load(dir string) ([]*dst.File, error)
}

// Run executes keyofgen. args are the process arguments (args[0] is the program name), getEnv
// reads the go generate environment, and progress is written to out. On success the generated
// key set has been written next to the struct it describes, or, with --check (or KEYOFGEN_CHECK=1
// in the environment), verified current.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, err := pkgLoader.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load package: %w", err)
	}

	st, err := detect.FindStruct(files, parsed.Type)
	if err != nil {
		return err
	}

	keyName := parsed.Name
	if keyName == "" {
		keyName = st.Name + "Key"
	}

	code, err := generate.KeySet(st, keyName)
	if err != nil {
		return err
	}

	pkgName := getEnv("GOPACKAGE")
	if pkgName == "" {
		pkgName = st.PkgName
	}

	if parsed.Check || getEnv("KEYOFGEN_CHECK") == "1" {
		return output.CheckGeneratedCode(code, keyName, pkgName, getEnv, fileSys, out)
	}

	return output.WriteGeneratedCode(code, keyName, pkgName, getEnv, fileSys, out)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Type  string `arg:"positional,required" help:"struct type to generate a key set for"`
	Name  string `arg:"--name"              help:"name of the generated key type (defaults to <Type>Key)"`
	Check bool   `arg:"--check"             help:"fail with a diff instead of writing when the generated file is stale"`
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "keyofgen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}
