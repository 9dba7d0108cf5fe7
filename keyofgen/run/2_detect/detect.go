// Package detect finds a struct declaration in parsed Go files and describes its fields.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"regexp"
	"strconv"
	"strings"

	"github.com/dave/dst"
	astutil "github.com/toejough/typetour/keyofgen/run/0_util"
)

// Exported variables.
var (
	ErrAmbiguousDotImport = errors.New("more than one dot import could declare a field type")
	ErrGenericStruct      = errors.New("generic structs are not supported")
	ErrMissingImport      = errors.New("no import for qualifier")
	ErrNoFields           = errors.New("struct has no exported fields")
	ErrNotStruct          = errors.New("type is not a struct")
	ErrTypeNotFound       = errors.New("type not found")
)

// Field is one named field of a struct, in declaration order.
type Field struct {
	Name string
	Type string
}

// Import is an import the generated code needs in order to spell a field type.
type Import struct {
	Name string // explicit import name, empty when the path's own name is used
	Path string
}

// Struct describes a struct declaration.
type Struct struct {
	PkgName string
	Name    string
	Fields  []Field
	Imports []Import
}

// FindStruct locates the type declaration named typeName and collects its exported fields.
// Multi-name fields expand to one Field per name; embedded fields take their type's name.
func FindStruct(files []*dst.File, typeName string) (Struct, error) {
	for _, file := range files {
		spec := findTypeSpec(file, typeName)
		if spec == nil {
			continue
		}

		structType, ok := spec.Type.(*dst.StructType)
		if !ok {
			return Struct{}, fmt.Errorf("%w: %s is %s", ErrNotStruct, typeName, astutil.TypeString(spec.Type))
		}

		if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
			return Struct{}, fmt.Errorf("%w: %s", ErrGenericStruct, typeName)
		}

		fields, refs := collectFields(structType)
		if len(fields) == 0 {
			return Struct{}, fmt.Errorf("%w: %s", ErrNoFields, typeName)
		}

		imports, err := resolveImports(file, refs.qualifiers)
		if err != nil {
			return Struct{}, fmt.Errorf("%s: %w", typeName, err)
		}

		dotImports, err := resolveDotImports(files, file, refs.unqualified)
		if err != nil {
			return Struct{}, fmt.Errorf("%s: %w", typeName, err)
		}

		imports = append(imports, dotImports...)

		return Struct{
			PkgName: file.Name.Name,
			Name:    typeName,
			Fields:  fields,
			Imports: imports,
		}, nil
	}

	return Struct{}, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
}

// unexported variables.
var (
	majorVersion = regexp.MustCompile(`^v[0-9]+$`)
)

// typeRefs are the names the kept field types of a struct refer to.
type typeRefs struct {
	qualifiers  []string
	unqualified []string
}

// collectFields returns the exported fields of st and the names their types refer to.
func collectFields(structType *dst.StructType) ([]Field, typeRefs) {
	var (
		fields []Field
		refs   typeRefs
	)

	for _, field := range structType.Fields.List {
		typeStr := astutil.TypeString(field.Type)

		names := make([]string, 0, len(field.Names))
		for _, name := range field.Names {
			names = append(names, name.Name)
		}

		if len(names) == 0 {
			names = append(names, astutil.TypeName(field.Type))
		}

		kept := false

		for _, name := range names {
			if !token.IsExported(name) {
				continue
			}

			fields = append(fields, Field{Name: name, Type: typeStr})
			kept = true
		}

		if kept {
			refs.qualifiers = append(refs.qualifiers, astutil.Qualifiers(field.Type)...)
			refs.unqualified = append(refs.unqualified, astutil.Unqualified(field.Type)...)
		}
	}

	return fields, refs
}

// dotImportPaths returns the paths file imports with a "." name, in source order.
func dotImportPaths(file *dst.File) []string {
	var paths []string

	for _, spec := range file.Imports {
		if spec.Name == nil || spec.Name.Name != "." {
			continue
		}

		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		paths = append(paths, path)
	}

	return paths
}

func findImport(file *dst.File, qualifier string) *dst.ImportSpec {
	for _, spec := range file.Imports {
		if importName(spec) == qualifier {
			return spec
		}
	}

	return nil
}

func findTypeSpec(file *dst.File, typeName string) *dst.TypeSpec {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, isTypeSpec := spec.(*dst.TypeSpec)
			if isTypeSpec && typeSpec.Name.Name == typeName {
				return typeSpec
			}
		}
	}

	return nil
}

// importName is the name a file refers to an import by: its explicit name, or the last path element.
func importName(spec *dst.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}

	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		path = strings.Trim(spec.Path.Value, "\"`")
	}

	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]

	// major version suffixes ("/v2") are not part of the package name
	if len(elems) > 1 && majorVersion.MatchString(name) {
		name = elems[len(elems)-2]
	}

	// gopkg.in style: "yaml.v3"
	if before, _, found := strings.Cut(name, ".v"); found {
		name = before
	}

	return name
}

// packageNames returns every package-level name declared by the files of package pkgName.
func packageNames(files []*dst.File, pkgName string) map[string]bool {
	names := map[string]bool{}

	for _, file := range files {
		if file.Name.Name != pkgName {
			continue
		}

		for _, decl := range file.Decls {
			switch typed := decl.(type) {
			case *dst.FuncDecl:
				if typed.Recv == nil {
					names[typed.Name.Name] = true
				}
			case *dst.GenDecl:
				for _, spec := range typed.Specs {
					switch typedSpec := spec.(type) {
					case *dst.TypeSpec:
						names[typedSpec.Name.Name] = true
					case *dst.ValueSpec:
						for _, name := range typedSpec.Names {
							names[name.Name] = true
						}
					}
				}
			}
		}
	}

	return names
}

// resolveDotImports returns the dot import of file that supplies the unqualified names no
// declaration in the package or the universe scope accounts for. Nothing is returned when every
// name is accounted for.
func resolveDotImports(files []*dst.File, file *dst.File, unqualified []string) ([]Import, error) {
	paths := dotImportPaths(file)
	if len(paths) == 0 {
		return nil, nil
	}

	declared := packageNames(files, file.Name.Name)
	external := false

	for _, name := range unqualified {
		if !declared[name] && types.Universe.Lookup(name) == nil {
			external = true
			break
		}
	}

	if !external {
		return nil, nil
	}

	if len(paths) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousDotImport, strings.Join(paths, ", "))
	}

	return []Import{{Name: ".", Path: paths[0]}}, nil
}

// resolveImports maps each qualifier to the import in file that declares it.
func resolveImports(file *dst.File, qualifiers []string) ([]Import, error) {
	var imports []Import

	seen := map[string]bool{}

	for _, qualifier := range qualifiers {
		if seen[qualifier] {
			continue
		}

		seen[qualifier] = true

		spec := findImport(file, qualifier)
		if spec == nil {
			return nil, fmt.Errorf("%w %q", ErrMissingImport, qualifier)
		}

		path, _ := strconv.Unquote(spec.Path.Value)

		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		imports = append(imports, imp)
	}

	return imports, nil
}
