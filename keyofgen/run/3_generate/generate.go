// Package generate renders the Go source of a generated key set.
package generate

import (
	"bytes"
	"fmt"
	"go/format"

	detect "github.com/toejough/typetour/keyofgen/run/2_detect"
)

// LibPath is the import path of the package that defines Field and ErrUnknownKey.
const LibPath = "github.com/toejough/typetour"

// KeySet renders the key type named keyName for st: the key constants, a function listing
// them, Get and Valid methods, and a table of typed field accessors.
func KeySet(st detect.Struct, keyName string) (string, error) {
	data := buildKeySetData(st, keyName)

	var buf bytes.Buffer

	templates := NewTemplateRegistry()
	templates.WriteHeader(&buf, data)
	templates.WriteKeys(&buf, data)
	templates.WriteFields(&buf, data)
	templates.WriteMethods(&buf, data)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("error formatting generated code: %w", err)
	}

	return string(formatted), nil
}

type fieldData struct {
	Name  string
	Type  string
	Const string
}

type keySetData struct {
	PkgName      string
	TypeName     string
	KeyName      string
	Imports      []detect.Import
	LibQualifier string
	LibPath      string
	Lib          string // "typetour." or empty when generating into the library itself
	Fields       []fieldData
}

func buildKeySetData(st detect.Struct, keyName string) keySetData {
	data := keySetData{
		PkgName:  st.PkgName,
		TypeName: st.Name,
		KeyName:  keyName,
		LibPath:  LibPath,
	}

	lib := libName

	for _, imp := range st.Imports {
		switch {
		case imp.Path == LibPath && imp.Name != "" && imp.Name != ".":
			// field types spell the library with the source file's name for it
			lib = imp.Name
			continue
		case imp.Name == "" && (imp.Path == "fmt" || imp.Path == LibPath):
			// already imported by the header
			continue
		}

		data.Imports = append(data.Imports, imp)
	}

	if st.PkgName != libName {
		data.LibQualifier = lib
		data.Lib = lib + "."
	}

	for _, field := range st.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:  field.Name,
			Type:  field.Type,
			Const: keyName + field.Name,
		})
	}

	return data
}

// unexported constants.
const (
	libName = "typetour"
)
