package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds the parsed templates for one generated key set.
type TemplateRegistry struct {
	headerTmpl  *template.Template
	keysTmpl    *template.Template
	fieldsTmpl  *template.Template
	methodsTmpl *template.Template
}

// NewTemplateRegistry parses all templates.
// Templates are constants, so a parse failure is a programming error and panics.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		headerTmpl:  template.Must(template.New("header").Parse(tmplHeader)),
		keysTmpl:    template.Must(template.New("keys").Parse(tmplKeys)),
		fieldsTmpl:  template.Must(template.New("fields").Parse(tmplFields)),
		methodsTmpl: template.Must(template.New("methods").Parse(tmplMethods)),
	}
}

// WriteFields writes the typed accessor table.
func (r *TemplateRegistry) WriteFields(buf *bytes.Buffer, data any) {
	execute(r.fieldsTmpl, buf, data)
}

// WriteHeader writes the generated-code banner, package clause, and imports.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteKeys writes the key type, its constants, and the key list function.
func (r *TemplateRegistry) WriteKeys(buf *bytes.Buffer, data any) {
	execute(r.keysTmpl, buf, data)
}

// WriteMethods writes the Get and Valid methods of the key type.
func (r *TemplateRegistry) WriteMethods(buf *bytes.Buffer, data any) {
	execute(r.methodsTmpl, buf, data)
}

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}

const tmplHeader = `// Code generated by keyofgen. DO NOT EDIT.

package {{.PkgName}}

import (
	"fmt"
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
{{- if .LibQualifier}}

	{{.LibQualifier}} "{{.LibPath}}"
{{- end}}
)
`

const tmplKeys = `
// {{.KeyName}} names one field of {{.TypeName}}.
type {{.KeyName}} string

const (
{{- range .Fields}}
	{{.Const}} {{$.KeyName}} = "{{.Name}}"
{{- end}}
)

// {{.KeyName}}s returns every {{.KeyName}}, in field declaration order.
func {{.KeyName}}s() []{{.KeyName}} {
	return []{{.KeyName}}{
{{- range .Fields}}
		{{.Const}},
{{- end}}
	}
}
`

const tmplFields = `
var (
	// {{.TypeName}}Fields holds a typed accessor for each field of {{.TypeName}}.
	{{.TypeName}}Fields = struct {
{{- range .Fields}}
		{{.Name}} {{$.Lib}}Field[{{$.TypeName}}, {{.Type}}]
{{- end}}
	}{
{{- range .Fields}}
		{{.Name}}: {{$.Lib}}NewField("{{.Name}}", func(v {{$.TypeName}}) {{.Type}} { return v.{{.Name}} }),
{{- end}}
	}
)
`

const tmplMethods = `
// Get returns the field of v named by k.
func (k {{.KeyName}}) Get(v {{.TypeName}}) (any, error) {
	switch k {
{{- range .Fields}}
	case {{.Const}}:
		return v.{{.Name}}, nil
{{- end}}
	default:
		return nil, fmt.Errorf("%w: %q is not a field of {{.TypeName}}", {{.Lib}}ErrUnknownKey, string(k))
	}
}

// Valid reports whether k names a field of {{.TypeName}}.
func (k {{.KeyName}}) Valid() bool {
	switch k {
{{- range .Fields}}
	case {{.Const}}:
		return true
{{- end}}
	default:
		return false
	}
}
`
