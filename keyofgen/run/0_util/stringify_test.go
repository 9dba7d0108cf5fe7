//nolint:testpackage // Whitebox tests for the unexported helpers behind TypeString
package astutil

import (
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/onsi/gomega"
)

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "ident", source: "int", expected: "int"},
		{name: "qualified", source: "time.Duration", expected: "time.Duration"},
		{name: "pointer", source: "*string", expected: "*string"},
		{name: "slice", source: "[]byte", expected: "[]byte"},
		{name: "array", source: "[4]int", expected: "[4]int"},
		{name: "map", source: "map[string][]int", expected: "map[string][]int"},
		{name: "bidirectional chan", source: "chan int", expected: "chan int"},
		{name: "send chan", source: "chan<- int", expected: "chan<- int"},
		{name: "receive chan", source: "<-chan error", expected: "<-chan error"},
		{name: "func no results", source: "func(a int)", expected: "func(a int)"},
		{name: "func one result", source: "func(int, string) error", expected: "func(int, string) error"},
		{name: "func named results", source: "func() (n int, err error)", expected: "func() (n int, err error)"},
		{name: "empty interface", source: "interface{}", expected: "interface{}"},
		{name: "method interface", source: "interface{ Len() int }", expected: "interface{ Len() int }"},
		{name: "empty struct", source: "struct{}", expected: "struct{}"},
		{
			name:     "struct with tag",
			source:   "struct{ A, B int `json:\"a\"` }",
			expected: "struct{ A, B int `json:\"a\"` }",
		},
		{name: "generic", source: "Pair[string, int]", expected: "Pair[string, int]"},
		{name: "single type arg", source: "List[int]", expected: "List[int]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gomega.NewWithT(t).Expect(TypeString(parseFieldType(t, tt.source))).To(gomega.Equal(tt.expected))
		})
	}
}

func TestTypeString_Nil(t *testing.T) {
	t.Parallel()

	gomega.NewWithT(t).Expect(TypeString(nil)).To(gomega.BeEmpty())
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source   string
		expected string
	}{
		{source: "Vehicle", expected: "Vehicle"},
		{source: "*Vehicle", expected: "Vehicle"},
		{source: "sync.Mutex", expected: "Mutex"},
		{source: "*pkg.List[int]", expected: "List"},
		{source: "Pair[int, string]", expected: "Pair"},
		{source: "[]int", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			gomega.NewWithT(t).Expect(TypeName(parseFieldType(t, tt.source))).To(gomega.Equal(tt.expected))
		})
	}
}

func TestQualifiers(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(Qualifiers(parseFieldType(t, "map[time.Month][]*url.URL"))).
		To(gomega.Equal([]string{"time", "url"}))
	expect.Expect(Qualifiers(parseFieldType(t, "func(time.Time) time.Duration"))).
		To(gomega.Equal([]string{"time"}))
	expect.Expect(Qualifiers(parseFieldType(t, "[]int"))).To(gomega.BeEmpty())
}

func TestUnqualified(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	expect.Expect(Unqualified(parseFieldType(t, "map[Month][]*url.URL"))).
		To(gomega.Equal([]string{"Month"}))
	expect.Expect(Unqualified(parseFieldType(t, "func(at Time, d time.Duration) (ok bool)"))).
		To(gomega.Equal([]string{"Time", "bool"}))
	expect.Expect(Unqualified(parseFieldType(t, "struct{ Count int; When Time }"))).
		To(gomega.Equal([]string{"Time", "int"}))
	expect.Expect(Unqualified(parseFieldType(t, "time.Time"))).To(gomega.BeEmpty())
}

// parseFieldType parses source as the type of a struct field.
func parseFieldType(t *testing.T, source string) dst.Expr {
	t.Helper()

	file, err := decorator.Parse("package p\n\ntype T struct {\n\tF " + source + "\n}\n")
	if err != nil {
		t.Fatalf("failed to parse %q: %v", source, err)
	}

	//nolint:forcetypeassert // fixture shape is fixed above
	spec := file.Decls[0].(*dst.GenDecl).Specs[0].(*dst.TypeSpec)

	//nolint:forcetypeassert // fixture shape is fixed above
	return spec.Type.(*dst.StructType).Fields.List[0].Type
}
