// Package astutil renders DST type expressions back to Go source text.
package astutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dave/dst"
)

// Qualifiers returns the package names referenced by expr (the X of every pkg.Name selector),
// sorted and without duplicates.
func Qualifiers(expr dst.Expr) []string {
	seen := map[string]bool{}

	dst.Inspect(expr, func(node dst.Node) bool {
		sel, ok := node.(*dst.SelectorExpr)
		if !ok {
			return true
		}

		if ident, isIdent := sel.X.(*dst.Ident); isIdent {
			seen[ident.Name] = true
		}

		return false
	})

	return sortedKeys(seen)
}

// TypeName returns the bare name of a named type expression, dropping pointers, package
// qualifiers, and type arguments. It is the name Go gives an embedded field of that type.
func TypeName(expr dst.Expr) string {
	switch typed := expr.(type) {
	case *dst.Ident:
		return typed.Name
	case *dst.StarExpr:
		return TypeName(typed.X)
	case *dst.SelectorExpr:
		return typed.Sel.Name
	case *dst.IndexExpr:
		return TypeName(typed.X)
	case *dst.IndexListExpr:
		return TypeName(typed.X)
	default:
		return ""
	}
}

// TypeString renders a type expression as Go source.
//
//nolint:cyclop // Type-switch dispatcher over DST expression kinds
func TypeString(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typed := expr.(type) {
	case *dst.Ident:
		return typed.Name
	case *dst.BasicLit:
		return typed.Value
	case *dst.SelectorExpr:
		return TypeString(typed.X) + "." + typed.Sel.Name
	case *dst.StarExpr:
		return "*" + TypeString(typed.X)
	case *dst.ParenExpr:
		return "(" + TypeString(typed.X) + ")"
	case *dst.Ellipsis:
		return "..." + TypeString(typed.Elt)
	case *dst.ArrayType:
		return "[" + TypeString(typed.Len) + "]" + TypeString(typed.Elt)
	case *dst.MapType:
		return "map[" + TypeString(typed.Key) + "]" + TypeString(typed.Value)
	case *dst.ChanType:
		return chanString(typed)
	case *dst.FuncType:
		return "func" + funcSignature(typed)
	case *dst.InterfaceType:
		return interfaceString(typed)
	case *dst.StructType:
		return structString(typed)
	case *dst.IndexExpr:
		return TypeString(typed.X) + "[" + TypeString(typed.Index) + "]"
	case *dst.IndexListExpr:
		return TypeString(typed.X) + "[" + joinExprs(typed.Indices) + "]"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// Unqualified returns the identifiers expr refers to without a package qualifier, sorted and
// without duplicates. Field and parameter names inside expr are not references and are skipped.
func Unqualified(expr dst.Expr) []string {
	seen := map[string]bool{}
	collectUnqualified(expr, seen)

	return sortedKeys(seen)
}

func chanString(ch *dst.ChanType) string {
	switch ch.Dir {
	case dst.SEND:
		return "chan<- " + TypeString(ch.Value)
	case dst.RECV:
		return "<-chan " + TypeString(ch.Value)
	default:
		return "chan " + TypeString(ch.Value)
	}
}

func collectUnqualified(node dst.Node, seen map[string]bool) {
	dst.Inspect(node, func(node dst.Node) bool {
		switch typed := node.(type) {
		case *dst.Ident:
			seen[typed.Name] = true
		case *dst.SelectorExpr:
			return false
		case *dst.Field:
			collectUnqualified(typed.Type, seen)
			return false
		}

		return true
	})
}

// fieldListString renders a parameter, result, or struct field list, keeping names.
func fieldListString(fields *dst.FieldList, sep string) string {
	if fields == nil {
		return ""
	}

	parts := make([]string, 0, len(fields.List))

	for _, field := range fields.List {
		typeStr := TypeString(field.Type)
		if field.Tag != nil {
			typeStr += " " + field.Tag.Value
		}

		if len(field.Names) == 0 {
			parts = append(parts, typeStr)
			continue
		}

		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}

		parts = append(parts, strings.Join(names, ", ")+" "+typeStr)
	}

	return strings.Join(parts, sep)
}

func funcSignature(fn *dst.FuncType) string {
	sig := "(" + fieldListString(fn.Params, ", ") + ")"

	if fn.Results == nil || len(fn.Results.List) == 0 {
		return sig
	}

	results := fieldListString(fn.Results, ", ")
	if len(fn.Results.List) == 1 && len(fn.Results.List[0].Names) == 0 {
		return sig + " " + results
	}

	return sig + " (" + results + ")"
}

func interfaceString(iface *dst.InterfaceType) string {
	if iface.Methods == nil || len(iface.Methods.List) == 0 {
		return "interface{}"
	}

	parts := make([]string, 0, len(iface.Methods.List))

	for _, method := range iface.Methods.List {
		fn, isFunc := method.Type.(*dst.FuncType)
		if isFunc && len(method.Names) > 0 {
			parts = append(parts, method.Names[0].Name+funcSignature(fn))
			continue
		}

		// embedded interface or type constraint
		parts = append(parts, TypeString(method.Type))
	}

	return "interface{ " + strings.Join(parts, "; ") + " }"
}

func joinExprs(exprs []dst.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = TypeString(e)
	}

	return strings.Join(parts, ", ")
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func structString(st *dst.StructType) string {
	if st.Fields == nil || len(st.Fields.List) == 0 {
		return "struct{}"
	}

	return "struct{ " + fieldListString(st.Fields, "; ") + " }"
}
