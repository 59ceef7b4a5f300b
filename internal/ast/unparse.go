package ast

import (
	"bufio"
	"io"
	"strings"
)

const indentUnit = "    "

// Unparse writes the declarations of f back out as source. Every identifier
// that analysis bound is followed by its symbol in parentheses:
//
//	struct Point p(Point);
//	int add(int,int->int)(int a(int), int b(int)) {
//	}
func Unparse(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	for _, decl := range f.Decls {
		unparseDecl(bw, decl, 0)
	}
	return bw.Flush()
}

// UnparseString is Unparse into a string.
func UnparseString(f *File) string {
	var b strings.Builder
	_ = Unparse(&b, f)
	return b.String()
}

func unparseDecl(w *bufio.Writer, decl Decl, indent int) {
	prefix := strings.Repeat(indentUnit, indent)
	switch d := decl.(type) {
	case *VarDecl:
		w.WriteString(prefix + unparseVar(d) + ";\n")

	case *FuncDecl:
		formals := make([]string, len(d.Formals))
		for i, formal := range d.Formals {
			formals[i] = unparseVar(formal)
		}
		w.WriteString(prefix + d.Return.String() + " " + unparseIdent(d.Name) +
			"(" + strings.Join(formals, ", ") + ") {\n")
		for _, local := range d.Locals {
			unparseDecl(w, local, indent+1)
		}
		w.WriteString(prefix + "}\n")

	case *StructDecl:
		w.WriteString(prefix + "struct " + unparseIdent(d.Name) + " {\n")
		for _, field := range d.Fields {
			unparseDecl(w, field, indent+1)
		}
		w.WriteString(prefix + "};\n")
	}
}

func unparseVar(v *VarDecl) string {
	return v.Type.String() + " " + unparseIdent(v.Name)
}

func unparseIdent(id *IdentNode) string {
	if id.Sym == nil {
		return id.Name
	}
	return id.Name + "(" + id.Sym.String() + ")"
}
