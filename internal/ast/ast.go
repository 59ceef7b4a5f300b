// Package ast defines the declaration tree the name analyzer walks.
//
// DESIGN PHILOSOPHY:
// Only declarations bind names, so only declarations are modelled:
// 1. Variable declarations (int x; struct Point p;)
// 2. Function declarations with formals and local declarations
// 3. Struct declarations with field declarations
//
// KEY DESIGN CHOICES:
// - Use the visitor pattern for operations on declarations
// - Store position info in every node (for diagnostics)
// - Identifier nodes carry the Symbol they were bound to, so later phases and
//   the unparser read bindings instead of re-deriving them
package ast

import (
	"github.com/hassan/semcore/internal/semantic/types"
	"github.com/hassan/semcore/internal/source"
	"github.com/hassan/semcore/internal/symtab"
)

// Node is the base interface for all AST nodes.
// Every node must be able to report its position for error messages.
type Node interface {
	Pos() source.Position
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	// Accept implements the visitor pattern.
	Accept(v Visitor) error
	declNode() // Marker method
}

// Visitor is the interface for declaration traversal.
//
// EXAMPLE:
//
//	type Binder struct { ... }
//	func (b *Binder) VisitVarDecl(decl *VarDecl) error { ... }
type Visitor interface {
	VisitVarDecl(decl *VarDecl) error
	VisitFuncDecl(decl *FuncDecl) error
	VisitStructDecl(decl *StructDecl) error
}

// File is the root of the tree: the declarations of one source, in order.
type File struct {
	Name  string
	Decls []Decl
}

// IdentNode is an identifier at a declaration site.
//
// Sym is nil until name analysis binds the identifier. It is set at most once;
// a declaration that fails analysis leaves it nil.
type IdentNode struct {
	source.Ident
	Sym *symtab.Symbol
}

// NewIdent creates an unbound identifier node.
func NewIdent(name string, pos source.Position) *IdentNode {
	return &IdentNode{Ident: source.NewIdent(name, pos)}
}

func (i *IdentNode) Pos() source.Position { return i.Ident.Pos }

// Bound reports whether analysis attached a symbol.
func (i *IdentNode) Bound() bool { return i.Sym != nil }

// TypeNode is a written type: a primitive name, or "struct Name".
type TypeNode struct {
	// Name is the primitive spelling (int, bool, void, string) or the struct name
	Name string

	// Struct is true for "struct Name"
	Struct bool

	NamePos source.Position
}

func (t *TypeNode) Pos() source.Position { return t.NamePos }

// StructName returns the struct reference as an identifier.
func (t *TypeNode) StructName() source.Ident {
	return source.NewIdent(t.Name, t.NamePos)
}

// Primitive returns the primitive type named by t, if it names one.
func (t *TypeNode) Primitive() (types.Type, bool) {
	if t.Struct {
		return nil, false
	}
	return types.Primitive(t.Name)
}

// String returns the source spelling.
func (t *TypeNode) String() string {
	if t.Struct {
		return "struct " + t.Name
	}
	return t.Name
}

// VarDecl declares a variable, a formal parameter or a struct field: "int x".
type VarDecl struct {
	Type *TypeNode
	Name *IdentNode
}

func (v *VarDecl) Pos() source.Position { return v.Type.Pos() }
func (v *VarDecl) declNode()            {}
func (v *VarDecl) Accept(visitor Visitor) error {
	return visitor.VisitVarDecl(v)
}

// FuncDecl declares a function:
//
//	int add(int a, int b) { int tmp; }
//
// Only the local declarations of the body are kept; statements do not bind names.
type FuncDecl struct {
	Return  *TypeNode
	Name    *IdentNode
	Formals []*VarDecl
	Locals  []*VarDecl
}

func (f *FuncDecl) Pos() source.Position { return f.Return.Pos() }
func (f *FuncDecl) declNode()            {}
func (f *FuncDecl) Accept(v Visitor) error {
	return v.VisitFuncDecl(f)
}

// StructDecl declares a struct type:
//
//	struct Point { int x; int y; };
type StructDecl struct {
	StructPos source.Position
	Name      *IdentNode
	Fields    []*VarDecl
}

func (s *StructDecl) Pos() source.Position { return s.StructPos }
func (s *StructDecl) declNode()            {}
func (s *StructDecl) Accept(v Visitor) error {
	return v.VisitStructDecl(s)
}
