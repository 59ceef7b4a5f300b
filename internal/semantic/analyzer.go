// Package semantic implements name analysis for the compiler.
//
// NAME ANALYSIS:
// After parsing, every declaration is walked once, in order, and each
// declared name is bound to a Symbol in the scope it was declared in:
// 1. Variables bind a plain symbol, or a struct instance for struct types
// 2. Functions bind a function symbol whose parameters are attached after
//    the formals are processed
// 3. Struct declarations bind a struct definition owning its field table
//
// DESIGN PHILOSOPHY:
// - Collect all errors, don't stop at the first one
// - Use the visitor pattern to traverse the declarations
// - Annotate identifier nodes with the symbol they were bound to
//
// PASSES:
// One pass in declaration order. A struct type must be declared before it is
// used, so a struct cannot contain a field of its own type.
package semantic

import (
	"github.com/hassan/semcore/internal/ast"
	"github.com/hassan/semcore/internal/semantic/types"
	"github.com/hassan/semcore/internal/source"
	"github.com/hassan/semcore/internal/symtab"
)

// Diagnostic messages. Downstream tooling matches on the exact wording.
const (
	MsgMultiplyDeclared  = "Multiply declared identifier"
	MsgVoidNonFunction   = "Non-function declared void"
	MsgInvalidStructName = "Invalid name of struct type"
)

// Diagnostic is a name-analysis error at a source position.
type Diagnostic struct {
	Pos source.Position
	Msg string
}

func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return d.Pos.String() + ": " + d.Msg
	}
	return d.Msg
}

// Analyzer performs name analysis on a declaration tree.
type Analyzer struct {
	// currentScope tracks the current scope during traversal
	currentScope *symtab.Scope

	// globalScope is the top-level scope of the last analyzed file
	globalScope *symtab.Scope

	// errors accumulates all diagnostics
	errors []error
}

// New creates a new analyzer.
func New() *Analyzer {
	global := symtab.NewScope(symtab.ScopeGlobal, nil)
	return &Analyzer{
		currentScope: global,
		globalScope:  global,
	}
}

// Analyze binds every declaration in file and returns the diagnostics found
// (empty if none). Each call starts from a fresh global scope.
func (a *Analyzer) Analyze(file *ast.File) []error {
	a.globalScope = symtab.NewScope(symtab.ScopeGlobal, nil)
	a.currentScope = a.globalScope
	a.errors = nil

	for _, decl := range file.Decls {
		_ = decl.Accept(a)
	}
	return a.errors
}

// Global returns the global scope built by the last Analyze call.
func (a *Analyzer) Global() *symtab.Scope {
	return a.globalScope
}

// Visitor implementation for declarations

func (a *Analyzer) VisitVarDecl(decl *ast.VarDecl) error {
	sym, ok := a.declSymbol(decl)
	if !ok {
		return nil
	}
	a.bind(decl.Name, sym)
	return nil
}

func (a *Analyzer) VisitFuncDecl(decl *ast.FuncDecl) error {
	returnType := a.resolveType(decl.Return)

	// Bind the skeleton first so the body can refer to the function.
	fn := symtab.NewFunction(returnType, len(decl.Formals))
	a.bind(decl.Name, fn)

	a.enterScope(symtab.ScopeFunction)
	defer a.exitScope()

	paramTypes := make([]types.Type, len(decl.Formals))
	for i, formal := range decl.Formals {
		sym, ok := a.declSymbol(formal)
		if !ok {
			paramTypes[i] = types.Error
			continue
		}
		paramTypes[i] = sym.Type()
		a.bind(formal.Name, sym)
	}

	// The count always matches: a bad formal contributes the error type.
	if err := fn.AttachParameters(paramTypes); err != nil {
		a.error(decl.Name.Pos(), err.Error())
	}

	for _, local := range decl.Locals {
		_ = local.Accept(a)
	}
	return nil
}

func (a *Analyzer) VisitStructDecl(decl *ast.StructDecl) error {
	// Field types resolve in the enclosing scope; field names live in their
	// own table, so a field may share a name with an outer variable.
	fields := symtab.NewScope(symtab.ScopeStruct, nil)
	for _, field := range decl.Fields {
		sym, ok := a.declSymbol(field)
		if !ok {
			continue
		}
		if err := fields.Insert(field.Name.Name, sym); err != nil {
			a.error(field.Name.Pos(), MsgMultiplyDeclared)
			continue
		}
		field.Name.Sym = sym
	}

	a.bind(decl.Name, symtab.NewStructDefinition(fields))
	return nil
}

// declSymbol builds the symbol for a variable, formal or field declaration,
// reporting void and unknown struct types. ok is false if the declaration
// must not be bound.
func (a *Analyzer) declSymbol(decl *ast.VarDecl) (*symtab.Symbol, bool) {
	if decl.Type.Struct {
		if _, err := a.lookupStruct(decl.Type); err != nil {
			a.error(decl.Type.Pos(), MsgInvalidStructName)
			return nil, false
		}
		return symtab.NewStructInstance(decl.Type.StructName()), true
	}

	typ := a.resolveType(decl.Type)
	if types.IsVoid(typ) {
		a.error(decl.Name.Pos(), MsgVoidNonFunction)
		return nil, false
	}
	if types.IsError(typ) {
		return nil, false
	}
	return symtab.NewSymbol(typ), true
}

// bind inserts sym under id in the current scope and records the binding on
// the identifier. A redeclaration is reported and leaves id unbound.
func (a *Analyzer) bind(id *ast.IdentNode, sym *symtab.Symbol) {
	if err := a.currentScope.Insert(id.Name, sym); err != nil {
		a.error(id.Pos(), MsgMultiplyDeclared)
		return
	}
	id.Sym = sym
}

// resolveType converts a written type to a Type. Unknown names are reported
// and resolve to types.Error. Rejecting void is left to the caller.
func (a *Analyzer) resolveType(node *ast.TypeNode) types.Type {
	if node.Struct {
		if _, err := a.lookupStruct(node); err != nil {
			a.error(node.Pos(), MsgInvalidStructName)
			return types.Error
		}
		return types.NewStruct(node.Name)
	}
	typ, ok := node.Primitive()
	if !ok {
		a.error(node.Pos(), "unknown type "+node.Name)
		return types.Error
	}
	return typ
}

// lookupStruct resolves a struct type reference in the current scope.
func (a *Analyzer) lookupStruct(node *ast.TypeNode) (*symtab.StructDefinitionSymbol, error) {
	return symtab.LookupStruct(a.currentScope, node.StructName())
}

// enterScope creates a new scope nested inside the current one
func (a *Analyzer) enterScope(kind symtab.ScopeKind) {
	a.currentScope = symtab.NewScope(kind, a.currentScope)
}

// exitScope returns to the enclosing scope
func (a *Analyzer) exitScope() {
	if a.currentScope.Parent != nil {
		a.currentScope = a.currentScope.Parent
	}
}

// error records a diagnostic
func (a *Analyzer) error(pos source.Position, message string) {
	a.errors = append(a.errors, &Diagnostic{Pos: pos, Msg: message})
}
