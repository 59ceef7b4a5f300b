package symtab

import (
	"fmt"
	"strings"
)

// ScopeKind represents the kind of scope.
//
// DESIGN CHOICE: Distinguish scope kinds because:
// - A struct's field table is a scope, but nothing outside it can be seen from it
// - Better dumps ("struct scope" vs "block scope")
type ScopeKind int

const (
	// ScopeGlobal is the top-level scope of a file
	ScopeGlobal ScopeKind = iota

	// ScopeFunction is a function's scope (for parameters and local variables)
	ScopeFunction

	// ScopeBlock is a block scope (like { ... })
	ScopeBlock

	// ScopeStruct is a struct's field table
	ScopeStruct
)

// String returns a human-readable representation of the scope kind.
func (sk ScopeKind) String() string {
	switch sk {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Scope is a symbol table for one lexical region. It maps names to the
// symbols declared there and links to its enclosing scope.
//
// DESIGN CHOICE: Use a tree structure (parent pointers) rather than a stack because:
// - Natural representation of nested scopes
// - A finished scope can be kept (a struct's fields, a function's locals)
// - No need to explicitly push/pop
//
// Scope owns the symbols inserted into it. It is built by a single
// sequential pass and is not safe for concurrent mutation.
type Scope struct {
	// Kind is the kind of scope
	Kind ScopeKind

	// Parent is the enclosing scope (nil for global scopes and field tables)
	Parent *Scope

	// Children are the scopes opened inside this one
	Children []*Scope

	// Depth is the nesting depth (0 for a root scope)
	Depth int

	symbols map[string]*Symbol
	names   []string // declaration order
	sealed  bool
}

// NewScope creates a new scope with the given kind and parent.
//
// USAGE:
//
//	global := NewScope(ScopeGlobal, nil)
//	funcScope := NewScope(ScopeFunction, global)
//	fields := NewScope(ScopeStruct, nil)
func NewScope(kind ScopeKind, parent *Scope) *Scope {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}

	scope := &Scope{
		Kind:    kind,
		Parent:  parent,
		Depth:   depth,
		symbols: make(map[string]*Symbol),
	}

	if parent != nil {
		parent.Children = append(parent.Children, scope)
	}
	return scope
}

// Insert binds name to sym in this scope.
//
// RETURNS:
// - nil if successful
// - *DuplicateNameError if name is already declared in this scope
// - ErrScopeSealed if the scope is a field table owned by a struct definition
//
// Shadowing a name from an enclosing scope is allowed.
func (s *Scope) Insert(name string, sym *Symbol) error {
	if name == "" {
		return ErrEmptyName
	}
	if sym == nil {
		return ErrNilSymbol
	}
	if s.sealed {
		return fmt.Errorf("insert %s: %w", name, ErrScopeSealed)
	}
	if existing, ok := s.symbols[name]; ok {
		return &DuplicateNameError{Name: name, Existing: existing}
	}

	s.symbols[name] = sym
	s.names = append(s.names, name)
	return nil
}

// Lookup finds a symbol by name in this scope or any enclosing scope.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal finds a symbol by name only in this scope.
//
// This is useful for:
// - Detecting redeclarations in the same scope
// - Looking up fields in a struct (without checking outer scopes)
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Names returns the names declared in this scope, in declaration order.
func (s *Scope) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of symbols declared in this scope.
func (s *Scope) Len() int { return len(s.names) }

// Sealed reports whether the scope has been handed to a struct definition.
func (s *Scope) Sealed() bool { return s.sealed }

func (s *Scope) seal() { s.sealed = true }

// String returns a summary of the scope.
func (s *Scope) String() string {
	return fmt.Sprintf("%s scope (depth %d, %d symbols)", s.Kind, s.Depth, len(s.names))
}

// Dump renders the scope tree, indented by depth. Struct field tables are
// printed under the definition that owns them.
//
// EXAMPLE OUTPUT:
//
//	global scope (depth 0, 2 symbols)
//	  Point: struct-def
//	    struct scope (depth 0, 2 symbols)
//	      x: int
//	      y: int
//	  add: int,int->int
func (s *Scope) Dump() string {
	var b strings.Builder
	s.dump(&b, 0)
	return b.String()
}

func (s *Scope) dump(b *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	b.WriteString(prefix + s.String() + "\n")

	for _, name := range s.names {
		sym := s.symbols[name]
		b.WriteString(prefix + "  " + name + ": " + sym.String() + "\n")
		if def, ok := sym.StructDefinition(); ok {
			def.fields.dump(b, indent+2)
		}
	}

	for _, child := range s.Children {
		child.dump(b, indent+1)
	}
}
