// Package symtab records what a declared name is.
//
// DESIGN PHILOSOPHY:
// A Symbol is created once, when the semantic analyzer processes a
// declaration, and is queried by every later phase. There are four variants:
// 1. Plain - a variable of a primitive type
// 2. Function - a callable name: return type plus ordered parameter types
// 3. StructInstance - a variable declared with a struct type
// 4. StructDefinition - a struct type's own definition, owning its field table
//
// KEY DESIGN CHOICES:
// - One Symbol struct tagged with a Kind; each kind keeps only its own payload
// - Shared behavior (Type, String) is a switch over the Kind
// - Symbols never point at other declarations; they refer to them by name
// - Symbols are immutable once complete (a function's parameters are the one
//   late addition, and they can be attached exactly once)
package symtab

import (
	"github.com/hassan/semcore/internal/semantic/types"
	"github.com/hassan/semcore/internal/source"
)

// Kind represents the kind of symbol.
//
// DESIGN CHOICE: Use a tag rather than one Go type per variant behind an
// interface because:
// - The set of variants is closed
// - Easy to switch on
// - A table stores one concrete type, *Symbol
type Kind int

const (
	// KindPlain is a variable of a non-struct type (int x)
	KindPlain Kind = iota

	// KindFunction is a function (int add(int a, int b))
	KindFunction

	// KindStructInstance is a variable of a struct type (struct Point p)
	KindStructInstance

	// KindStructDefinition is the definition of a struct type (struct Point { ... })
	KindStructDefinition
)

// String returns a human-readable representation of the symbol kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFunction:
		return "function"
	case KindStructInstance:
		return "struct-instance"
	case KindStructDefinition:
		return "struct-definition"
	default:
		return "unknown"
	}
}

// Symbol represents a bound name.
//
// Every Symbol has exactly one non-nil type, fixed at construction. The
// payload is nil for KindPlain and otherwise holds the variant's own data:
// *FunctionSymbol, *StructInstanceSymbol or *StructDefinitionSymbol.
type Symbol struct {
	kind    Kind
	typ     types.Type
	payload any
}

// NewSymbol creates a plain symbol of type t.
// A nil type is a programming error and panics.
func NewSymbol(t types.Type) *Symbol {
	if t == nil {
		panic("symtab: NewSymbol with nil type")
	}
	return &Symbol{kind: KindPlain, typ: t}
}

// NewFunction creates a function symbol in its skeleton state: the return type
// and the number of declared parameters are known, the parameter types are
// not. Attach them with AttachParameters once the formals are processed.
//
// The symbol's own type is types.Fn. A negative count panics.
func NewFunction(returnType types.Type, paramCount int) *Symbol {
	if returnType == nil {
		panic("symtab: NewFunction with nil return type")
	}
	if paramCount < 0 {
		panic("symtab: NewFunction with negative parameter count")
	}
	return &Symbol{
		kind: KindFunction,
		typ:  types.Fn,
		payload: &FunctionSymbol{
			returnType: returnType,
			state:      Skeleton{Count: paramCount},
		},
	}
}

// NewStructInstance creates the symbol of a variable declared with the
// struct type called name. The struct is not resolved here; see
// StructInstanceSymbol.Resolve.
func NewStructInstance(name source.Ident) *Symbol {
	return &Symbol{
		kind:    KindStructInstance,
		typ:     types.NewStruct(name.Name),
		payload: &StructInstanceSymbol{structType: name},
	}
}

// NewStructDefinition creates the symbol of a struct type's definition.
//
// The symbol takes ownership of fields, which must already hold every field.
// The table is sealed: further inserts fail with ErrScopeSealed.
func NewStructDefinition(fields *Scope) *Symbol {
	if fields == nil {
		panic("symtab: NewStructDefinition with nil field table")
	}
	fields.seal()
	return &Symbol{
		kind:    KindStructDefinition,
		typ:     types.StructDef,
		payload: &StructDefinitionSymbol{fields: fields},
	}
}

// Kind returns which variant this symbol is.
func (s *Symbol) Kind() Kind { return s.kind }

// Type returns the symbol's own type. It never fails.
//
// For a function this is the function marker, not the return type; for a
// struct definition it is the struct-definition marker.
func (s *Symbol) Type() types.Type { return s.typ }

// String renders the symbol for diagnostics and unparsing.
//
// Functions render their signature ("int,bool->int"); every other kind
// renders its type.
func (s *Symbol) String() string {
	switch s.kind {
	case KindFunction:
		return s.payload.(*FunctionSymbol).describe()
	default:
		return s.typ.String()
	}
}

// Function returns the function payload if s is a function symbol.
func (s *Symbol) Function() (*FunctionSymbol, bool) {
	fn, ok := s.payload.(*FunctionSymbol)
	return fn, ok
}

// StructInstance returns the struct-instance payload if s is one.
func (s *Symbol) StructInstance() (*StructInstanceSymbol, bool) {
	inst, ok := s.payload.(*StructInstanceSymbol)
	return inst, ok
}

// StructDefinition returns the struct-definition payload if s is one.
func (s *Symbol) StructDefinition() (*StructDefinitionSymbol, bool) {
	def, ok := s.payload.(*StructDefinitionSymbol)
	return def, ok
}

// AttachParameters is shorthand for attaching parameters to a function
// symbol. It fails with ErrNotFunction for any other kind.
func (s *Symbol) AttachParameters(params []types.Type) error {
	fn, ok := s.Function()
	if !ok {
		return ErrNotFunction
	}
	return fn.AttachParameters(params)
}
