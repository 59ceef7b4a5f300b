package symtab

import "github.com/hassan/semcore/internal/source"

// Lookuper is anything a name can be resolved in: a *Scope or a View.
type Lookuper interface {
	Lookup(name string) (*Symbol, bool)
}

// StructInstanceSymbol is the payload of a KindStructInstance symbol.
//
// DESIGN CHOICE: Keep the struct's name rather than a pointer to its
// definition because:
// - The definition is looked up in whatever scope is current at use time
// - A definition may be declared independently of any instance
// - The instance never shares ownership of the definition's field table
type StructInstanceSymbol struct {
	structType source.Ident
}

// StructTypeName returns the name the variable was declared with.
func (s *StructInstanceSymbol) StructTypeName() source.Ident { return s.structType }

// Resolve looks the struct name up in scope and returns its definition.
// It returns an *UnresolvedStructError if the name is unbound or bound to
// something other than a struct definition.
func (s *StructInstanceSymbol) Resolve(scope Lookuper) (*StructDefinitionSymbol, error) {
	return LookupStruct(scope, s.structType)
}

// LookupStruct resolves name to a struct definition in scope.
func LookupStruct(scope Lookuper, name source.Ident) (*StructDefinitionSymbol, error) {
	sym, ok := scope.Lookup(name.Name)
	if !ok {
		return nil, &UnresolvedStructError{Name: name}
	}
	def, ok := sym.StructDefinition()
	if !ok {
		return nil, &UnresolvedStructError{Name: name, Found: sym}
	}
	return def, nil
}

// StructDefinitionSymbol is the payload of a KindStructDefinition symbol.
// It exclusively owns the table describing the struct's fields.
type StructDefinitionSymbol struct {
	fields *Scope
}

// Fields returns a read-only view of the field table. The view is only valid
// as long as the definition is.
func (s *StructDefinitionSymbol) Fields() View { return View{scope: s.fields} }

// Field looks up a single field by name.
func (s *StructDefinitionSymbol) Field(name string) (*Symbol, bool) {
	return s.fields.LookupLocal(name)
}
