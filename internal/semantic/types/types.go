// Package types implements the types that symbols carry.
//
// DESIGN PHILOSOPHY:
// The symbol layer treats a Type as an opaque value. It only ever compares two
// types and prints one. This package provides the small set the name analyzer
// needs:
// 1. Primitive types (int, bool, void, string)
// 2. Struct types, named after their definition
// 3. Marker types for functions and struct definitions
// 4. An error type so analysis can continue after a bad declaration
//
// KEY DESIGN CHOICES:
// - Nominal typing for structs (struct Point != struct Line, whatever the fields)
// - A function symbol's own type is a marker; its signature lives on the symbol
package types

// Type is the interface that all types implement.
//
// DESIGN CHOICE: Use an interface rather than a struct with a "kind" field because:
// - Each type has its own struct
// - Pattern matching via type switches
// - Follows Go conventions (ast.Node, etc.)
type Type interface {
	// String returns the rendering used in diagnostics and unparsing
	String() string

	// Equals checks if this type is identical to another type
	Equals(other Type) bool

	// kind is unexported so the set of types stays closed
	kind() TypeKind
}

// TypeKind represents the kind of type.
type TypeKind int

const (
	KindError TypeKind = iota
	KindVoid
	KindInt
	KindBool
	KindString
	KindStruct
	KindFunction
	KindStructDef
)

// ErrorType is given to a declaration whose type could not be determined.
//
// DESIGN CHOICE: Use a special type rather than nil because:
// - Every symbol has a type, even a broken one
// - Analysis can continue and report more than one error per run
type ErrorType struct{}

func (e *ErrorType) String() string         { return "error" }
func (e *ErrorType) Equals(other Type) bool { _, ok := other.(*ErrorType); return ok }
func (e *ErrorType) kind() TypeKind         { return KindError }

// VoidType represents the absence of a value (void functions)
type VoidType struct{}

func (v *VoidType) String() string         { return "void" }
func (v *VoidType) Equals(other Type) bool { _, ok := other.(*VoidType); return ok }
func (v *VoidType) kind() TypeKind         { return KindVoid }

// IntType represents integer type
type IntType struct{}

func (i *IntType) String() string         { return "int" }
func (i *IntType) Equals(other Type) bool { _, ok := other.(*IntType); return ok }
func (i *IntType) kind() TypeKind         { return KindInt }

// BoolType represents boolean type
type BoolType struct{}

func (b *BoolType) String() string         { return "bool" }
func (b *BoolType) Equals(other Type) bool { _, ok := other.(*BoolType); return ok }
func (b *BoolType) kind() TypeKind         { return KindBool }

// StringType represents string type
type StringType struct{}

func (s *StringType) String() string         { return "string" }
func (s *StringType) Equals(other Type) bool { _, ok := other.(*StringType); return ok }
func (s *StringType) kind() TypeKind         { return KindString }

// FnType marks a function symbol. It is distinct from every user type.
type FnType struct{}

func (f *FnType) String() string         { return "function" }
func (f *FnType) Equals(other Type) bool { _, ok := other.(*FnType); return ok }
func (f *FnType) kind() TypeKind         { return KindFunction }

// StructDefType marks the symbol of a struct type's own definition.
// A variable can never have this type.
type StructDefType struct{}

func (s *StructDefType) String() string         { return "struct-def" }
func (s *StructDefType) Equals(other Type) bool { _, ok := other.(*StructDefType); return ok }
func (s *StructDefType) kind() TypeKind         { return KindStructDef }

// StructType is the type of a value declared with a struct type.
//
// NOMINAL TYPING: it records only the struct's name. The fields live in the
// definition's symbol table, found by looking the name up.
type StructType struct {
	Name string
}

func (s *StructType) String() string { return s.Name }

func (s *StructType) Equals(other Type) bool {
	if otherStruct, ok := other.(*StructType); ok {
		return s.Name == otherStruct.Name
	}
	return false
}

func (s *StructType) kind() TypeKind { return KindStruct }

// Predefined type instances (singletons)
var (
	Error     = &ErrorType{}
	Void      = &VoidType{}
	Int       = &IntType{}
	Bool      = &BoolType{}
	String    = &StringType{}
	Fn        = &FnType{}
	StructDef = &StructDefType{}
)

// NewStruct creates the type of a variable declared as struct name.
func NewStruct(name string) *StructType {
	return &StructType{Name: name}
}

// Primitive returns the predefined type spelled name, if there is one.
// Struct names are not primitives; callers resolve those through a scope.
func Primitive(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	case "string":
		return String, true
	default:
		return nil, false
	}
}

// IsVoid returns true if the type is void
func IsVoid(t Type) bool {
	_, ok := t.(*VoidType)
	return ok
}

// IsError returns true if the type is the error type
func IsError(t Type) bool {
	_, ok := t.(*ErrorType)
	return ok
}

// IsStruct returns true if t is the type of a struct value
func IsStruct(t Type) bool {
	_, ok := t.(*StructType)
	return ok
}

// KindOf exposes the kind of t for callers outside the package (the symbol index).
func KindOf(t Type) TypeKind {
	if t == nil {
		return KindError
	}
	return t.kind()
}

// String returns a human-readable representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindFunction:
		return "function"
	case KindStructDef:
		return "struct-def"
	default:
		return "unknown"
	}
}
