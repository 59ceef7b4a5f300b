package symtab

import (
	"errors"
	"fmt"

	"github.com/hassan/semcore/internal/source"
)

var (
	// ErrParamsUnattached is returned when a function's parameter types are
	// read before they were attached.
	ErrParamsUnattached = errors.New("function parameters not attached")

	// ErrParamsAttached is returned by a second AttachParameters call.
	ErrParamsAttached = errors.New("function parameters already attached")

	// ErrNotFunction is returned when parameters are attached to a non-function symbol.
	ErrNotFunction = errors.New("symbol is not a function")

	// ErrScopeSealed is returned when inserting into a struct's field table
	// after the definition took ownership of it.
	ErrScopeSealed = errors.New("scope is sealed")

	// ErrEmptyName is returned when inserting a symbol under "".
	ErrEmptyName = errors.New("empty symbol name")

	// ErrNilSymbol is returned when inserting a nil symbol.
	ErrNilSymbol = errors.New("nil symbol")
)

// ParamCountError reports a parameter list whose length disagrees with the
// count the function symbol was created with.
type ParamCountError struct {
	Want int
	Got  int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("function declares %d parameters, got %d types", e.Want, e.Got)
}

// NilParamError reports a nil entry in an attached parameter list.
type NilParamError struct {
	Index int
}

func (e *NilParamError) Error() string {
	return fmt.Sprintf("parameter %d has no type", e.Index)
}

// DuplicateNameError reports a name already declared in the same scope.
type DuplicateNameError struct {
	Name     string
	Existing *Symbol
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("symbol %s already declared as %s", e.Name, e.Existing)
}

// UnresolvedStructError reports a struct name that does not resolve to a
// struct definition. Found is the symbol the name did resolve to, if any.
type UnresolvedStructError struct {
	Name  source.Ident
	Found *Symbol
}

func (e *UnresolvedStructError) Error() string {
	if e.Found != nil {
		return fmt.Sprintf("%s is a %s, not a struct type", e.Name.Name, e.Found.Kind())
	}
	return fmt.Sprintf("undeclared struct type %s", e.Name.Name)
}
