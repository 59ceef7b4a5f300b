package symtab

import (
	"strings"

	"github.com/hassan/semcore/internal/semantic/types"
)

// FunctionState is the parameter state of a function symbol: either a
// Skeleton (count known, types not yet) or a Signature (types attached).
//
// DESIGN CHOICE: Two state types rather than a nullable parameter slice because:
// - "Parameters not known yet" is visible in the type, not a nil check
// - The one transition, Skeleton -> Signature, happens in one place
type FunctionState interface {
	// ParamCount is the number of declared parameters in either state
	ParamCount() int

	functionState()
}

// Skeleton is a function whose parameter types have not been attached.
type Skeleton struct {
	Count int
}

func (s Skeleton) ParamCount() int { return s.Count }
func (s Skeleton) functionState()  {}

// Signature is a function whose parameter types are known, in declaration order.
type Signature struct {
	Params []types.Type
}

func (s Signature) ParamCount() int { return len(s.Params) }
func (s Signature) functionState()  {}

// FunctionSymbol is the payload of a KindFunction symbol.
type FunctionSymbol struct {
	returnType types.Type
	state      FunctionState
}

// ReturnType returns the declared return type.
func (f *FunctionSymbol) ReturnType() types.Type { return f.returnType }

// ParamCount returns the number of parameters fixed at construction.
// It is the same before and after the parameters are attached.
func (f *FunctionSymbol) ParamCount() int { return f.state.ParamCount() }

// State returns the current parameter state.
func (f *FunctionSymbol) State() FunctionState { return f.state }

// Attached reports whether the parameter types have been attached.
func (f *FunctionSymbol) Attached() bool {
	_, ok := f.state.(Signature)
	return ok
}

// AttachParameters records the ordered parameter types.
//
// This is the only transition a function symbol makes, and it happens once:
// a second call fails with ErrParamsAttached. A list whose length differs from
// the count given to NewFunction fails with a *ParamCountError and leaves the
// symbol a skeleton. The slice is copied.
func (f *FunctionSymbol) AttachParameters(params []types.Type) error {
	sk, ok := f.state.(Skeleton)
	if !ok {
		return ErrParamsAttached
	}
	if len(params) != sk.Count {
		return &ParamCountError{Want: sk.Count, Got: len(params)}
	}
	for i, p := range params {
		if p == nil {
			return &NilParamError{Index: i}
		}
	}

	attached := make([]types.Type, len(params))
	copy(attached, params)
	f.state = Signature{Params: attached}
	return nil
}

// ParamTypes returns a copy of the parameter types in declaration order.
// Before AttachParameters it returns ErrParamsUnattached.
func (f *FunctionSymbol) ParamTypes() ([]types.Type, error) {
	sig, ok := f.state.(Signature)
	if !ok {
		return nil, ErrParamsUnattached
	}
	params := make([]types.Type, len(sig.Params))
	copy(params, sig.Params)
	return params, nil
}

// describe renders "P1,P2,...,Pn->R" with no spaces; "->R" with no parameters.
// Parameters of a skeleton render as "?".
func (f *FunctionSymbol) describe() string {
	var b strings.Builder
	switch st := f.state.(type) {
	case Signature:
		for i, p := range st.Params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.String())
		}
	case Skeleton:
		for i := 0; i < st.Count; i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('?')
		}
	}
	b.WriteString("->")
	b.WriteString(f.returnType.String())
	return b.String()
}
