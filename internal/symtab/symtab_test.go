package symtab

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/semcore/internal/semantic/types"
	"github.com/hassan/semcore/internal/source"
)

// Test Symbol

func TestNewSymbol_Type(t *testing.T) {
	t.Parallel()
	for _, typ := range []types.Type{types.Int, types.Bool, types.String, types.NewStruct("Point"), types.Error} {
		sym := NewSymbol(typ)
		assert.Same(t, typ, sym.Type())
		assert.Equal(t, KindPlain, sym.Kind())
		assert.Equal(t, typ.String(), sym.String())
	}
}

func TestNewSymbol_NilTypePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewSymbol(nil) })
	assert.Panics(t, func() { NewFunction(nil, 0) })
	assert.Panics(t, func() { NewFunction(types.Int, -1) })
	assert.Panics(t, func() { NewStructDefinition(nil) })
}

func TestSymbol_PayloadAccessors(t *testing.T) {
	t.Parallel()
	plain := NewSymbol(types.Int)
	_, ok := plain.Function()
	assert.False(t, ok)
	_, ok = plain.StructInstance()
	assert.False(t, ok)
	_, ok = plain.StructDefinition()
	assert.False(t, ok)

	fn := NewFunction(types.Int, 1)
	_, ok = fn.Function()
	assert.True(t, ok)
	_, ok = fn.StructDefinition()
	assert.False(t, ok)
}

// Test FunctionSymbol

func TestFunction_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ret      types.Type
		params   []types.Type
		expected string
	}{
		{"two parameters", types.Int, []types.Type{types.Int, types.Bool}, "int,bool->int"},
		{"no parameters", types.Void, nil, "->void"},
		{"empty slice", types.Void, []types.Type{}, "->void"},
		{"one parameter", types.Bool, []types.Type{types.String}, "string->bool"},
		{"struct parameter", types.NewStruct("Point"), []types.Type{types.NewStruct("Point"), types.Int, types.Int}, "Point,int,int->Point"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := NewFunction(tt.ret, len(tt.params))
			require.NoError(t, sym.AttachParameters(tt.params))
			assert.Equal(t, tt.expected, sym.String())
			assert.NotContains(t, sym.String(), " ")
		})
	}
}

func TestFunction_ScenarioA(t *testing.T) {
	t.Parallel()
	sym := NewFunction(types.Int, 2)
	require.NoError(t, sym.AttachParameters([]types.Type{types.Int, types.Bool}))
	assert.Equal(t, "int,bool->int", sym.String())
	assert.Same(t, types.Fn, sym.Type(), "a function's own type is the function marker")
}

func TestFunction_ScenarioB(t *testing.T) {
	t.Parallel()
	sym := NewFunction(types.Void, 0)
	require.NoError(t, sym.AttachParameters([]types.Type{}))
	assert.Equal(t, "->void", sym.String())
}

func TestFunction_ParamCountStable(t *testing.T) {
	t.Parallel()
	sym := NewFunction(types.Int, 3)
	fn, ok := sym.Function()
	require.True(t, ok)

	assert.Equal(t, 3, fn.ParamCount())
	assert.False(t, fn.Attached())
	assert.IsType(t, Skeleton{}, fn.State())

	require.NoError(t, fn.AttachParameters([]types.Type{types.Int, types.Int, types.Bool}))
	assert.Equal(t, 3, fn.ParamCount())
	assert.True(t, fn.Attached())
	assert.IsType(t, Signature{}, fn.State())
	assert.Same(t, types.Int, fn.ReturnType())
}

func TestFunction_Skeleton(t *testing.T) {
	t.Parallel()
	sym := NewFunction(types.Int, 2)
	fn, _ := sym.Function()

	_, err := fn.ParamTypes()
	assert.ErrorIs(t, err, ErrParamsUnattached)
	assert.Equal(t, "?,?->int", sym.String())
	assert.Equal(t, "->void", NewFunction(types.Void, 0).String())
}

func TestFunction_AttachErrors(t *testing.T) {
	t.Parallel()

	t.Run("count mismatch", func(t *testing.T) {
		sym := NewFunction(types.Int, 2)
		err := sym.AttachParameters([]types.Type{types.Int})

		var countErr *ParamCountError
		require.True(t, errors.As(err, &countErr))
		assert.Equal(t, 2, countErr.Want)
		assert.Equal(t, 1, countErr.Got)

		fn, _ := sym.Function()
		assert.False(t, fn.Attached(), "a rejected list leaves the skeleton in place")
		require.NoError(t, sym.AttachParameters([]types.Type{types.Int, types.Int}))
	})

	t.Run("attach twice", func(t *testing.T) {
		sym := NewFunction(types.Int, 1)
		require.NoError(t, sym.AttachParameters([]types.Type{types.Bool}))
		err := sym.AttachParameters([]types.Type{types.Int})
		assert.ErrorIs(t, err, ErrParamsAttached)
		assert.Equal(t, "bool->int", sym.String())
	})

	t.Run("nil parameter", func(t *testing.T) {
		sym := NewFunction(types.Int, 2)
		err := sym.AttachParameters([]types.Type{types.Int, nil})
		var nilErr *NilParamError
		require.True(t, errors.As(err, &nilErr))
		assert.Equal(t, 1, nilErr.Index)
	})

	t.Run("not a function", func(t *testing.T) {
		err := NewSymbol(types.Int).AttachParameters(nil)
		assert.ErrorIs(t, err, ErrNotFunction)
	})
}

func TestFunction_ParamTypesAreCopies(t *testing.T) {
	t.Parallel()
	params := []types.Type{types.Int, types.Bool}
	sym := NewFunction(types.Void, 2)
	require.NoError(t, sym.AttachParameters(params))

	params[0] = types.String
	fn, _ := sym.Function()
	got, err := fn.ParamTypes()
	require.NoError(t, err)
	assert.Equal(t, []types.Type{types.Int, types.Bool}, got)

	got[1] = types.String
	assert.Equal(t, "int,bool->void", sym.String())
}

// Test StructInstanceSymbol

func TestStructInstance_ScenarioC(t *testing.T) {
	t.Parallel()
	id := source.NewIdent("Point", source.Position{Filename: "p.yaml", Line: 3, Column: 9})
	sym := NewStructInstance(id)

	inst, ok := sym.StructInstance()
	require.True(t, ok)
	assert.Equal(t, id, inst.StructTypeName())
	assert.Equal(t, "Point", sym.String())
	assert.True(t, types.NewStruct("Point").Equals(sym.Type()))
	assert.Equal(t, KindStructInstance, sym.Kind())
}

func TestStructInstance_Resolve(t *testing.T) {
	t.Parallel()
	global := NewScope(ScopeGlobal, nil)
	fields := NewScope(ScopeStruct, nil)
	require.NoError(t, fields.Insert("x", NewSymbol(types.Int)))
	require.NoError(t, global.Insert("Point", NewStructDefinition(fields)))
	require.NoError(t, global.Insert("count", NewSymbol(types.Int)))
	local := NewScope(ScopeFunction, global)

	inst, _ := NewStructInstance(source.Ident{Name: "Point"}).StructInstance()
	def, err := inst.Resolve(local)
	require.NoError(t, err)
	x, ok := def.Field("x")
	require.True(t, ok)
	assert.Same(t, types.Int, x.Type())

	var unresolved *UnresolvedStructError

	missing, _ := NewStructInstance(source.Ident{Name: "Line"}).StructInstance()
	_, err = missing.Resolve(local)
	require.True(t, errors.As(err, &unresolved))
	assert.Nil(t, unresolved.Found)
	assert.Contains(t, err.Error(), "undeclared struct type Line")

	wrong, _ := NewStructInstance(source.Ident{Name: "count"}).StructInstance()
	_, err = wrong.Resolve(local)
	require.True(t, errors.As(err, &unresolved))
	assert.NotNil(t, unresolved.Found)
	assert.Contains(t, err.Error(), "count is a plain, not a struct type")
}

// Test StructDefinitionSymbol

func TestStructDefinition_ScenarioD(t *testing.T) {
	t.Parallel()
	fields := NewScope(ScopeStruct, nil)
	require.NoError(t, fields.Insert("x", NewSymbol(types.Int)))
	require.NoError(t, fields.Insert("y", NewSymbol(types.Int)))

	sym := NewStructDefinition(fields)
	def, ok := sym.StructDefinition()
	require.True(t, ok)

	x, ok := def.Fields().Lookup("x")
	require.True(t, ok)
	assert.Same(t, types.Int, x.Type())

	assert.Equal(t, "struct-def", sym.String())
	assert.Same(t, types.StructDef, sym.Type())
}

func TestStructDefinition_FieldsMatchTable(t *testing.T) {
	t.Parallel()
	fields := NewScope(ScopeStruct, nil)
	entries := map[string]*Symbol{
		"x":     NewSymbol(types.Int),
		"label": NewSymbol(types.String),
		"next":  NewStructInstance(source.Ident{Name: "Node"}),
	}
	order := []string{"x", "label", "next"}
	for _, name := range order {
		require.NoError(t, fields.Insert(name, entries[name]))
	}

	def, _ := NewStructDefinition(fields).StructDefinition()
	view := def.Fields()

	assert.Equal(t, 3, view.Len())
	assert.Equal(t, order, view.Names())
	view.Each(func(name string, sym *Symbol) bool {
		assert.Same(t, entries[name], sym)
		return true
	})

	visited := 0
	view.Each(func(string, *Symbol) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)

	_, ok := view.Lookup("missing")
	assert.False(t, ok)
}

func TestStructDefinition_SealsFieldTable(t *testing.T) {
	t.Parallel()
	fields := NewScope(ScopeStruct, nil)
	require.NoError(t, fields.Insert("x", NewSymbol(types.Int)))
	def, _ := NewStructDefinition(fields).StructDefinition()

	assert.True(t, fields.Sealed())
	err := fields.Insert("y", NewSymbol(types.Int))
	assert.ErrorIs(t, err, ErrScopeSealed)
	assert.Equal(t, 1, def.Fields().Len())

	names := def.Fields().Names()
	names[0] = "changed"
	assert.Equal(t, []string{"x"}, def.Fields().Names())
}

func TestView_Zero(t *testing.T) {
	t.Parallel()
	var v View
	_, ok := v.Lookup("x")
	assert.False(t, ok)
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Names())
	v.Each(func(string, *Symbol) bool {
		t.Fatal("zero view has no fields")
		return true
	})
}

// Test Scope

func TestNewScope(t *testing.T) {
	t.Parallel()
	parent := NewScope(ScopeGlobal, nil)
	child := NewScope(ScopeBlock, parent)

	assert.Same(t, parent, child.Parent)
	assert.Equal(t, 1, child.Depth)
	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
}

func TestScope_Insert(t *testing.T) {
	t.Parallel()
	scope := NewScope(ScopeGlobal, nil)
	first := NewSymbol(types.Int)

	require.NoError(t, scope.Insert("x", first))

	err := scope.Insert("x", NewSymbol(types.Bool))
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "x", dup.Name)
	assert.Same(t, first, dup.Existing)
	assert.Equal(t, "symbol x already declared as int", err.Error())

	assert.ErrorIs(t, scope.Insert("", NewSymbol(types.Int)), ErrEmptyName)
	assert.ErrorIs(t, scope.Insert("y", nil), ErrNilSymbol)
	assert.Equal(t, 1, scope.Len())
}

func TestScope_Lookup(t *testing.T) {
	t.Parallel()
	global := NewScope(ScopeGlobal, nil)
	local := NewScope(ScopeBlock, global)

	x := NewSymbol(types.Int)
	y := NewSymbol(types.Bool)
	require.NoError(t, global.Insert("x", x))
	require.NoError(t, local.Insert("y", y))

	found, ok := local.Lookup("y")
	require.True(t, ok)
	assert.Same(t, y, found)

	found, ok = local.Lookup("x")
	require.True(t, ok, "expected to find global symbol from local scope")
	assert.Same(t, x, found)

	_, ok = local.Lookup("z")
	assert.False(t, ok)

	_, ok = local.LookupLocal("x")
	assert.False(t, ok, "LookupLocal must not search parents")
}

func TestScope_Shadowing(t *testing.T) {
	t.Parallel()
	global := NewScope(ScopeGlobal, nil)
	local := NewScope(ScopeFunction, global)
	require.NoError(t, global.Insert("x", NewSymbol(types.Int)))
	require.NoError(t, local.Insert("x", NewSymbol(types.Bool)))

	found, _ := local.Lookup("x")
	assert.Equal(t, "bool", found.String())
	found, _ = global.Lookup("x")
	assert.Equal(t, "int", found.String())
}

func TestScope_NamesInOrder(t *testing.T) {
	t.Parallel()
	scope := NewScope(ScopeGlobal, nil)
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, scope.Insert(name, NewSymbol(types.Int)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, scope.Names())
}

func TestScope_Dump(t *testing.T) {
	t.Parallel()
	global := NewScope(ScopeGlobal, nil)
	fields := NewScope(ScopeStruct, nil)
	require.NoError(t, fields.Insert("x", NewSymbol(types.Int)))
	require.NoError(t, fields.Insert("y", NewSymbol(types.Int)))
	require.NoError(t, global.Insert("Point", NewStructDefinition(fields)))

	add := NewFunction(types.Int, 2)
	require.NoError(t, add.AttachParameters([]types.Type{types.Int, types.Int}))
	require.NoError(t, global.Insert("add", add))

	body := NewScope(ScopeFunction, global)
	require.NoError(t, body.Insert("p", NewStructInstance(source.Ident{Name: "Point"})))

	expected := strings.Join([]string{
		"global scope (depth 0, 2 symbols)",
		"  Point: struct-def",
		"    struct scope (depth 0, 2 symbols)",
		"      x: int",
		"      y: int",
		"  add: int,int->int",
		"  function scope (depth 1, 1 symbols)",
		"    p: Point",
		"",
	}, "\n")
	assert.Equal(t, expected, global.Dump())
}

func TestIndependentScopesInParallel(t *testing.T) {
	t.Parallel()
	for i := 0; i < 4; i++ {
		t.Run("worker", func(t *testing.T) {
			t.Parallel()
			scope := NewScope(ScopeGlobal, nil)
			fn := NewFunction(types.Bool, 1)
			require.NoError(t, fn.AttachParameters([]types.Type{types.Int}))
			require.NoError(t, scope.Insert("f", fn))
			found, ok := scope.Lookup("f")
			require.True(t, ok)
			assert.Equal(t, "int->bool", found.String())
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlain, "plain"},
		{KindFunction, "function"},
		{KindStructInstance, "struct-instance"},
		{KindStructDefinition, "struct-definition"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestScopeKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     ScopeKind
		expected string
	}{
		{ScopeGlobal, "global"},
		{ScopeFunction, "function"},
		{ScopeBlock, "block"},
		{ScopeStruct, "struct"},
		{ScopeKind(9), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
