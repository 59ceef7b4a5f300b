package symtab

// View is a read-only window onto a field table owned by a struct definition.
// It exposes lookups and iteration only; there is no way to insert through it.
type View struct {
	scope *Scope
}

// Lookup finds a field by name. Enclosing scopes are not searched.
func (v View) Lookup(name string) (*Symbol, bool) {
	if v.scope == nil {
		return nil, false
	}
	return v.scope.LookupLocal(name)
}

// Len returns the number of fields.
func (v View) Len() int {
	if v.scope == nil {
		return 0
	}
	return v.scope.Len()
}

// Names returns the field names in declaration order.
func (v View) Names() []string {
	if v.scope == nil {
		return nil
	}
	return v.scope.Names()
}

// Each calls fn for every field in declaration order, stopping early if fn
// returns false.
func (v View) Each(fn func(name string, sym *Symbol) bool) {
	if v.scope == nil {
		return
	}
	for _, name := range v.scope.names {
		if !fn(name, v.scope.symbols[name]) {
			return
		}
	}
}
