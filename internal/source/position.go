// Package source describes where names were written.
//
// Declarations reach the semantic phase already parsed, so all this package
// carries is a location and the identifiers that sit at those locations.
package source

import "strconv"

// Position represents a location in a declaration source.
//
// Position is a value type. It is small, immutable once created, and the zero
// value doubles as "no position".
type Position struct {
	// Filename is the name of the file the declaration came from.
	Filename string

	// Line is the 1-based line number (0 means unknown).
	Line int

	// Column is the 1-based column number.
	Column int
}

// String returns "filename:line:column", the GCC/Clang form editors can link.
func (p Position) String() string {
	return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid returns true if the position has a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes before other in the same file.
// Positions from different files are never ordered.
func (p Position) Before(other Position) bool {
	if p.Filename != other.Filename {
		return false
	}
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Ident is a name together with the place it was written.
//
// Symbols that refer to other declarations by name (a struct instance naming
// its struct type) keep an Ident rather than a pointer, so the target can be
// looked up in whichever scope is current at use time.
type Ident struct {
	Name string
	Pos  Position
}

// NewIdent creates an identifier at pos.
func NewIdent(name string, pos Position) Ident {
	return Ident{Name: name, Pos: pos}
}

// String returns the bare name.
func (id Ident) String() string { return id.Name }

// Equal compares names only; two mentions of Point are the same reference.
func (id Ident) Equal(other Ident) bool { return id.Name == other.Name }
