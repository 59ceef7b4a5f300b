// Package symindex persists bound symbols in SQLite so tools can query a
// file's bindings without re-running analysis.
package symindex

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hassan/semcore/internal/semantic/types"
	"github.com/hassan/semcore/internal/symtab"
)

// Row is one indexed symbol.
type Row struct {
	File        string
	Scope       string // "" for the global scope, the struct name for fields
	Name        string
	Kind        string
	Type        string
	TypeKind    string
	Description string
	StructType  string // struct instances only
	ParamCount  int    // functions only
	IndexedAt   time.Time
}

// Qualified returns "scope.name", or just the name for globals.
func (r Row) Qualified() string {
	if r.Scope == "" {
		return r.Name
	}
	return r.Scope + "." + r.Name
}

// Store is a SQLite-backed symbol index.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the index at path. ":memory:" gives a private
// in-memory index.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, now: time.Now}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS symbols (
		file TEXT NOT NULL,
		scope TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		type TEXT NOT NULL,
		type_kind TEXT NOT NULL,
		description TEXT NOT NULL,
		struct_type TEXT,
		param_count INTEGER,
		indexed_at TIMESTAMP,
		PRIMARY KEY (file, scope, name)
	);
	CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScope replaces everything indexed for file with the symbols of scope.
// Struct definitions contribute their fields under the struct's name.
// It returns the number of rows written.
func (s *Store) SaveScope(file string, scope *symtab.Scope) (int, error) {
	if scope == nil {
		return 0, errors.New("scope required")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM symbols WHERE file = ?`, file); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
	INSERT INTO symbols (
		file, scope, name, kind, type, type_kind, description,
		struct_type, param_count, indexed_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	indexedAt := s.now().UTC()
	written := 0
	var insert func(scopeName, name string, sym *symtab.Symbol) error
	insert = func(scopeName, name string, sym *symtab.Symbol) error {
		var structType sql.NullString
		var paramCount sql.NullInt64
		if inst, ok := sym.StructInstance(); ok {
			structType = sql.NullString{String: inst.StructTypeName().Name, Valid: true}
		}
		if fn, ok := sym.Function(); ok {
			paramCount = sql.NullInt64{Int64: int64(fn.ParamCount()), Valid: true}
		}
		if _, err := stmt.Exec(file, scopeName, name, sym.Kind().String(),
			sym.Type().String(), types.KindOf(sym.Type()).String(), sym.String(),
			structType, paramCount, indexedAt); err != nil {
			return fmt.Errorf("index %s: %w", name, err)
		}
		written++

		if def, ok := sym.StructDefinition(); ok {
			var fieldErr error
			def.Fields().Each(func(field string, fieldSym *symtab.Symbol) bool {
				fieldErr = insert(name, field, fieldSym)
				return fieldErr == nil
			})
			return fieldErr
		}
		return nil
	}

	for _, name := range scope.Names() {
		sym, _ := scope.LookupLocal(name)
		if err := insert("", name, sym); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// Lookup returns every indexed symbol called name, across files and scopes.
func (s *Store) Lookup(name string) ([]Row, error) {
	return s.query(`WHERE name = ? ORDER BY file, scope`, name)
}

// File returns the symbols indexed for file, globals first.
func (s *Store) File(file string) ([]Row, error) {
	return s.query(`WHERE file = ? ORDER BY scope, rowid`, file)
}

// DeleteFile removes a file's symbols.
func (s *Store) DeleteFile(file string) error {
	_, err := s.db.Exec(`DELETE FROM symbols WHERE file = ?`, file)
	return err
}

func (s *Store) query(where string, arg any) ([]Row, error) {
	rows, err := s.db.Query(`
	SELECT file, scope, name, kind, type, type_kind, description,
		struct_type, param_count, indexed_at
	FROM symbols `+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		var structType sql.NullString
		var paramCount sql.NullInt64
		if err := rows.Scan(&row.File, &row.Scope, &row.Name, &row.Kind, &row.Type,
			&row.TypeKind, &row.Description, &structType, &paramCount, &row.IndexedAt); err != nil {
			return nil, err
		}
		row.StructType = structType.String
		row.ParamCount = int(paramCount.Int64)
		result = append(result, row)
	}
	return result, rows.Err()
}
