// Package manifest loads declarations from a YAML manifest into an ast.File.
//
// A manifest stands in for parsed source. Each declaration is written the way
// it would appear in the language, one per list entry:
//
//	file: shapes.cmm
//	decls:
//	  - struct: Point
//	    fields: [int x, int y]
//	  - var: struct Point origin
//	  - func: int add
//	    params: [int a, int b]
//	    locals: [int sum]
//
// Names keep the line and column they were written at, so diagnostics point
// into the manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hassan/semcore/internal/ast"
	"github.com/hassan/semcore/internal/source"
)

// Load reads and parses the manifest at path.
func Load(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse converts manifest text into a declaration tree. filename is used for
// positions when the manifest does not name its source file.
func Parse(filename string, data []byte) (*ast.File, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.File != "" {
		filename = doc.File
	}

	file := &ast.File{Name: filename, Decls: make([]ast.Decl, 0, len(doc.Decls))}
	for _, raw := range doc.Decls {
		decl, err := raw.build(filename)
		if err != nil {
			return nil, err
		}
		file.Decls = append(file.Decls, decl)
	}
	return file, nil
}

type document struct {
	File  string    `yaml:"file"`
	Decls []rawDecl `yaml:"decls"`
}

// rawDecl is one entry of the decls list before validation.
type rawDecl struct {
	Var    *scalar  `yaml:"var"`
	Func   *scalar  `yaml:"func"`
	Struct *scalar  `yaml:"struct"`
	Fields []scalar `yaml:"fields"`
	Params []scalar `yaml:"params"`
	Locals []scalar `yaml:"locals"`

	line, column int
}

func (r *rawDecl) UnmarshalYAML(value *yaml.Node) error {
	type plain rawDecl
	if err := value.Decode((*plain)(r)); err != nil {
		return err
	}
	r.line, r.column = value.Line, value.Column
	return nil
}

// scalar is a YAML string that remembers where it was written.
type scalar struct {
	text         string
	line, column int
}

func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a declaration string", value.Line)
	}
	s.text = value.Value
	s.line, s.column = value.Line, value.Column
	if value.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		s.column++
	}
	return nil
}

// word is one whitespace-separated token of a scalar with its position.
type word struct {
	text string
	pos  source.Position
}

func (s scalar) words(filename string) []word {
	var words []word
	start := -1
	for i := 0; i <= len(s.text); i++ {
		if i < len(s.text) && s.text[i] != ' ' && s.text[i] != '\t' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, word{
				text: s.text[start:i],
				pos:  source.Position{Filename: filename, Line: s.line, Column: s.column + start},
			})
			start = -1
		}
	}
	return words
}

func (r rawDecl) build(filename string) (ast.Decl, error) {
	at := source.Position{Filename: filename, Line: r.line, Column: r.column}

	set := 0
	for _, present := range []bool{r.Var != nil, r.Func != nil, r.Struct != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: declaration needs exactly one of var, func or struct", at)
	}

	switch {
	case r.Var != nil:
		if len(r.Fields) > 0 || len(r.Params) > 0 || len(r.Locals) > 0 {
			return nil, fmt.Errorf("%s: var declarations take no fields, params or locals", at)
		}
		return varDecl(filename, *r.Var)

	case r.Func != nil:
		if len(r.Fields) > 0 {
			return nil, fmt.Errorf("%s: func declarations take no fields", at)
		}
		return funcDecl(filename, r)

	default:
		if len(r.Params) > 0 || len(r.Locals) > 0 {
			return nil, fmt.Errorf("%s: struct declarations take no params or locals", at)
		}
		return structDecl(filename, at, r)
	}
}

func varDecl(filename string, s scalar) (*ast.VarDecl, error) {
	typ, name, err := typedName(filename, s)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Type: typ, Name: name}, nil
}

func varDecls(filename string, list []scalar) ([]*ast.VarDecl, error) {
	decls := make([]*ast.VarDecl, 0, len(list))
	for _, s := range list {
		decl, err := varDecl(filename, s)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func funcDecl(filename string, r rawDecl) (*ast.FuncDecl, error) {
	ret, name, err := typedName(filename, *r.Func)
	if err != nil {
		return nil, err
	}
	formals, err := varDecls(filename, r.Params)
	if err != nil {
		return nil, err
	}
	locals, err := varDecls(filename, r.Locals)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Return: ret, Name: name, Formals: formals, Locals: locals}, nil
}

func structDecl(filename string, at source.Position, r rawDecl) (*ast.StructDecl, error) {
	words := r.Struct.words(filename)
	if len(words) != 1 {
		return nil, fmt.Errorf("%s: struct name must be a single identifier", at)
	}
	fields, err := varDecls(filename, r.Fields)
	if err != nil {
		return nil, err
	}
	return &ast.StructDecl{
		StructPos: at,
		Name:      ast.NewIdent(words[0].text, words[0].pos),
		Fields:    fields,
	}, nil
}

var errDeclForm = errors.New(`want "type name" or "struct Type name"`)

// typedName splits "int x" or "struct Point p" into a type and a name.
func typedName(filename string, s scalar) (*ast.TypeNode, *ast.IdentNode, error) {
	words := s.words(filename)
	at := source.Position{Filename: filename, Line: s.line, Column: s.column}

	switch {
	case len(words) == 2 && words[0].text != "struct":
		typ := &ast.TypeNode{Name: words[0].text, NamePos: words[0].pos}
		return typ, ast.NewIdent(words[1].text, words[1].pos), nil

	case len(words) == 3 && words[0].text == "struct":
		typ := &ast.TypeNode{Name: words[1].text, Struct: true, NamePos: words[1].pos}
		return typ, ast.NewIdent(words[2].text, words[2].pos), nil

	default:
		return nil, nil, fmt.Errorf("%s: %q: %w", at, strings.TrimSpace(s.text), errDeclForm)
	}
}
