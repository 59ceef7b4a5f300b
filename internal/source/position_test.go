package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"valid position", Position{Filename: "point.yaml", Line: 42, Column: 15}, "point.yaml:42:15"},
		{"zero position", Position{}, ":0:0"},
		{"line 1 column 1", Position{Filename: "main.yaml", Line: 1, Column: 1}, "main.yaml:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pos.String())
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.False(t, Position{}.IsValid())
	assert.False(t, Position{Filename: "a.yaml", Column: 3}.IsValid())
	assert.True(t, Position{Filename: "a.yaml", Line: 1, Column: 1}.IsValid())
}

func TestPosition_Before(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected bool
	}{
		{"earlier line", Position{"f", 1, 9}, Position{"f", 2, 1}, true},
		{"same line earlier column", Position{"f", 3, 2}, Position{"f", 3, 5}, true},
		{"same position", Position{"f", 3, 2}, Position{"f", 3, 2}, false},
		{"later line", Position{"f", 4, 1}, Position{"f", 3, 9}, false},
		{"different files", Position{"f", 1, 1}, Position{"g", 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Before(tt.b))
		})
	}
}

func TestIdent(t *testing.T) {
	a := NewIdent("Point", Position{"f", 1, 1})
	b := NewIdent("Point", Position{"f", 7, 3})

	assert.Equal(t, "Point", a.String())
	assert.True(t, a.Equal(b), "identifiers compare by name")
	assert.False(t, a.Equal(NewIdent("Line", a.Pos)))
}
