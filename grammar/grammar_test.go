package grammar

import "testing"

func TestParseAcceptsWellFormedModules(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{
			caption: "minimal module",
			src:     `M DEFINITIONS ::= BEGIN A ::= INTEGER END`,
		},
		{
			caption: "extensible sequence with an extension addition",
			src: `M DEFINITIONS ::= BEGIN
				T ::= SEQUENCE { a INTEGER, ..., b BOOLEAN }
			END`,
		},
		{
			caption: "object identifier value",
			src: `M DEFINITIONS ::= BEGIN
				id OBJECT IDENTIFIER ::= { iso standard 8571 }
			END`,
		},
		{
			caption: "information object class with syntax",
			src: `M DEFINITIONS ::= BEGIN
				OPERATION ::= CLASS {
					&code INTEGER UNIQUE,
					&Type OPTIONAL
				} WITH SYNTAX { CODE &code TYPE &Type }
			END`,
		},
		{
			caption: "parameterized type assignment",
			src: `M DEFINITIONS ::= BEGIN
				Wrapped{T} ::= SEQUENCE { value T }
			END`,
		},
		{
			caption: "constrained integer type",
			src:     `M DEFINITIONS ::= BEGIN T ::= INTEGER (0..127) END`,
		},
		{
			caption: "set of with mid-position size constraint",
			src:     `M DEFINITIONS ::= BEGIN T ::= SET (SIZE(1..4)) OF INTEGER END`,
		},
		{
			caption: "imports and exports",
			src: `M DEFINITIONS ::= BEGIN
				EXPORTS A;
				IMPORTS B FROM N;
				A ::= B
			END`,
		},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if _, err := g.Parse(tt.src); err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
		})
	}
}

func TestParseRejectsMalformedModules(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{"missing END", `M DEFINITIONS ::= BEGIN A ::= INTEGER`},
		{"missing assigned type", `M DEFINITIONS ::= BEGIN A ::= END`},
		{"reserved word used as a type reference", `M DEFINITIONS ::= BEGIN SEQUENCE ::= INTEGER END`},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if _, err := g.Parse(tt.src); err == nil {
				t.Fatalf("expected a syntax error")
			}
		})
	}
}

func TestNewIsASingleton(t *testing.T) {
	if New() != New() {
		t.Fatal("New must return the same cached Grammar instance")
	}
}
