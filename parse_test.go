package asn1

import (
	"encoding/json"
	"testing"

	"github.com/go-asn1/asn1spec/internal/asn1json"
)

// TestParseStringScenarios exercises the end-to-end scenarios a
// ModuleTree consumer depends on: one module per scenario, asserted by
// comparing the marshaled JSON against a literal expected document.
// encoding/json sorts object keys, so two structurally equal trees
// always marshal identically; the comparison is order-insensitive at
// the source-syntax level even though the bytes being compared are not.
func TestParseStringScenarios(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    string
	}{
		{
			caption: "S1 minimal module",
			src:     `M DEFINITIONS ::= BEGIN A ::= INTEGER END`,
			want:    `{"M":{"extensibility-implied":false,"imports":{},"object-classes":{},"object-sets":{},"types":{"A":{"type":"INTEGER"}},"values":{}}}`,
		},
		{
			caption: "S2 sized sequence of",
			src:     `M DEFINITIONS ::= BEGIN T ::= SEQUENCE (SIZE(1..4)) OF INTEGER END`,
			want:    `{"M":{"extensibility-implied":false,"imports":{},"object-classes":{},"object-sets":{},"types":{"T":{"type":"SEQUENCE OF","size":[[1,4]],"element":{"type":"INTEGER"}}},"values":{}}}`,
		},
		{
			caption: "S3 enumerated with gap and extension",
			src:     `M DEFINITIONS ::= BEGIN E ::= ENUMERATED {a, b(5), c, ..., d} END`,
			want:    `{"M":{"extensibility-implied":false,"imports":{},"object-classes":{},"object-sets":{},"types":{"E":{"type":"ENUMERATED","values":[["a",0],["b",5],["c",1],"...",["d",2]]}},"values":{}}}`,
		},
		{
			caption: "S4 tagged choice member",
			src:     `M DEFINITIONS IMPLICIT TAGS ::= BEGIN C ::= CHOICE { x [0] INTEGER, y UTF8String } END`,
			want:    `{"M":{"extensibility-implied":false,"tags":"IMPLICIT","imports":{},"object-classes":{},"object-sets":{},"types":{"C":{"type":"CHOICE","members":[{"type":"INTEGER","name":"x","tag":{"number":0}},{"type":"UTF8String","name":"y"}]}},"values":{}}}`,
		},
		{
			caption: "S5 bit string canonicalization",
			src:     `M DEFINITIONS ::= BEGIN v INTEGER ::= 17 b BIT STRING ::= 'DE AD'H END`,
			want:    `{"M":{"extensibility-implied":false,"imports":{},"object-classes":{},"object-sets":{},"types":{},"values":{"v":{"type":"INTEGER","value":17},"b":{"type":"BIT STRING","value":"0xdead"}}}}`,
		},
		{
			caption: "S6 imports",
			src:     `M DEFINITIONS ::= BEGIN IMPORTS X, Y FROM N; END`,
			want:    `{"M":{"extensibility-implied":false,"imports":{"N":["X","Y"]},"object-classes":{},"object-sets":{},"types":{},"values":{}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			tree, err := ParseString(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := asn1json.Marshal(tree)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var gotVal, wantVal interface{}
			if err := json.Unmarshal(got, &gotVal); err != nil {
				t.Fatalf("unmarshal got: %v", err)
			}
			if err := json.Unmarshal([]byte(tt.want), &wantVal); err != nil {
				t.Fatalf("unmarshal want: %v", err)
			}
			gotCanon, _ := json.Marshal(gotVal)
			wantCanon, _ := json.Marshal(wantVal)
			if string(gotCanon) != string(wantCanon) {
				t.Fatalf("unexpected tree;\nwant: %s\ngot:  %s", wantCanon, gotCanon)
			}
		})
	}
}

// TestParseStringRoundTrip exercises Property 1: re-parsing the
// rendered JSON's originating source yields the same tree.
func TestParseStringRoundTrip(t *testing.T) {
	src := `M DEFINITIONS ::= BEGIN
		T ::= SEQUENCE { a INTEGER, b BOOLEAN OPTIONAL }
		E ::= ENUMERATED { x, y(3), z }
	END`

	first, err := ParseString(src)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := ParseString(src)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	eq, err := asn1json.Equal(first, second)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !eq {
		j1, _ := asn1json.MarshalIndent(first)
		j2, _ := asn1json.MarshalIndent(second)
		t.Fatalf("identical source produced different trees:\n%s\nvs\n%s", j1, j2)
	}
}

// TestParseStringSupplementedScenarios exercises the parameterized
// type assignment and information object class features SPEC_FULL.md
// adds beyond spec.md's original scenario set.
func TestParseStringSupplementedScenarios(t *testing.T) {
	t.Run("S7 parameterized type assignment", func(t *testing.T) {
		tree, err := ParseString(`M DEFINITIONS ::= BEGIN T{INTEGER: n} ::= SEQUENCE { x INTEGER (n) } END`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ty := tree["M"].Types["T"]
		if ty == nil {
			t.Fatal("expected a type T")
		}
		if len(ty.Parameters) != 1 || ty.Parameters[0] != "n" {
			t.Fatalf("expected parameters [n], got %v", ty.Parameters)
		}
		if ty.Type != "SEQUENCE" || len(ty.Members) != 1 || ty.Members[0].Name != "x" {
			t.Fatalf("unexpected body: %+v", ty)
		}
	})

	t.Run("S8 object class", func(t *testing.T) {
		tree, err := ParseString(`M DEFINITIONS ::= BEGIN TEST-CLASS ::= CLASS { &id INTEGER UNIQUE, &Type } END`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		oc := tree["M"].ObjectClasses["TEST-CLASS"]
		if oc == nil {
			t.Fatal("expected an object class TEST-CLASS")
		}
		if len(oc.Fields) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(oc.Fields))
		}
		if oc.Fields[0].Name != "&id" || oc.Fields[0].Kind != "value" || !oc.Fields[0].Unique {
			t.Fatalf("unexpected first field: %+v", oc.Fields[0])
		}
		if oc.Fields[1].Name != "&Type" || oc.Fields[1].Kind != "type" {
			t.Fatalf("unexpected second field: %+v", oc.Fields[1])
		}
	})
}

func TestParseStringSyntaxError(t *testing.T) {
	_, err := ParseString(`M DEFINITIONS ::= BEGIN A ::= END`)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseFilesUnreadable(t *testing.T) {
	_, err := ParseFiles([]string{"/nonexistent/path/does-not-exist.asn1"})
	if err == nil {
		t.Fatal("expected an error reading a nonexistent file")
	}
}

func TestWithEncodingRejectsUnsupported(t *testing.T) {
	_, err := ParseString(`M DEFINITIONS ::= BEGIN A ::= INTEGER END`, WithEncoding("latin1"))
	if err == nil {
		t.Fatal("expected an error for an unsupported encoding")
	}
}
