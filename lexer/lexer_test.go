package lexer

import (
	"testing"
)

func TestLexerAll(t *testing.T) {
	tok := func(kind Kind, text string) Token {
		return Token{Kind: kind, Text: text}
	}

	tests := []struct {
		caption string
		src     string
		want    []Token
	}{
		{
			caption: "empty source yields only EOF",
			src:     "",
			want:    []Token{tok(KindEOF, "")},
		},
		{
			caption: "identifiers and type references",
			src:     "myValue MyType",
			want: []Token{
				tok(KindIdentifier, "myValue"),
				tok(KindTypeRef, "MyType"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "hyphenated identifier",
			src:     "Foo-Bar",
			want: []Token{
				tok(KindTypeRef, "Foo-Bar"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "trailing hyphen is not consumed",
			src:     "Foo-",
			want: []Token{
				tok(KindTypeRef, "Foo"),
				tok(KindPunct, "-"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "negative and positive numbers",
			src:     "-17 42",
			want: []Token{
				tok(KindNumber, "-17"),
				tok(KindNumber, "42"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "bstring",
			src:     "'1010'B",
			want: []Token{
				tok(KindBString, "1010"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "hstring with embedded whitespace",
			src:     "'DE AD'H",
			want: []Token{
				tok(KindHString, "DE AD"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "bare quote used for named-bit list punctuation",
			src:     "'x",
			want: []Token{
				tok(KindPunct, "'"),
				tok(KindIdentifier, "x"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "cstring with doubled-quote escape",
			src:     `"a""b"`,
			want: []Token{
				tok(KindCString, `a"b`),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "unterminated cstring becomes invalid",
			src:     `"abc`,
			want: []Token{
				tok(KindInvalid, "abc"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "multi-char punctuation tried before single-char prefixes",
			src:     "::= ... [[ ]] ..",
			want: []Token{
				tok(KindAssign, "::="),
				tok(KindEllipsis, "..."),
				tok(KindDblLBracket, "[["),
				tok(KindDblRBracket, "]]"),
				tok(KindRange, ".."),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "single line comment runs to end of line",
			src:     "A -- comment\nB",
			want: []Token{
				tok(KindTypeRef, "A"),
				tok(KindTypeRef, "B"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "comment closed by a second --",
			src:     "A --comment-- B",
			want: []Token{
				tok(KindTypeRef, "A"),
				tok(KindTypeRef, "B"),
				tok(KindEOF, ""),
			},
		},
		{
			caption: "unrecognized character becomes invalid",
			src:     "A # B",
			want: []Token{
				tok(KindTypeRef, "A"),
				tok(KindInvalid, "#"),
				tok(KindTypeRef, "B"),
				tok(KindEOF, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := New(tt.src).All()
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected token count; want: %d, got: %d (%v)", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if got[i].Kind != w.Kind || got[i].Text != w.Text {
					t.Fatalf("token %d mismatch; want: %s, got: %s", i, w, got[i])
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	toks := New("A\nB").All()
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 0 {
		t.Fatalf("unexpected position for first token: %+v", toks[0].Pos)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 0 {
		t.Fatalf("unexpected position for second token: %+v", toks[1].Pos)
	}
}
