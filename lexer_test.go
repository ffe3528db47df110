// lexer_test.go
package brio

import (
	"reflect"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Punctuation_And_Operators(t *testing.T) {
	wantTypes(t, "( ) { } ; + - * / % < >", []TokenType{
		LROUND, RROUND, LCURLY, RCURLY, SEMI,
		PLUS, MINUS, MULT, DIV, MOD, LESS, GREATER,
	})
}

func Test_Lexer_Assign_Vs_Equality(t *testing.T) {
	wantTypes(t, "a = b == c", []TokenType{ID, ASSIGN, ID, EQ, ID})
	// maximal munch: "===" is "==" then "="
	wantTypes(t, "===", []TokenType{EQ, ASSIGN})
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, "42 007 0", []TokenType{NUMBER, NUMBER, NUMBER})
	if got[0].Literal.(float64) != 42 {
		t.Fatalf("want 42, got %v", got[0].Literal)
	}
	if got[1].Literal.(float64) != 7 {
		t.Fatalf("want 7, got %v", got[1].Literal)
	}
	if got[0].Lexeme != "42" {
		t.Fatalf("want lexeme %q, got %q", "42", got[0].Lexeme)
	}
}

func Test_Lexer_No_Decimal_Point_Support(t *testing.T) {
	// digits only: '.' is not part of the alphabet
	_, err := NewLexer("1.5").Scan()
	if err == nil {
		t.Fatalf("want lex error for decimal point, got none")
	}
	if !strings.Contains(err.Error(), "unexpected character") {
		t.Fatalf("want unexpected-character error, got %v", err)
	}
}

func Test_Lexer_Keywords_And_Identifiers(t *testing.T) {
	wantTypes(t, "if else while var print", []TokenType{IF, ELSE, WHILE, VAR, PRINT})
	// keyword prefixes stay identifiers
	wantTypes(t, "ifx printer _tmp x1", []TokenType{ID, ID, ID, ID})
}

func Test_Lexer_Whitespace_Is_Discarded(t *testing.T) {
	wantTypes(t, "\t var\r\n x \n=\n1 ;", []TokenType{VAR, ID, ASSIGN, NUMBER, SEMI})
}

func Test_Lexer_Positions(t *testing.T) {
	ts := toks(t, "var x;\nprint x;")
	// "print" starts line 2, column 0
	if ts[3].Type != PRINT || ts[3].Line != 2 || ts[3].Col != 0 {
		t.Fatalf("want print at 2:0, got %+v", ts[3])
	}
	if ts[1].Type != ID || ts[1].Line != 1 || ts[1].Col != 4 {
		t.Fatalf("want x at 1:4, got %+v", ts[1])
	}
}

func Test_Lexer_Unexpected_Character_Is_Fatal(t *testing.T) {
	_, err := NewLexer("var a = 1 @ 2;").Scan()
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %T (%v)", err, err)
	}
	if !strings.Contains(le.Msg, "unexpected character") {
		t.Fatalf("unexpected message: %q", le.Msg)
	}
	if le.Line != 1 {
		t.Fatalf("want line 1, got %d", le.Line)
	}
}

func Test_Lexer_EOF_Terminates_Stream(t *testing.T) {
	ts := toks(t, "x")
	if len(ts) != 2 || ts[1].Type != EOF {
		t.Fatalf("want [ID EOF], got %v", typesWithoutEOF(ts))
	}
	if len(toks(t, "")) != 1 {
		t.Fatalf("empty source should yield only EOF")
	}
}
