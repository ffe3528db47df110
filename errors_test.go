// errors_test.go
package brio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func Test_Errors_Runtime_Snippet(t *testing.T) {
	src := "var a = 1;\nprint b;\n"
	stmts, diags, err := Parse(src)
	if err != nil || len(diags) != 0 {
		t.Fatalf("parse: %v %v", err, diags)
	}
	var out bytes.Buffer
	rerr := NewInterpreter(&out).Run(stmts)
	if rerr == nil {
		t.Fatalf("want runtime error")
	}

	msg := WrapErrorWithSource(rerr, src).Error()
	if !strings.Contains(msg, "RUNTIME ERROR at 2:7: undefined variable: b") {
		t.Fatalf("bad header: %q", msg)
	}
	if !strings.Contains(msg, "   2 | print b;") {
		t.Fatalf("missing source line: %q", msg)
	}
	if !strings.Contains(msg, "     |       ^") {
		t.Fatalf("missing caret: %q", msg)
	}
	// one line of context before the error line
	if !strings.Contains(msg, "   1 | var a = 1;") {
		t.Fatalf("missing context line: %q", msg)
	}
}

func Test_Errors_Parse_Snippet(t *testing.T) {
	src := "1 = 2;"
	_, diags, err := Parse(src)
	if err != nil || len(diags) != 1 {
		t.Fatalf("parse: %v %v", err, diags)
	}
	msg := WrapErrorWithSource(diags[0], src).Error()
	if !strings.Contains(msg, "PARSE ERROR at 1:3: invalid assignment target") {
		t.Fatalf("bad header: %q", msg)
	}
}

func Test_Errors_Lex_Snippet_With_Name(t *testing.T) {
	src := "var a = @;"
	_, _, err := Parse(src)
	if err == nil {
		t.Fatalf("want lex error")
	}
	msg := WrapErrorWithName(err, "demo.brio", src).Error()
	if !strings.Contains(msg, "LEXICAL ERROR in demo.brio at 1:9") {
		t.Fatalf("bad header: %q", msg)
	}
}

func Test_Errors_Foreign_Errors_Pass_Through(t *testing.T) {
	boom := errors.New("boom")
	if got := WrapErrorWithSource(boom, "anything"); got != boom {
		t.Fatalf("foreign error must be returned unchanged, got %v", got)
	}
}
