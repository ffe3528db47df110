// errors.go — caret-snippet rendering for user-facing diagnostics.
//
// WrapErrorWithSource recognizes *LexError, *ParseError and *RuntimeError
// and returns an error whose message is a multi-line snippet: a header with
// the 1-based line:column and message, one line of context either side, and
// a caret under the offending column. Any other error is returned as-is.
//
//	PARSE ERROR at 2:9: expect ';' after value
//
//	   1 | var x = 1;
//	   2 | print x
//	     |         ^
package brio

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource renders err against src. Lex/parse columns are
// 0-based internally and shown 1-based; runtime columns are already 1-based.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label in the
// header ("... in <name> at ...").
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the annotated extract. Coordinates are treated as 1-based
// and clamped to the source bounds so rendering never goes out of range.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
