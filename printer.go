// printer.go — canonical source rendering of a parsed program.
//
// Format is deterministic and idempotent: Format(parse(Format(x))) ==
// Format(x). Branch and loop bodies are always brace-wrapped; since blocks
// introduce no scope, wrapping a single-statement body changes nothing
// observable.
package brio

import (
	"fmt"
	"strings"
)

// Format renders statements as canonical Brio source, one statement per
// line, indented with four spaces per block level.
func Format(stmts []Stmt) string {
	p := &printer{}
	for _, st := range stmts {
		p.stmt(st)
	}
	return p.b.String()
}

// FormatExpr renders a single expression with minimal parentheses.
func FormatExpr(e Expr) string { return exprPrec(e, 0) }

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) pad() {
	p.b.WriteString(strings.Repeat("    ", p.indent))
}

func (p *printer) nl() { p.b.WriteByte('\n') }

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *VarStmt:
		p.pad()
		if s.Init != nil {
			fmt.Fprintf(&p.b, "var %s = %s;", s.Name.Lexeme, FormatExpr(s.Init))
		} else {
			fmt.Fprintf(&p.b, "var %s;", s.Name.Lexeme)
		}
		p.nl()
	case *PrintStmt:
		p.pad()
		fmt.Fprintf(&p.b, "print %s;", FormatExpr(s.Expr))
		p.nl()
	case *ExprStmt:
		p.pad()
		fmt.Fprintf(&p.b, "%s;", FormatExpr(s.Expr))
		p.nl()
	case *BlockStmt:
		p.pad()
		p.braced(s)
		p.nl()
	case *IfStmt:
		p.pad()
		p.ifChain(s)
		p.nl()
	case *WhileStmt:
		p.pad()
		fmt.Fprintf(&p.b, "while (%s) ", FormatExpr(s.Cond))
		p.braced(s.Body)
		p.nl()
	}
}

func (p *printer) ifChain(s *IfStmt) {
	fmt.Fprintf(&p.b, "if (%s) ", FormatExpr(s.Cond))
	p.braced(s.Then)
	for s.Else != nil {
		next, ok := s.Else.(*IfStmt)
		if !ok {
			p.b.WriteString(" else ")
			p.braced(s.Else)
			return
		}
		fmt.Fprintf(&p.b, " else if (%s) ", FormatExpr(next.Cond))
		p.braced(next.Then)
		s = next
	}
}

// braced renders st as a braced body. A BlockStmt contributes its
// statements; any other statement becomes a one-statement body.
func (p *printer) braced(st Stmt) {
	p.b.WriteString("{\n")
	p.indent++
	if blk, ok := st.(*BlockStmt); ok {
		for _, inner := range blk.Stmts {
			p.stmt(inner)
		}
	} else {
		p.stmt(st)
	}
	p.indent--
	p.pad()
	p.b.WriteByte('}')
}

// precedence levels for paren minimization
const (
	precAssign = iota + 1
	precEq
	precCmp
	precTerm
	precFactor
)

func opPrec(t TokenType) int {
	switch t {
	case EQ:
		return precEq
	case LESS, GREATER:
		return precCmp
	case PLUS, MINUS:
		return precTerm
	case MULT, DIV, MOD:
		return precFactor
	}
	return precFactor
}

// exprPrec renders e, parenthesizing when its precedence is below the
// surrounding context. Left operands may share the operator's level
// (left-associativity); right operands require strictly higher.
func exprPrec(e Expr, parent int) string {
	switch x := e.(type) {
	case *Literal:
		return x.Value.String()
	case *Variable:
		return x.Name.Lexeme
	case *Assign:
		s := fmt.Sprintf("%s = %s", x.Name.Lexeme, exprPrec(x.Value, precAssign))
		if parent > precAssign {
			return "(" + s + ")"
		}
		return s
	case *Binary:
		pr := opPrec(x.Op.Type)
		s := fmt.Sprintf("%s %s %s",
			exprPrec(x.Left, pr), x.Op.Lexeme, exprPrec(x.Right, pr+1))
		if parent > pr {
			return "(" + s + ")"
		}
		return s
	}
	return ""
}
