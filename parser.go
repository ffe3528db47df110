// parser.go — recursive-descent parser for Brio.
//
// Grammar (precedence low→high):
//
//	program    := declaration* EOF
//	declaration:= "var" ID ("=" expression)? ";" | statement
//	statement  := "print" expression ";"
//	            | "if" "(" expression ")" statement ("else" statement)?
//	            | "while" "(" expression ")" statement
//	            | "{" declaration* "}"
//	            | expression ";"
//	expression := assignment
//	assignment := equality ("=" assignment)?
//	equality   := comparison ("==" comparison)*
//	comparison := term (("<" | ">") term)*
//	term       := factor (("+" | "-") factor)*
//	factor     := primary (("*" | "/" | "%") primary)*
//	primary    := NUMBER | ID | "(" expression ")"
//
// Binary operators are left-associative; "=" is right-associative and legal
// only when its left-hand side is a plain variable, which is checked here so
// an Assign node is valid by construction.
//
// A syntax error inside one declaration is recovered at that granularity:
// the parser records a diagnostic, discards tokens until it passes a ";" or
// reaches a token that begins a new statement, and resumes. The malformed
// statement contributes no node; downstream consumers see only well-formed
// statements plus the diagnostics list.
package brio

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ParseError is a syntax error at one statement. Col is 0-based.
// Incomplete marks errors raised at end of input in interactive mode,
// where the source may simply not be finished yet (REPL continuation).
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err is a ParseError caused by running out
// of input mid-construct in interactive mode.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Incomplete
}

// Parse scans and parses src. A lex failure is fatal and returned as err.
// Parse errors are recovered per statement: the surviving statements are
// returned along with the diagnostics for the statements that were dropped.
func Parse(src string) ([]Stmt, []*ParseError, error) {
	return parse(src, false)
}

// ParseInteractive parses in REPL-friendly mode: errors at end of input are
// flagged Incomplete so hosts can prompt for a continuation line.
func ParseInteractive(src string) ([]Stmt, []*ParseError, error) {
	return parse(src, true)
}

func parse(src string, interactive bool) ([]Stmt, []*ParseError, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, nil, err
	}
	p := &parser{toks: toks, interactive: interactive}
	return p.program(), p.diags, nil
}

// maxNestingDepth bounds grammar recursion so deeply nested expressions
// surface a ParseError instead of exhausting the call stack.
const maxNestingDepth = 500

type parser struct {
	toks        []Token
	i           int
	interactive bool
	depth       int
	diags       []*ParseError
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) check(t TokenType) bool { return !p.atEnd() && p.peek().Type == t }

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *parser) match(tt ...TokenType) bool {
	for _, t := range tt {
		if p.check(t) {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	g := p.peek()
	pe := &ParseError{Line: g.Line, Col: g.Col, Msg: msg}
	if g.Type == EOF && p.interactive {
		pe.Incomplete = true
	}
	return Token{}, pe
}

func errAtTok(t Token, msg string) *ParseError {
	return &ParseError{Line: t.Line, Col: t.Col, Msg: msg}
}

func (p *parser) record(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.diags = append(p.diags, pe)
		return
	}
	g := p.peek()
	p.diags = append(p.diags, &ParseError{Line: g.Line, Col: g.Col, Msg: err.Error()})
}

// tokens that begin a new statement; synchronize stops in front of these
var stmtStart = []TokenType{IF, WHILE, VAR, PRINT}

// synchronize discards tokens until just past a ";" or in front of a token
// that begins a new statement, then parsing resumes.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prev().Type == SEMI {
			return
		}
		if slices.Contains(stmtStart, p.peek().Type) {
			return
		}
		p.advance()
	}
}

// ───────────────────────────────── statements ───────────────────────────────

func (p *parser) program() []Stmt {
	var out []Stmt
	for !p.atEnd() {
		st, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		out = append(out, st)
	}
	return out
}

func (p *parser) declaration() (Stmt, error) {
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.need(ID, "expect variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(ASSIGN) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.need(SEMI, "expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Init: init}, nil
}

func (p *parser) statement() (Stmt, error) {
	switch {
	case p.match(IF):
		return p.ifStatement()
	case p.match(PRINT):
		return p.printStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(LCURLY):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *parser) ifStatement() (Stmt, error) {
	if _, err := p.need(LROUND, "expect '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(RROUND, "expect ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els Stmt
	if p.match(ELSE) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &IfStmt{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) whileStatement() (Stmt, error) {
	if _, err := p.need(LROUND, "expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(RROUND, "expect ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// block parses "{" declaration* "}". Recovery applies inside blocks too:
// a malformed inner statement is dropped and parsing continues with the
// next one.
func (p *parser) block() (Stmt, error) {
	var stmts []Stmt
	for !p.check(RCURLY) && !p.atEnd() {
		st, err := p.declaration()
		if err != nil {
			if IsIncomplete(err) {
				return nil, err
			}
			p.record(err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
	}
	if _, err := p.need(RCURLY, "expect '}' after block"); err != nil {
		return nil, err
	}
	return &BlockStmt{Stmts: stmts}, nil
}

func (p *parser) printStatement() (Stmt, error) {
	keyword := p.prev()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(SEMI, "expect ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Keyword: keyword, Expr: value}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(SEMI, "expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// ──────────────────────────────── expressions ───────────────────────────────

func (p *parser) expression() (Expr, error) {
	if p.depth >= maxNestingDepth {
		return nil, errAtTok(p.peek(), "expression too deeply nested")
	}
	p.depth++
	defer func() { p.depth-- }()
	return p.assignment()
}

func (p *parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		equals := p.prev()
		value, err := p.expression() // right-associative
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*Variable); ok {
			return &Assign{Name: v.Name, Value: value}, nil
		}
		return nil, errAtTok(equals, "invalid assignment target")
	}
	return expr, nil
}

func (p *parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(EQ) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(LESS, GREATER) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) factor() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(MULT, DIV, MOD) {
		op := p.prev()
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) primary() (Expr, error) {
	if p.match(NUMBER) {
		return &Literal{Value: Num(p.prev().Literal.(float64))}, nil
	}
	if p.match(ID) {
		return &Variable{Name: p.prev()}, nil
	}
	if p.match(LROUND) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err = p.need(RROUND, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	g := p.peek()
	pe := errAtTok(g, "expect expression")
	if g.Type == EOF && p.interactive {
		pe.Incomplete = true
	}
	return nil, pe
}
