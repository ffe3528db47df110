// interp.go — tree-walking evaluator.
//
// Statements and expressions execute against the single flat Env. Runtime
// failures are signalled internally with panic(rtErr{...}) and recovered
// exactly once at the public Run/EvalExpr boundary, where they surface as a
// *RuntimeError with a 1-based source position. A failure aborts the rest
// of the statement sequence; whatever was printed before it stands.
package brio

import (
	"fmt"
	"io"
	"math"
)

// RuntimeError is an execution-time failure. Line and Col are 1-based.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// rtErr is the internal panic payload for runtime failures. Always raise it
// through failAt so positions stay 1-based.
type rtErr struct {
	msg  string
	line int
	col  int
}

func failAt(t Token, msg string) {
	panic(rtErr{msg: msg, line: t.Line, col: t.Col + 1})
}

// Interpreter executes parsed statements against one mutable variable
// store. Output lines produced by print statements go to out, in program
// order. The zero writer is not valid; pass io.Discard to drop output.
type Interpreter struct {
	env *Env
	out io.Writer
}

// NewInterpreter returns an interpreter with an empty variable store.
func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{env: NewEnv(), out: out}
}

// Env exposes the variable store (for the REPL and tests).
func (ip *Interpreter) Env() *Env { return ip.env }

// Run executes the statements in order. On a runtime failure it stops and
// returns a *RuntimeError; the store keeps whatever state was reached.
func (ip *Interpreter) Run(stmts []Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = &RuntimeError{Line: sig.line, Col: sig.col, Msg: sig.msg}
		}
	}()
	for _, st := range stmts {
		ip.exec(st)
	}
	return nil
}

// EvalExpr evaluates a single expression against the current store and
// returns its value. Used by the REPL to echo bare expressions.
func (ip *Interpreter) EvalExpr(e Expr) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = &RuntimeError{Line: sig.line, Col: sig.col, Msg: sig.msg}
		}
	}()
	return ip.eval(e), nil
}

// ───────────────────────────────── statements ───────────────────────────────

func (ip *Interpreter) exec(st Stmt) {
	switch s := st.(type) {
	case *ExprStmt:
		ip.eval(s.Expr)
	case *PrintStmt:
		fmt.Fprintln(ip.out, ip.eval(s.Expr).String())
	case *VarStmt:
		v := Null
		if s.Init != nil {
			v = ip.eval(s.Init)
		}
		ip.env.Define(s.Name.Lexeme, v)
	case *BlockStmt:
		// no scope push: the block runs against the same store
		for _, inner := range s.Stmts {
			ip.exec(inner)
		}
	case *IfStmt:
		if ip.eval(s.Cond).Truthy() {
			ip.exec(s.Then)
		} else if s.Else != nil {
			ip.exec(s.Else)
		}
	case *WhileStmt:
		for ip.eval(s.Cond).Truthy() {
			ip.exec(s.Body)
		}
	}
}

// ──────────────────────────────── expressions ───────────────────────────────

func (ip *Interpreter) eval(e Expr) Value {
	switch x := e.(type) {
	case *Literal:
		return x.Value
	case *Variable:
		v, ok := ip.env.Get(x.Name.Lexeme)
		if !ok {
			failAt(x.Name, fmt.Sprintf("undefined variable: %s", x.Name.Lexeme))
		}
		return v
	case *Assign:
		v := ip.eval(x.Value)
		ip.env.Assign(x.Name.Lexeme, v)
		return v
	case *Binary:
		return ip.evalBinary(x)
	}
	panic(rtErr{msg: "unknown expression node"})
}

func (ip *Interpreter) evalBinary(b *Binary) Value {
	left := ip.eval(b.Left)
	right := ip.eval(b.Right)

	switch b.Op.Type {
	case PLUS:
		l, r := numOperands(b.Op, left, right)
		return Num(l + r)
	case MINUS:
		l, r := numOperands(b.Op, left, right)
		return Num(l - r)
	case MULT:
		l, r := numOperands(b.Op, left, right)
		return Num(l * r)
	case DIV:
		l, r := numOperands(b.Op, left, right)
		if r == 0 {
			failAt(b.Op, "division by zero")
		}
		return Num(l / r)
	case MOD:
		l, r := numOperands(b.Op, left, right)
		if r == 0 {
			failAt(b.Op, "modulo by zero")
		}
		return Num(math.Mod(l, r))
	case LESS:
		l, r := numOperands(b.Op, left, right)
		return Bool(l < r)
	case GREATER:
		l, r := numOperands(b.Op, left, right)
		return Bool(l > r)
	case EQ:
		return Bool(left.Equal(right))
	}
	failAt(b.Op, fmt.Sprintf("unknown operator: %s", b.Op.Lexeme))
	return Null
}

// numOperands asserts both operands are numbers and unwraps them.
func numOperands(op Token, l, r Value) (float64, float64) {
	if l.Tag != VTNum || r.Tag != VTNum {
		failAt(op, "operands must be numbers")
	}
	return l.Data.(float64), r.Data.(float64)
}
