// ast.go — expression and statement node shapes produced by the parser and
// consumed by the evaluator. Nodes are built once per run and immutable
// thereafter; they keep the tokens needed for positioned runtime errors.
package brio

// Expr is an expression node.
type Expr interface{ exprNode() }

// Literal holds one immutable value.
type Literal struct {
	Value Value
}

// Variable is a read of a named binding.
type Variable struct {
	Name Token
}

// Binary is a binary operator application. Op is one of
// + - * / % < > ==; assignment has its own node.
type Binary struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Assign rebinds Name to the evaluated Value. The target is validated at
// parse time, so an Assign node always names a plain variable.
type Assign struct {
	Name  Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Binary) exprNode()   {}
func (*Assign) exprNode()   {}

// Stmt is a statement node.
type Stmt interface{ stmtNode() }

// ExprStmt evaluates its expression and discards the result.
type ExprStmt struct {
	Expr Expr
}

// VarStmt declares Name, binding it to Init or to null when Init is nil.
type VarStmt struct {
	Name Token
	Init Expr // may be nil
}

// PrintStmt evaluates its expression and writes one output line.
type PrintStmt struct {
	Keyword Token
	Expr    Expr
}

// IfStmt branches on Cond. Else may be nil.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

// WhileStmt executes Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// BlockStmt is an ordered statement sequence. It introduces no scope:
// declarations inside remain visible after the block exits.
type BlockStmt struct {
	Stmts []Stmt
}

func (*ExprStmt) stmtNode()  {}
func (*VarStmt) stmtNode()   {}
func (*PrintStmt) stmtNode() {}
func (*IfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode() {}
func (*BlockStmt) stmtNode() {}
