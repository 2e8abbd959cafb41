package compiler

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// IntLiteral is a non-negative integer constant. Negative values only
// appear as a Negation wrapping an IntLiteral.
//
//	return 2;
//	       ^  IntLiteral{Value: 2}
type IntLiteral struct {
	Value int32
}

func (*IntLiteral) exprNode()        {}
func (l *IntLiteral) String() string { return fmt.Sprintf("Int(%d)", l.Value) }

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	BitComp    UnaryOp = iota // ~
	LogicalNeg                // !
	Negation                  // -
)

var unaryOpNames = [...]string{
	BitComp:    "BitComp",
	LogicalNeg: "LogicalNeg",
	Negation:   "Negation",
}

var unaryOpSymbols = [...]string{
	BitComp:    "~",
	LogicalNeg: "!",
	Negation:   "-",
}

func (op UnaryOp) String() string {
	if int(op) >= 0 && int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// Symbol returns the source spelling of op.
func (op UnaryOp) Symbol() string {
	if int(op) >= 0 && int(op) < len(unaryOpSymbols) {
		return unaryOpSymbols[op]
	}
	return "?"
}

// unaryOps maps operator tokens to the prefix operator they denote.
// PLUS, STAR and SLASH are lexed but have no unary meaning.
var unaryOps = map[TokenType]UnaryOp{
	TILDE: BitComp,
	NOT:   LogicalNeg,
	MINUS: Negation,
}

// UnaryExpr applies Op to Operand.
//
//	!-5  →  UnaryExpr{LogicalNeg, UnaryExpr{Negation, IntLiteral{5}}}
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("UnaryOp(%s, %s)", u.Op, u.Operand)
}

//  Statement nodes

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// ReturnStmt is "return Value;".
type ReturnStmt struct {
	Value Expr
}

func (*ReturnStmt) stmtNode()        {}
func (r *ReturnStmt) String() string { return fmt.Sprintf("Return(%s)", r.Value) }

//  Declarations

// Function is "int Name() { Body }".
type Function struct {
	Name string
	Body Stmt
}

func (f *Function) String() string {
	return fmt.Sprintf("Function(%s, %s)", f.Name, f.Body)
}

// Program is the root of the AST: functions in declaration order.
type Program struct {
	Functions []*Function
}

// String renders one function per line.
func (p *Program) String() string {
	var sb strings.Builder
	for i, f := range p.Functions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}
