package ast

import (
	"bytes"
	"math"
	"strconv"

	"pytoc/internal/translator/token"
)

// --- Interfaces ---

type Node interface {
	TokenLiteral() string
	String() string // C rendering of the node
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// --- Program ---

type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String renders the translated statement body. Statement order is reduction
// order; every statement renderer terminates its own lines.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// --- Statements ---

// AssignStatement -> x = 5 becomes "x = 5.0;\n"
type AssignStatement struct {
	Token token.Token // the target identifier
	Name  string
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	out.WriteString(as.Name)
	out.WriteString(" = ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	out.WriteString(";\n")
	return out.String()
}

// ElifClause is one "else if" arm of a conditional chain.
type ElifClause struct {
	Cond Expression
	Body *Block
}

// IfStatement -> if/elif/else chain becomes
// "if (c) {\n...} else if (c) {\n...} else {\n...}\n"
type IfStatement struct {
	Token token.Token // the 'if' token
	Cond  Expression
	Body  *Block
	Elifs []*ElifClause
	Else  *Block
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Cond.String())
	out.WriteString(") {\n")
	out.WriteString(is.Body.String())
	for _, clause := range is.Elifs {
		out.WriteString("} else if (")
		out.WriteString(clause.Cond.String())
		out.WriteString(") {\n")
		out.WriteString(clause.Body.String())
	}
	if is.Else != nil {
		out.WriteString("} else {\n")
		out.WriteString(is.Else.String())
	}
	out.WriteString("}\n")
	return out.String()
}

// WhileStatement -> while cond: becomes "while (cond) {\n...}\n"
type WhileStatement struct {
	Token token.Token // the 'while' token
	Cond  Expression
	Body  *Block
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	out.WriteString(ws.Cond.String())
	out.WriteString(") {\n")
	out.WriteString(ws.Body.String())
	out.WriteString("}\n")
	return out.String()
}

// BreakStatement -> break becomes "break;\n"
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break;\n" }

// Block is an indented statement sequence.
type Block struct {
	Statements []Statement
}

func (b *Block) String() string {
	var out bytes.Buffer
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// --- Expressions ---

// Identifier -> varName
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Name }

// NumberLiteral -> 5 or 5.25
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }

// String renders a whole-valued literal with exactly one decimal place so the
// target type is unambiguous; anything else uses the shortest representation.
func (nl *NumberLiteral) String() string {
	if nl.Value == math.Trunc(nl.Value) {
		return strconv.FormatFloat(nl.Value, 'f', 1, 64)
	}
	return strconv.FormatFloat(nl.Value, 'f', -1, 64)
}

// BooleanLiteral -> True/False becomes "1"/"0"
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return "1"
	}
	return "0"
}

// BinaryExpression -> left op right. Operator holds the C spelling ("&&" for
// "and", etc.); the mapping happens when the engine reduces the production.
type BinaryExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	return out.String()
}

// NotExpression -> not x becomes "!x"
type NotExpression struct {
	Token   token.Token
	Operand Expression
}

func (ne *NotExpression) expressionNode()      {}
func (ne *NotExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NotExpression) String() string       { return "!" + ne.Operand.String() }

// GroupedExpression -> (expression). Source parentheses are echoed verbatim.
type GroupedExpression struct {
	Token      token.Token // '('
	Expression Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) String() string {
	return "(" + ge.Expression.String() + ")"
}
