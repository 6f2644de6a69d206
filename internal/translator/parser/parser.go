package parser

import (
	"strconv"

	"pytoc/internal/translator/ast"
	"pytoc/internal/translator/diag"
	"pytoc/internal/translator/symtab"
	"pytoc/internal/translator/token"
)

// Result is the outcome of pushing one token into the engine.
type Result int

const (
	Continue Result = iota
	Accepted
	SyntaxError
)

const genericSyntaxError = "Invalid syntax"

// Operator precedence, weakest to tightest. All binary operators are
// left-associative; unary not binds tighter than every binary operator.
const (
	precOr = iota + 1
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precNot
)

type opInfo struct {
	prec int
	c    string // C spelling
}

var binOps = map[token.TokenType]opInfo{
	token.TokenOr:        {precOr, "||"},
	token.TokenAnd:       {precAnd, "&&"},
	token.TokenEq:        {precEquality, "=="},
	token.TokenNeq:       {precEquality, "!="},
	token.TokenGt:        {precRelational, ">"},
	token.TokenGte:       {precRelational, ">="},
	token.TokenLt:        {precRelational, "<"},
	token.TokenLte:       {precRelational, "<="},
	token.TokenPlus:      {precAdditive, "+"},
	token.TokenMinus:     {precAdditive, "-"},
	token.TokenTimes:     {precMultiplicative, "*"},
	token.TokenDividedBy: {precMultiplicative, "/"},
}

type frameKind int

const (
	frameToken  frameKind = iota // shifted terminal
	frameExpr                    // reduced expression
	frameHeader                  // if/elif/else/while header, colon seen
	frameBlock                   // open block: header plus INDENT
	frameStmt                    // completed statement
	frameChain                   // completed if statement, still extendable by elif/else
)

// frame is one (symbol, semantic value) pair on the automaton stack. Which of
// tok/expr/stmt is meaningful depends on the kind: headers and blocks carry
// their keyword in tok and their condition in expr, chains carry the
// *ast.IfStatement under stmt.
type frame struct {
	kind frameKind
	tok  token.Token
	expr ast.Expression
	stmt ast.Statement
}

// Engine is the syntax-directed translation automaton. Tokens are pushed one
// at a time; each push performs zero or more reductions, running the
// production's synthesis action as the reduction happens. Assignments mutate
// the symbol table, identifier references consult it. The engine recovers
// from structural errors at the next statement boundary so several
// diagnostics can surface in one pass.
type Engine struct {
	table    *symtab.Table
	reporter *diag.Reporter

	frames       []frame
	expectIndent bool // a finished header is waiting for its INDENT
	skipDedents  int  // DEDENTs owed to discarded INDENTs
	recovering   bool
	fatal        bool
	accepted     bool
	program      *ast.Program
}

func New(table *symtab.Table, reporter *diag.Reporter) *Engine {
	return &Engine{table: table, reporter: reporter}
}

// Program returns the syntax tree built for the run. Valid after Push has
// returned Accepted.
func (e *Engine) Program() *ast.Program {
	return e.program
}

// Fatal reports that the automaton reached a state it could not recover
// from. The run must be aborted.
func (e *Engine) Fatal() bool {
	return e.fatal
}

// Push feeds one token into the automaton.
func (e *Engine) Push(tok token.Token) Result {
	if e.fatal {
		return SyntaxError
	}
	if e.accepted {
		return Accepted
	}
	if e.recovering {
		switch tok.Type {
		case token.TokenNewline:
			e.recovering = false
			return Continue
		case token.TokenEOF:
			e.recovering = false
			// fall through to normal handling so the run still accepts
		default:
			return Continue
		}
	}

	switch tok.Type {
	case token.TokenEOF:
		return e.accept(tok)
	case token.TokenNewline:
		return e.endStatement(tok)
	case token.TokenIndent:
		return e.openBlock(tok)
	case token.TokenDedent:
		return e.closeBlock(tok)
	}

	if e.expectIndent {
		// Header was ready for an indented block but got program text.
		e.expectIndent = false
		e.discardStatement()
		return e.errorRecover(tok.Line, genericSyntaxError)
	}

	switch tok.Type {
	case token.TokenIdent:
		return e.pushIdent(tok)
	case token.TokenNumber:
		return e.pushNumber(tok)
	case token.TokenTrue, token.TokenFalse:
		return e.pushBoolean(tok)
	case token.TokenIf, token.TokenWhile:
		if e.atStatementStart() {
			e.finalizePendingChain()
			e.shift(tok)
			return Continue
		}
		return e.errorRecover(tok.Line, genericSyntaxError)
	case token.TokenElif, token.TokenElse:
		return e.pushChainKeyword(tok)
	case token.TokenBreak:
		if e.atStatementStart() {
			e.finalizePendingChain()
			e.shift(tok)
			return Continue
		}
		return e.errorRecover(tok.Line, genericSyntaxError)
	case token.TokenAssign:
		if top := e.top(); top != nil && top.kind == frameToken && top.tok.Type == token.TokenIdent {
			e.shift(tok)
			return Continue
		}
		return e.errorRecover(tok.Line, genericSyntaxError)
	case token.TokenNot, token.TokenLParen:
		if e.operandPosition() {
			e.shift(tok)
			return Continue
		}
		return e.errorRecover(tok.Line, genericSyntaxError)
	case token.TokenRParen:
		return e.pushRParen(tok)
	case token.TokenColon:
		return e.pushColon(tok)
	}

	if _, ok := binOps[tok.Type]; ok {
		return e.pushBinaryOp(tok)
	}

	// def, for, return, illegal characters: no production matches.
	return e.errorRecover(tok.Line, genericSyntaxError)
}

// --- Stack helpers ---

func (e *Engine) top() *frame {
	if len(e.frames) == 0 {
		return nil
	}
	return &e.frames[len(e.frames)-1]
}

func (e *Engine) shift(tok token.Token) {
	e.frames = append(e.frames, frame{kind: frameToken, tok: tok})
}

func (e *Engine) pushExpr(tok token.Token, expr ast.Expression) {
	e.frames = append(e.frames, frame{kind: frameExpr, tok: tok, expr: expr})
}

// atStatementStart reports whether the next token would begin a statement.
func (e *Engine) atStatementStart() bool {
	top := e.top()
	if top == nil {
		return true
	}
	switch top.kind {
	case frameStmt, frameBlock, frameChain:
		return true
	}
	return false
}

// operandPosition reports whether the next token may begin an operand.
func (e *Engine) operandPosition() bool {
	top := e.top()
	if top == nil || top.kind != frameToken {
		return false
	}
	if _, ok := binOps[top.tok.Type]; ok {
		return true
	}
	switch top.tok.Type {
	case token.TokenAssign, token.TokenLParen, token.TokenNot,
		token.TokenIf, token.TokenElif, token.TokenWhile:
		return true
	}
	return false
}

// discardStatement pops every frame belonging to the statement in progress,
// leaving completed statements and open blocks untouched.
func (e *Engine) discardStatement() {
	for {
		top := e.top()
		if top == nil {
			return
		}
		switch top.kind {
		case frameToken, frameExpr, frameHeader:
			e.frames = e.frames[:len(e.frames)-1]
		default:
			return
		}
	}
}

// finalizePendingChain seals an if chain once a token arrives that can no
// longer extend it.
func (e *Engine) finalizePendingChain() {
	if top := e.top(); top != nil && top.kind == frameChain {
		top.kind = frameStmt
	}
}

// --- Error reporting ---

func (e *Engine) errorRecover(line int, msg string) Result {
	e.reporter.Errorf(line, "%s", msg)
	e.discardStatement()
	e.recovering = true
	return SyntaxError
}

// errorAtBoundary is errorRecover for errors detected on the statement
// terminator itself; there is nothing left to skip.
func (e *Engine) errorAtBoundary(line int, msg string) Result {
	e.reporter.Errorf(line, "%s", msg)
	e.discardStatement()
	return SyntaxError
}

// --- Shift actions ---

func (e *Engine) pushIdent(tok token.Token) Result {
	if e.atStatementStart() {
		e.finalizePendingChain()
		e.shift(tok) // assignment target
		return Continue
	}
	top := e.top()
	if top.kind == frameToken && top.tok.Type == token.TokenIdent {
		return e.errorRecover(tok.Line, "Invalid assignment statement")
	}
	if e.operandPosition() {
		e.pushExpr(tok, &ast.Identifier{Token: tok, Name: tok.Literal})
		return Continue
	}
	return e.errorRecover(tok.Line, genericSyntaxError)
}

func (e *Engine) pushNumber(tok token.Token) Result {
	if !e.operandPosition() {
		return e.errorRecover(tok.Line, genericSyntaxError)
	}
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return e.errorRecover(tok.Line, genericSyntaxError)
	}
	e.pushExpr(tok, &ast.NumberLiteral{Token: tok, Value: val})
	return Continue
}

func (e *Engine) pushBoolean(tok token.Token) Result {
	if !e.operandPosition() {
		return e.errorRecover(tok.Line, genericSyntaxError)
	}
	e.pushExpr(tok, &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TokenTrue})
	return Continue
}

func (e *Engine) pushChainKeyword(tok token.Token) Result {
	if !e.atStatementStart() {
		return e.errorRecover(tok.Line, genericSyntaxError)
	}
	top := e.top()
	if top == nil || top.kind != frameChain {
		return e.errorRecover(tok.Line, "Unexpected '"+tok.Keyword()+"' statement")
	}
	e.shift(tok)
	return Continue
}

func (e *Engine) pushBinaryOp(tok token.Token) Result {
	op := binOps[tok.Type]
	if top := e.top(); top == nil || top.kind != frameExpr {
		return e.errorRecover(tok.Line, genericSyntaxError)
	}
	e.reduceExprs(op.prec)
	e.shift(tok)
	return Continue
}

func (e *Engine) pushRParen(tok token.Token) Result {
	e.reduceExprs(0)
	n := len(e.frames)
	if n >= 2 && e.frames[n-1].kind == frameExpr &&
		e.frames[n-2].kind == frameToken && e.frames[n-2].tok.Type == token.TokenLParen {
		inner := e.frames[n-1].expr
		lparen := e.frames[n-2].tok
		e.frames = e.frames[:n-2]
		e.pushExpr(lparen, &ast.GroupedExpression{Token: lparen, Expression: inner})
		return Continue
	}
	return e.errorRecover(tok.Line, genericSyntaxError)
}

func (e *Engine) pushColon(tok token.Token) Result {
	e.reduceExprs(0)
	n := len(e.frames)
	if n >= 2 && e.frames[n-1].kind == frameExpr && e.frames[n-2].kind == frameToken {
		kw := e.frames[n-2].tok
		switch kw.Type {
		case token.TokenIf, token.TokenElif, token.TokenWhile:
			cond := e.frames[n-1].expr
			e.frames = e.frames[:n-2]
			e.checkDefined(cond)
			e.frames = append(e.frames, frame{kind: frameHeader, tok: kw, expr: cond})
			return Continue
		}
	}
	if top := e.top(); top != nil && top.kind == frameToken {
		switch top.tok.Type {
		case token.TokenWhile:
			return e.errorRecover(tok.Line, "Missing expression for 'while' statement")
		case token.TokenElse:
			top.kind = frameHeader
			return Continue
		}
	}
	return e.errorRecover(tok.Line, genericSyntaxError)
}

// checkDefined reports every identifier in expr that has no prior assignment
// in the symbol table. It runs when the enclosing production reduces, so a
// statement discarded by error recovery never raises semantic errors. The
// check is lexical, not flow-sensitive: identifiers in branches never taken
// are still checked.
func (e *Engine) checkDefined(expr ast.Expression) {
	switch x := expr.(type) {
	case *ast.Identifier:
		if !e.table.Contains(x.Name) {
			e.reporter.InvalidSymbol(x.Name, x.Token.Line)
		}
	case *ast.BinaryExpression:
		e.checkDefined(x.Left)
		e.checkDefined(x.Right)
	case *ast.NotExpression:
		e.checkDefined(x.Operand)
	case *ast.GroupedExpression:
		e.checkDefined(x.Expression)
	}
}

// --- Reductions ---

// reduceExprs runs expression reductions while the operator on the stack
// binds at least as tightly as minPrec. Equal precedence reduces, which makes
// the binary operators left-associative; unary not outranks them all.
func (e *Engine) reduceExprs(minPrec int) {
	for {
		n := len(e.frames)
		if n >= 2 && e.frames[n-1].kind == frameExpr &&
			e.frames[n-2].kind == frameToken && e.frames[n-2].tok.Type == token.TokenNot &&
			precNot >= minPrec {
			notTok := e.frames[n-2].tok
			operand := e.frames[n-1].expr
			e.frames = e.frames[:n-2]
			e.pushExpr(notTok, &ast.NotExpression{Token: notTok, Operand: operand})
			continue
		}
		if n >= 3 && e.frames[n-1].kind == frameExpr && e.frames[n-3].kind == frameExpr &&
			e.frames[n-2].kind == frameToken {
			if op, ok := binOps[e.frames[n-2].tok.Type]; ok && op.prec >= minPrec {
				opTok := e.frames[n-2].tok
				right := e.frames[n-1].expr
				left := e.frames[n-3].expr
				e.frames = e.frames[:n-3]
				e.pushExpr(opTok, &ast.BinaryExpression{
					Token: opTok, Left: left, Operator: op.c, Right: right,
				})
				continue
			}
		}
		return
	}
}

// endStatement reduces the statement in progress when its NEWLINE arrives.
func (e *Engine) endStatement(tok token.Token) Result {
	if e.atStatementStart() {
		return Continue // blank after recovery; nothing in progress
	}
	e.reduceExprs(0)

	if top := e.top(); top != nil && top.kind == frameHeader {
		e.expectIndent = true
		return Continue
	}

	n := len(e.frames)

	// ident = expr
	if n >= 3 && e.frames[n-3].kind == frameToken && e.frames[n-3].tok.Type == token.TokenIdent &&
		e.frames[n-2].kind == frameToken && e.frames[n-2].tok.Type == token.TokenAssign &&
		e.frames[n-1].kind == frameExpr {
		target := e.frames[n-3].tok
		value := e.frames[n-1].expr
		e.frames = e.frames[:n-3]
		e.checkDefined(value) // before the target itself becomes defined
		e.table.Set(target.Literal, value.String())
		e.frames = append(e.frames, frame{
			kind: frameStmt,
			stmt: &ast.AssignStatement{Token: target, Name: target.Literal, Value: value},
		})
		return Continue
	}

	// break
	if n >= 1 && e.frames[n-1].kind == frameToken && e.frames[n-1].tok.Type == token.TokenBreak {
		breakTok := e.frames[n-1].tok
		e.frames[n-1] = frame{kind: frameStmt, stmt: &ast.BreakStatement{Token: breakTok}}
		return Continue
	}

	// if/elif/while header that never saw its colon
	if n >= 2 && e.frames[n-1].kind == frameExpr && e.frames[n-2].kind == frameToken {
		switch e.frames[n-2].tok.Type {
		case token.TokenIf, token.TokenElif, token.TokenWhile:
			kw := e.frames[n-2].tok
			return e.errorAtBoundary(kw.Line, "Missing colon after '"+kw.Keyword()+"' statement")
		}
	}
	if n >= 1 && e.frames[n-1].kind == frameToken && e.frames[n-1].tok.Type == token.TokenElse {
		kw := e.frames[n-1].tok
		return e.errorAtBoundary(kw.Line, "Missing colon after 'else' statement")
	}

	return e.errorAtBoundary(tok.Line, genericSyntaxError)
}

// openBlock turns a waiting header into an open block when its INDENT
// arrives. An INDENT nothing was waiting for is the indentation error
// production; the matching DEDENT is remembered and swallowed later.
func (e *Engine) openBlock(tok token.Token) Result {
	if e.expectIndent {
		if top := e.top(); top != nil && top.kind == frameHeader {
			e.expectIndent = false
			top.kind = frameBlock
			return Continue
		}
	}
	e.skipDedents++
	return e.errorRecover(tok.Line, "Invalid indentation")
}

// closeBlock reduces an indented statement sequence into its owning
// statement when the DEDENT arrives.
func (e *Engine) closeBlock(tok token.Token) Result {
	if e.skipDedents > 0 {
		e.skipDedents--
		return Continue
	}
	if e.expectIndent {
		// Header at the end of a block with no body under it.
		e.expectIndent = false
		e.discardStatement()
		e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
	}
	e.finalizePendingChain()

	i := len(e.frames) - 1
	for i >= 0 && e.frames[i].kind == frameStmt {
		i--
	}
	if i < 0 || e.frames[i].kind != frameBlock {
		// No open block to close: the automaton state is unrecoverable.
		e.fatal = true
		e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
		return SyntaxError
	}

	body := &ast.Block{}
	for j := i + 1; j < len(e.frames); j++ {
		body.Statements = append(body.Statements, e.frames[j].stmt)
	}
	kw := e.frames[i].tok
	cond := e.frames[i].expr
	e.frames = e.frames[:i]

	switch kw.Type {
	case token.TokenIf:
		e.frames = append(e.frames, frame{
			kind: frameChain,
			stmt: &ast.IfStatement{Token: kw, Cond: cond, Body: body},
		})
	case token.TokenElif, token.TokenElse:
		top := e.top()
		if top == nil || top.kind != frameChain {
			e.fatal = true
			e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
			return SyntaxError
		}
		chain := top.stmt.(*ast.IfStatement)
		if kw.Type == token.TokenElif {
			chain.Elifs = append(chain.Elifs, &ast.ElifClause{Cond: cond, Body: body})
		} else {
			chain.Else = body
			top.kind = frameStmt // nothing may extend the chain past else
		}
	case token.TokenWhile:
		e.frames = append(e.frames, frame{
			kind: frameStmt,
			stmt: &ast.WhileStatement{Token: kw, Cond: cond, Body: body},
		})
	default:
		e.fatal = true
		e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
		return SyntaxError
	}
	return Continue
}

// accept finishes the run: the whole program reduces to the "program" entry
// in the symbol table.
func (e *Engine) accept(tok token.Token) Result {
	if e.expectIndent {
		e.expectIndent = false
		e.discardStatement()
		e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
	}
	if top := e.top(); top != nil && (top.kind == frameToken || top.kind == frameExpr || top.kind == frameHeader) {
		e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
		e.discardStatement()
	}
	e.finalizePendingChain()

	prog := &ast.Program{}
	for _, f := range e.frames {
		if f.kind != frameStmt {
			// An open block survived to end of stream.
			e.fatal = true
			e.reporter.Errorf(tok.Line, "%s", genericSyntaxError)
			return SyntaxError
		}
		prog.Statements = append(prog.Statements, f.stmt)
	}
	e.frames = nil
	e.program = prog
	e.table.Set("program", prog.String())
	e.accepted = true
	return Accepted
}
