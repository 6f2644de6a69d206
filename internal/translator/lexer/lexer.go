package lexer

import "pytoc/internal/translator/token"

// Lexer scans an indentation-structured source string into a token stream.
// Block structure is surfaced as INDENT/DEDENT/NEWLINE layout tokens so the
// parser never has to look at whitespace itself.
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line int // current line number (1-indexed)

	atLineStart bool
	indents     []int // open indentation levels, always starts with 0
	pending     []token.Token
	lineOpen    bool // a logical line has content and no NEWLINE yet
	emittedEOF  bool
}

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		atLineStart: true,
		indents:     []int{0},
	}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	tok := l.scanToken()
	switch tok.Type {
	case token.TokenNewline:
		l.lineOpen = false
	case token.TokenIndent, token.TokenDedent, token.TokenEOF:
	default:
		l.lineOpen = true
	}
	return tok
}

func (l *Lexer) scanToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart {
		if tok, ok := l.handleLineStart(); ok {
			return tok
		}
	}

	l.skipSpaces()

	startLine := l.line
	if l.ch == '\n' {
		startLine = l.line - 1 // readChar already counted the newline
	}

	switch l.ch {
	case '#':
		l.readComment()
		return l.scanToken()
	case '\n':
		l.readChar()
		l.atLineStart = true
		return token.Token{Type: token.TokenNewline, Literal: "\n", Line: startLine}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenEq, Literal: "==", Line: startLine}
		}
		l.readChar()
		return token.Token{Type: token.TokenAssign, Literal: "=", Line: startLine}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenNeq, Literal: "!=", Line: startLine}
		}
		tok := token.Token{Type: token.TokenIllegal, Literal: string(l.ch), Line: startLine}
		l.readChar()
		return tok
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenGte, Literal: ">=", Line: startLine}
		}
		l.readChar()
		return token.Token{Type: token.TokenGt, Literal: ">", Line: startLine}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenLte, Literal: "<=", Line: startLine}
		}
		l.readChar()
		return token.Token{Type: token.TokenLt, Literal: "<", Line: startLine}
	case '+':
		l.readChar()
		return token.Token{Type: token.TokenPlus, Literal: "+", Line: startLine}
	case '-':
		l.readChar()
		return token.Token{Type: token.TokenMinus, Literal: "-", Line: startLine}
	case '*':
		l.readChar()
		return token.Token{Type: token.TokenTimes, Literal: "*", Line: startLine}
	case '/':
		l.readChar()
		return token.Token{Type: token.TokenDividedBy, Literal: "/", Line: startLine}
	case '(':
		l.readChar()
		return token.Token{Type: token.TokenLParen, Literal: "(", Line: startLine}
	case ')':
		l.readChar()
		return token.Token{Type: token.TokenRParen, Literal: ")", Line: startLine}
	case ':':
		l.readChar()
		return token.Token{Type: token.TokenColon, Literal: ":", Line: startLine}
	case 0:
		return l.flushEOF(startLine)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return token.Token{Type: lookupIdent(ident), Literal: ident, Line: startLine}
		}
		if isDigit(l.ch) {
			return l.readNumber(startLine)
		}
		tok := token.Token{Type: token.TokenIllegal, Literal: string(l.ch), Line: startLine}
		l.readChar()
		return tok
	}
}

// handleLineStart measures the indentation of the next logical line and queues
// INDENT/DEDENT tokens as needed. Blank and comment-only lines produce no
// tokens at all.
func (l *Lexer) handleLineStart() (token.Token, bool) {
	width := 0
	for {
		if l.ch == ' ' {
			width++
			l.readChar()
		} else if l.ch == '\t' {
			width += 8 - width%8
			l.readChar()
		} else {
			break
		}
	}

	if l.ch == '\n' {
		l.readChar()
		return l.handleLineStart()
	}
	if l.ch == '#' {
		l.readComment()
		return l.handleLineStart()
	}
	if l.ch == 0 {
		l.atLineStart = false
		return token.Token{}, false
	}

	l.atLineStart = false

	cur := l.indents[len(l.indents)-1]
	if width > cur {
		l.indents = append(l.indents, width)
		return token.Token{Type: token.TokenIndent, Literal: "", Line: l.line}, true
	}
	if width < cur {
		n := 0
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			n++
		}
		for i := 1; i < n; i++ {
			l.pending = append(l.pending, token.Token{Type: token.TokenDedent, Literal: "", Line: l.line})
		}
		return token.Token{Type: token.TokenDedent, Literal: "", Line: l.line}, true
	}
	return token.Token{}, false
}

// flushEOF terminates an unfinished logical line and closes any open blocks
// before the final EOF token.
func (l *Lexer) flushEOF(line int) token.Token {
	if !l.emittedEOF {
		l.emittedEOF = true
		if l.lineOpen {
			l.pending = append(l.pending, token.Token{Type: token.TokenNewline, Literal: "\n", Line: line})
		}
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, token.Token{Type: token.TokenDedent, Literal: "", Line: line})
		}
		l.pending = append(l.pending, token.Token{Type: token.TokenEOF, Literal: "", Line: line})
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}
	return token.Token{Type: token.TokenEOF, Literal: "", Line: line}
}

func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber(startLine int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return token.Token{Type: token.TokenNumber, Literal: l.input[start:l.position], Line: startLine}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"and":    token.TokenAnd,
	"or":     token.TokenOr,
	"not":    token.TokenNot,
	"break":  token.TokenBreak,
	"def":    token.TokenDef,
	"elif":   token.TokenElif,
	"else":   token.TokenElse,
	"for":    token.TokenFor,
	"if":     token.TokenIf,
	"return": token.TokenReturn,
	"while":  token.TokenWhile,
	"True":   token.TokenTrue,
	"False":  token.TokenFalse,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
