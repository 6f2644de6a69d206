package token

type TokenType string

const (
	// Operators & punctuation
	TokenAssign    TokenType = "ASSIGN"    // =
	TokenPlus      TokenType = "PLUS"      // +
	TokenMinus     TokenType = "MINUS"     // -
	TokenTimes     TokenType = "TIMES"     // *
	TokenDividedBy TokenType = "DIVIDEDBY" // /
	TokenEq        TokenType = "EQ"        // ==
	TokenNeq       TokenType = "NEQ"       // !=
	TokenGt        TokenType = "GT"        // >
	TokenGte       TokenType = "GTE"       // >=
	TokenLt        TokenType = "LT"        // <
	TokenLte       TokenType = "LTE"       // <=
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenColon     TokenType = "COLON"     // :

	// Keywords
	TokenAnd    TokenType = "AND"
	TokenOr     TokenType = "OR"
	TokenNot    TokenType = "NOT"
	TokenBreak  TokenType = "BREAK"
	TokenDef    TokenType = "DEF"
	TokenElif   TokenType = "ELIF"
	TokenElse   TokenType = "ELSE"
	TokenFor    TokenType = "FOR"
	TokenIf     TokenType = "IF"
	TokenReturn TokenType = "RETURN"
	TokenWhile  TokenType = "WHILE"

	// Literals & identifiers
	TokenIdent  TokenType = "IDENT"
	TokenNumber TokenType = "NUMBER" // 5, 5.25
	TokenTrue   TokenType = "TRUE"
	TokenFalse  TokenType = "FALSE"

	// Layout markers from significant whitespace
	TokenNewline TokenType = "NEWLINE"
	TokenIndent  TokenType = "INDENT"
	TokenDedent  TokenType = "DEDENT"

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

// Token is a lexical unit carrying its category, raw text, and the 1-based
// source line it started on.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// Keyword returns the source-level keyword for a token type, e.g. "if" for
// TokenIf. Used by diagnostics that name the offending keyword.
func (t Token) Keyword() string {
	switch t.Type {
	case TokenIf:
		return "if"
	case TokenElif:
		return "elif"
	case TokenElse:
		return "else"
	case TokenWhile:
		return "while"
	case TokenBreak:
		return "break"
	case TokenDef:
		return "def"
	case TokenFor:
		return "for"
	case TokenReturn:
		return "return"
	}
	return t.Literal
}
