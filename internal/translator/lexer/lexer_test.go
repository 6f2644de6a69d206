package lexer

import (
	"reflect"
	"testing"

	"pytoc/internal/translator/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := NewLexer(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.TokenEOF {
			return toks
		}
		if len(toks) > 10000 {
			t.Fatalf("lexer did not terminate on source:\n%s", src)
		}
	}
}

func wantTypes(t *testing.T, src string, want []token.TokenType) []token.Token {
	t.Helper()
	got := scanAll(t, src)
	gotTypes := make([]token.TokenType, 0, len(got))
	for _, tok := range got {
		gotTypes = append(gotTypes, tok.Type)
	}
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v", src, want, gotTypes)
	}
	return got
}

func TestAssignmentTokens(t *testing.T) {
	toks := wantTypes(t, "x = 5\n", []token.TokenType{
		token.TokenIdent, token.TokenAssign, token.TokenNumber,
		token.TokenNewline, token.TokenEOF,
	})
	if toks[0].Literal != "x" {
		t.Errorf("ident literal = %q, want %q", toks[0].Literal, "x")
	}
	if toks[2].Literal != "5" {
		t.Errorf("number literal = %q, want %q", toks[2].Literal, "5")
	}
	for _, tok := range toks[:4] {
		if tok.Line != 1 {
			t.Errorf("token %v on line %d, want 1", tok.Type, tok.Line)
		}
	}
}

func TestOperators(t *testing.T) {
	wantTypes(t, "a = b + c - d * e / f\n", []token.TokenType{
		token.TokenIdent, token.TokenAssign,
		token.TokenIdent, token.TokenPlus, token.TokenIdent, token.TokenMinus,
		token.TokenIdent, token.TokenTimes, token.TokenIdent, token.TokenDividedBy,
		token.TokenIdent, token.TokenNewline, token.TokenEOF,
	})
	wantTypes(t, "a == b != c > d >= e < f <= g\n", []token.TokenType{
		token.TokenIdent, token.TokenEq, token.TokenIdent, token.TokenNeq,
		token.TokenIdent, token.TokenGt, token.TokenIdent, token.TokenGte,
		token.TokenIdent, token.TokenLt, token.TokenIdent, token.TokenLte,
		token.TokenIdent, token.TokenNewline, token.TokenEOF,
	})
}

func TestKeywordsAndBooleans(t *testing.T) {
	toks := wantTypes(t, "x = True and not False or y\n", []token.TokenType{
		token.TokenIdent, token.TokenAssign, token.TokenTrue, token.TokenAnd,
		token.TokenNot, token.TokenFalse, token.TokenOr, token.TokenIdent,
		token.TokenNewline, token.TokenEOF,
	})
	if toks[2].Literal != "True" {
		t.Errorf("True literal = %q", toks[2].Literal)
	}

	// Keywords are recognized in full; prefixes stay identifiers.
	wantTypes(t, "whilex = 1\n", []token.TokenType{
		token.TokenIdent, token.TokenAssign, token.TokenNumber,
		token.TokenNewline, token.TokenEOF,
	})
}

func TestBlockLayout(t *testing.T) {
	src := "if x > 5:\n    x = 1\nelse:\n    x = 0\n"
	wantTypes(t, src, []token.TokenType{
		token.TokenIf, token.TokenIdent, token.TokenGt, token.TokenNumber,
		token.TokenColon, token.TokenNewline,
		token.TokenIndent, token.TokenIdent, token.TokenAssign, token.TokenNumber,
		token.TokenNewline, token.TokenDedent,
		token.TokenElse, token.TokenColon, token.TokenNewline,
		token.TokenIndent, token.TokenIdent, token.TokenAssign, token.TokenNumber,
		token.TokenNewline, token.TokenDedent,
		token.TokenEOF,
	})
}

func TestNestedDedentsFlushAtEOF(t *testing.T) {
	src := "while a:\n    while b:\n        break"
	wantTypes(t, src, []token.TokenType{
		token.TokenWhile, token.TokenIdent, token.TokenColon, token.TokenNewline,
		token.TokenIndent,
		token.TokenWhile, token.TokenIdent, token.TokenColon, token.TokenNewline,
		token.TokenIndent,
		token.TokenBreak,
		token.TokenNewline, token.TokenDedent, token.TokenDedent,
		token.TokenEOF,
	})
}

func TestBlankAndCommentLinesProduceNoTokens(t *testing.T) {
	src := "# leading comment\nx = 1  # trailing\n\n   \ny = 2\n"
	wantTypes(t, src, []token.TokenType{
		token.TokenIdent, token.TokenAssign, token.TokenNumber, token.TokenNewline,
		token.TokenIdent, token.TokenAssign, token.TokenNumber, token.TokenNewline,
		token.TokenEOF,
	})
}

func TestFloatLiteral(t *testing.T) {
	toks := wantTypes(t, "x = 5.25\n", []token.TokenType{
		token.TokenIdent, token.TokenAssign, token.TokenNumber,
		token.TokenNewline, token.TokenEOF,
	})
	if toks[2].Literal != "5.25" {
		t.Errorf("float literal = %q, want %q", toks[2].Literal, "5.25")
	}
}

func TestLineNumbers(t *testing.T) {
	src := "x = 1\ny = 2\n\nz = 3\n"
	toks := scanAll(t, src)

	wantLines := map[string]int{"x": 1, "y": 2, "z": 4}
	for _, tok := range toks {
		if tok.Type != token.TokenIdent {
			continue
		}
		if want := wantLines[tok.Literal]; tok.Line != want {
			t.Errorf("ident %q on line %d, want %d", tok.Literal, tok.Line, want)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	toks := scanAll(t, "x = $\n")
	found := false
	for _, tok := range toks {
		if tok.Type == token.TokenIllegal && tok.Literal == "$" {
			found = true
		}
	}
	if !found {
		t.Errorf("no ILLEGAL token for '$': %v", toks)
	}
}
