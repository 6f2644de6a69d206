package translator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pytoc/internal/translator/ast"
	"pytoc/internal/translator/diag"
	"pytoc/internal/translator/emitter"
	"pytoc/internal/translator/lexer"
	"pytoc/internal/translator/parser"
	"pytoc/internal/translator/symtab"
)

// ErrFailed is returned when a run produced diagnostics. No program text is
// produced on that path.
var ErrFailed = errors.New("translation failed")

// Translate runs one source string through a fresh scanner, engine, symbol
// table, and emitter. Diagnostics go to errOut as they fire. Each call owns
// all of its state, so independent sources may be translated in parallel.
func Translate(src string, errOut io.Writer) (string, error) {
	table := symtab.New()
	reporter := diag.NewReporter(errOut)
	engine := parser.New(table, reporter)
	lex := lexer.NewLexer(src)

	for {
		res := engine.Push(lex.NextToken())
		if engine.Fatal() {
			return "", ErrFailed
		}
		if res == parser.Accepted {
			break
		}
	}

	if reporter.Failed() {
		return "", ErrFailed
	}
	return emitter.New().Emit(table), nil
}

// Check translates src for diagnostics only, discarding any generated text.
func Check(src string, errOut io.Writer) error {
	_, err := Translate(src, errOut)
	return err
}

// Parse builds the syntax tree for src without emitting anything. Used by
// debugging commands that want to inspect the tree.
func Parse(src string, errOut io.Writer) (*ast.Program, error) {
	table := symtab.New()
	reporter := diag.NewReporter(errOut)
	engine := parser.New(table, reporter)
	lex := lexer.NewLexer(src)

	for {
		res := engine.Push(lex.NextToken())
		if engine.Fatal() {
			return nil, ErrFailed
		}
		if res == parser.Accepted {
			break
		}
	}
	if reporter.Failed() {
		return nil, ErrFailed
	}
	return engine.Program(), nil
}

// TranslateFile translates one .py source file and writes the generated C
// next to it under outDir. It returns the output path.
func TranslateFile(srcPath, outDir string) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}

	generated, err := Translate(string(content), os.Stderr)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(srcPath), ".py")+".c")
	return outFile, os.WriteFile(outFile, []byte(generated), 0o644)
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".py" {
		return fmt.Errorf("source must have .py extension")
	}
	return nil
}
