package emitter

import (
	"strings"
	"testing"

	"pytoc/internal/translator/symtab"
)

func TestEmitShape(t *testing.T) {
	table := symtab.New()
	table.Set("x", "5.0")
	table.Set("y", "x + 2.0")
	table.Set("program", "x = 5.0;\ny = x + 2.0;\n")

	out := New().Emit(table)

	if !strings.HasPrefix(out, "#include <stdio.h>\n\nint main() {\n") {
		t.Errorf("output missing preamble:\n%s", out)
	}
	if !strings.HasSuffix(out, "return 0;\n}\n") {
		t.Errorf("output missing epilogue:\n%s", out)
	}
	if !strings.Contains(out, "x = 5.0;\ny = x + 2.0;\n") {
		t.Errorf("output missing translated body:\n%s", out)
	}
}

func TestEmitDeclaresEveryVariableExceptProgram(t *testing.T) {
	table := symtab.New()
	table.Set("x", "5.0")
	table.Set("y", "x + 2.0")
	table.Set("program", "x = 5.0;\ny = x + 2.0;\n")

	out := New().Emit(table)

	for _, want := range []string{"double x;\n", "double y;\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing declaration %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "double program") {
		t.Errorf("reserved program entry was declared:\n%s", out)
	}
	if got := strings.Count(out, "double "); got != 2 {
		t.Errorf("output has %d declarations, want 2:\n%s", got, out)
	}
}

func TestEmitPrintsEveryVariableExceptProgram(t *testing.T) {
	table := symtab.New()
	table.Set("x", "5.0")
	table.Set("y", "x + 2.0")
	table.Set("program", "")

	out := New().Emit(table)

	for _, want := range []string{
		`printf("x: %lf\n", x);`,
		`printf("y: %lf\n", y);`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing print %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "printf("); got != 2 {
		t.Errorf("output has %d prints, want 2:\n%s", got, out)
	}
}

// Declarations and prints come from one cached key snapshot, so the two
// sections enumerate the variables in the same relative order.
func TestEmitDeclarationAndPrintOrderAgree(t *testing.T) {
	table := symtab.New()
	table.Set("program", "")
	vars := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, v := range vars {
		table.Set(v, "1.0")
	}

	out := New().Emit(table)

	var declOrder, printOrder []string
	for _, line := range strings.Split(out, "\n") {
		if name, ok := strings.CutPrefix(line, "double "); ok {
			declOrder = append(declOrder, strings.TrimSuffix(name, ";"))
		}
		if strings.HasPrefix(line, "printf(\"") {
			name := line[len("printf(\""):]
			printOrder = append(printOrder, name[:strings.Index(name, ":")])
		}
	}

	if len(declOrder) != len(vars) || len(printOrder) != len(vars) {
		t.Fatalf("found %d declarations and %d prints, want %d each\n%s",
			len(declOrder), len(printOrder), len(vars), out)
	}
	for i := range declOrder {
		if declOrder[i] != printOrder[i] {
			t.Fatalf("declaration order %v != print order %v", declOrder, printOrder)
		}
	}
}

func TestEmitEmptyProgram(t *testing.T) {
	table := symtab.New()
	table.Set("program", "")

	out := New().Emit(table)

	if strings.Contains(out, "double ") || strings.Contains(out, "printf(") {
		t.Errorf("empty table produced declarations or prints:\n%s", out)
	}
	if !strings.Contains(out, "int main() {") || !strings.Contains(out, "return 0;") {
		t.Errorf("empty program missing frame:\n%s", out)
	}
}
