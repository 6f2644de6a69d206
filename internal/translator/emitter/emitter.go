package emitter

import (
	"fmt"
	"strings"

	"pytoc/internal/translator/symtab"
)

// programKey is the reserved symbol table entry holding the translated
// statement body for the whole file. It is never declared or printed as a
// variable.
const programKey = "program"

// preamble and epilogue bracket every generated program. Every assigned
// variable shares the single supported numeric type.
const (
	preamble = "#include <stdio.h>\n\nint main() {\n"
	epilogue = "return 0;\n}\n"
)

// Emitter renders the final C program from a completed symbol table. It must
// only run after the engine accepted the stream with no diagnostics.
type Emitter struct {
	builder strings.Builder
}

func New() *Emitter {
	return &Emitter{}
}

// Emit walks the symbol table and renders, in order: the fixed preamble, one
// declaration per variable, the translated body stored under "program", and
// one diagnostic printf per variable.
//
// The table's iteration contract does not promise that two walks enumerate in
// the same relative order, so a single Keys snapshot is taken and reused for
// both the declaration and the print pass.
func (e *Emitter) Emit(table *symtab.Table) string {
	e.builder.Reset()

	vars := make([]string, 0, table.Len())
	for _, key := range table.Keys() {
		if key != programKey {
			vars = append(vars, key)
		}
	}

	e.builder.WriteString(preamble)
	for _, name := range vars {
		fmt.Fprintf(&e.builder, "double %s;\n", name)
	}
	e.builder.WriteString("\n")

	if body, ok := table.Get(programKey); ok {
		e.builder.WriteString(body)
	}
	e.builder.WriteString("\n")

	for _, name := range vars {
		fmt.Fprintf(&e.builder, "printf(\"%s: %%lf\\n\", %s);\n", name, name)
	}
	e.builder.WriteString("\n")
	e.builder.WriteString(epilogue)

	return e.builder.String()
}
