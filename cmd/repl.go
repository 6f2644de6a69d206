package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"pytoc/internal/translator"
)

const (
	historyFile = ".pytoc_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

// repl: translate snippets interactively. Each snippet runs through a fresh
// translation, so definitions do not carry over between snippets.
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Translate snippets interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		histPath := filepath.Join(os.TempDir(), historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()

		fmt.Println("pytoc REPL. Blocks end at an empty line. Ctrl+D exits.")
		for {
			snippet, ok := readSnippet(ln)
			if !ok {
				return nil
			}
			if strings.TrimSpace(snippet) == "" {
				continue
			}
			ln.AppendHistory(strings.ReplaceAll(strings.TrimRight(snippet, "\n"), "\n", " "))

			generated, err := translator.Translate(snippet, os.Stderr)
			if err != nil {
				continue // diagnostics already printed
			}
			fmt.Print(generated)
		}
	},
	SilenceUsage: true,
}

// readSnippet collects one logical input: a single line, or, when the line
// opens a block with ':', every following line up to an empty one. Returns
// ok=false on EOF or interrupt.
func readSnippet(ln *liner.State) (string, bool) {
	line, err := ln.Prompt(promptMain)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")

	if !strings.HasSuffix(strings.TrimSpace(line), ":") {
		return b.String(), true
	}

	for {
		cont, err := ln.Prompt(promptCont)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", true
			}
			return b.String(), true
		}
		if strings.TrimSpace(cont) == "" {
			return b.String(), true
		}
		b.WriteString(cont)
		b.WriteString("\n")
	}
}
