package cmd

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "pytoc",
	Short: "pytoc — Python-subset to C translator",
	Long: `pytoc translates a small indentation-structured Python subset into C.

Commands:
  build  Translate a (.py) source file into (.c) C
  check  Report diagnostics for a source file without emitting anything
  run    Translate, compile with cc, and execute the result
  ast    Dump the syntax tree for a source file
  repl   Translate snippets interactively
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")

	rootCmd.AddCommand(BuildCmd, CheckCmd, RunCmd, AstCmd, ReplCmd)
}
