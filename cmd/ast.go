package cmd

import (
	"os"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"pytoc/internal/translator"
)

// ast: parse and dump the syntax tree
var AstCmd = &cobra.Command{
	Use:   "ast [file.py]",
	Short: "Dump the syntax tree for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		program, err := translator.Parse(string(content), os.Stderr)
		if err != nil {
			return err
		}
		litter.Dump(program)
		return nil
	},
	SilenceUsage: true,
}
