package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pytoc/internal/translator"
)

// check: diagnostics only, no output file
var CheckCmd = &cobra.Command{
	Use:   "check [file.py]",
	Short: "Report diagnostics for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return translator.Check(string(content), os.Stderr)
	},
	SilenceUsage:  true,
	SilenceErrors: false,
}
