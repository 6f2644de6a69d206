package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pytoc/internal/translator"
)

// build: translate one source file into C
var BuildCmd = &cobra.Command{
	Use:   "build [file.py]",
	Short: "Translate a Python-subset source file into C",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outFile, err := translator.TranslateFile(args[0], outDir)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	},
	SilenceUsage: true,
}
