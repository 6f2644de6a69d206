package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pytoc/internal/translator"
)

// run: translate, compile the generated C with cc, execute, and report the
// program's runtime output. A file that fails translation is skipped before
// anything is compiled.
var RunCmd = &cobra.Command{
	Use:   "run [file.py]",
	Short: "Translate, compile, and execute a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath := args[0]

		content, err := os.ReadFile(srcPath)
		if err != nil {
			return err
		}
		if err := translator.Check(string(content), os.Stderr); err != nil {
			return err
		}

		cFile, err := translator.TranslateFile(srcPath, outDir)
		if err != nil {
			return err
		}

		binFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(cFile), ".c"))
		cc := exec.Command("cc", "-o", binFile, cFile)
		cc.Stderr = os.Stderr
		if err := cc.Run(); err != nil {
			return fmt.Errorf("compiling %s: %w", cFile, err)
		}

		prog := exec.Command(binFile)
		prog.Stdout = os.Stdout
		prog.Stderr = os.Stderr
		return prog.Run()
	},
	SilenceUsage: true,
}
