package main

import (
	"os"

	"github.com/arthur-debert/leveldbpatch/internal/cli"
	"github.com/arthur-debert/leveldbpatch/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = output.NewText(os.Stderr, output.ColorEnabled(os.Stderr, false)).RenderError(err)
		os.Exit(1)
	}
}
