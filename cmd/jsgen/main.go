package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsgen",
		Short: "Code generators for jscst",
	}

	rootCmd.AddCommand(newAstCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
