package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/jscst/internal/config"
)

const version = "0.1.0"

var cfg config.Config

func main() {
	rootCmd := &cobra.Command{
		Use:          "jscst",
		Short:        "A lossless JavaScript syntax tree toolkit",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			var logFile *string
			if cfg.LogFile != "" {
				logFile = &cfg.LogFile
			}
			commonlog.Configure(cfg.LogVerbosity, logFile)
			if !cfg.Color {
				color.NoColor = true
			}
			return nil
		},
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
