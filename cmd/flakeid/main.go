package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "flakeid"

var logLevel string

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Generate and inspect 64-bit time ordered IDs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setLogLevel(logLevel); err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(appName+" failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
