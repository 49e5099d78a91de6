package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigFile string
	flagEnvFile    string
)

var rootCmd = &cobra.Command{
	Use:           "shramba",
	Short:         "Shramba tracks which owner holds which item",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file with SHRAMBA_* variables, ignored if missing")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
