// Package cmd implements the command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tourplan",
	Short: "Field inspection visit planning",
	Long: `tourplan turns confirmed inspection orders into a dated visit
schedule: orders are matched against the customer master data, geocoded,
clustered into zones, sequenced into tours and assigned to inspectors
under territory and working-hour constraints.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
